package main

import (
	"context"
	"fmt"

	resumemd "github.com/alnah/go-resumemd"
)

// CLIConverter is the part of resumemd.Converter the CLI uses.
type CLIConverter interface {
	Convert(ctx context.Context, input resumemd.Input) (*resumemd.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*resumemd.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter adapts resumemd.ConverterPool to Pool.
type poolAdapter struct {
	pool *resumemd.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	c, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release panics on a converter this pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*resumemd.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
