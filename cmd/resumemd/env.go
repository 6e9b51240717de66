package main

import (
	"io"
	"os"

	resumemd "github.com/alnah/go-resumemd"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// NewPool builds the converter pool used by convert.
	NewPool func(size int, opts ...resumemd.Option) Pool

	// SetMaxProcs adjusts GOMAXPROCS before the pool is sized. Nil skips it.
	SetMaxProcs func(logf func(format string, args ...any))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewPool: func(size int, opts ...resumemd.Option) Pool {
			return &poolAdapter{pool: resumemd.NewConverterPool(size, opts...)}
		},
		SetMaxProcs: configureMaxProcs,
	}
}
