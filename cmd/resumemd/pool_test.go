package main

import (
	"errors"
	"testing"

	resumemd "github.com/alnah/go-resumemd"
)

func TestPoolAdapter(t *testing.T) {
	t.Parallel()

	t.Run("reports size and closes idle", func(t *testing.T) {
		t.Parallel()

		a := &poolAdapter{pool: resumemd.NewConverterPool(3)}
		if got := a.Size(); got != 3 {
			t.Errorf("Size() = %d, want 3", got)
		}
		if err := a.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
		if _, err := a.Acquire(); !errors.Is(err, resumemd.ErrPoolClosed) {
			t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
		}
	})

	t.Run("release rejects foreign converters", func(t *testing.T) {
		t.Parallel()

		a := &poolAdapter{pool: resumemd.NewConverterPool(1)}
		defer func() {
			if recover() == nil {
				t.Error("Release() did not panic on a foreign converter")
			}
		}()
		a.Release(&fakeConverter{})
	})
}

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdin == nil || env.Stdout == nil || env.Stderr == nil {
		t.Fatal("DefaultEnv() left a standard stream nil")
	}
	if env.Getenv == nil || env.Environ == nil || env.SetMaxProcs == nil {
		t.Fatal("DefaultEnv() left a function nil")
	}

	pool := env.NewPool(2)
	defer pool.Close()
	if pool.Size() != 2 {
		t.Errorf("NewPool(2).Size() = %d, want 2", pool.Size())
	}
}
