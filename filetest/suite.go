// Package filetest implements support for testing in-memory file handles.
package filetest

import (
	"context"
	"testing"

	"lesiw.io/file"
)

// TestFileOption configures TestFile behavior via functional options.
type TestFileOption func(*testFileOpts)

type testFileOpts struct {
	name    string
	hasName bool
}

// WithName specifies the name the file must report.
func WithName(name string) TestFileOption {
	return func(opts *testFileOpts) {
		opts.name, opts.hasName = name, true
	}
}

// TestFile runs a compliance test suite on a file handle.
//
// The file must be closed and must hold exactly want. TestFile opens,
// reads and closes f many times, installing its own fault policies on ctx,
// and leaves f closed when it returns.
//
// Typical usage:
//
//	func TestMyFile(t *testing.T) {
//	    data := []byte("hello")
//	    f := file.NewWithData("hello.txt", data)
//	    filetest.TestFile(t.Context(), t, f, data)
//	}
func TestFile(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
	opts ...TestFileOption,
) {
	t.Helper()

	var o testFileOpts
	for _, opt := range opts {
		opt(&o)
	}

	if got := f.State(); got != file.Closed {
		t.Fatalf("State() = %v, want %v", got, file.Closed)
	}

	t.Run("Metadata", func(t *testing.T) {
		if got, want := f.Len(), len(want); got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
		if o.hasName && f.Name() != o.name {
			t.Errorf("Name() = %q, want %q", f.Name(), o.name)
		}
	})

	t.Run("Read", func(t *testing.T) {
		t.Run("Closed", func(t *testing.T) {
			testReadClosed(t, f)
		})

		t.Run("Open", func(t *testing.T) {
			testReadOpen(ctx, t, f, want)
		})

		t.Run("Repeated", func(t *testing.T) {
			testReadRepeated(ctx, t, f, want)
		})

		t.Run("Append", func(t *testing.T) {
			testAppendTo(ctx, t, f, want)
		})
	})

	t.Run("Lifecycle", func(t *testing.T) {
		t.Run("OpenClose", func(t *testing.T) {
			testOpenClose(ctx, t, f, want)
		})

		t.Run("Reopen", func(t *testing.T) {
			testReopen(ctx, t, f, want)
		})
	})

	t.Run("Faults", func(t *testing.T) {
		t.Run("Open", func(t *testing.T) {
			testOpenFault(ctx, t, f)
		})

		t.Run("Close", func(t *testing.T) {
			testCloseFault(ctx, t, f)
		})

		t.Run("Independent", func(t *testing.T) {
			testFaultDraws(ctx, t, f)
		})
	})
}
