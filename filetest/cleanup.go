package filetest

import (
	"context"
	"testing"

	"lesiw.io/file"
)

// open opens f with faults disabled and registers a cleanup that closes
// it again.
func open(ctx context.Context, t *testing.T, f *file.File) {
	t.Helper()
	ctx = file.WithFaults(ctx, file.Never)
	if err := f.Open(ctx); err != nil {
		t.Fatalf("Open(): %v", err)
	}
	closeOnCleanup(ctx, t, f)
}

// closeOnCleanup registers cleanup that returns f to the closed state.
func closeOnCleanup(ctx context.Context, t *testing.T, f *file.File) {
	t.Helper()
	ctx = file.WithFaults(ctx, file.Never)
	t.Cleanup(func() {
		if err := f.Close(ctx); err != nil {
			t.Errorf("cleanup: Close(): %v", err)
		}
	})
}
