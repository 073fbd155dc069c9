package filetest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lesiw.io/file"
)

func testOpenClose(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
) {
	ctx = file.WithFaults(ctx, file.Never)
	name := f.Name()

	if err := f.Open(ctx); err != nil {
		t.Fatalf("Open(): %v", err)
	}
	if got := f.State(); got != file.Open {
		t.Errorf("State() after Open = %v, want %v", got, file.Open)
	}

	if err := f.Close(ctx); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	if got := f.State(); got != file.Closed {
		t.Errorf("State() after Close = %v, want %v", got, file.Closed)
	}
	if got := f.Name(); got != name {
		t.Errorf("Name() after Close = %q, want %q", got, name)
	}
	if got := f.Len(); got != len(want) {
		t.Errorf("Len() after Close = %d, want %d", got, len(want))
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); !errors.Is(err, file.ErrNotOpen) {
		t.Errorf("WriteTo() after Close err = %v, want %v",
			err, file.ErrNotOpen)
	}
}

func testReopen(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
) {
	ctx = file.WithFaults(ctx, file.Never)

	for i := range 3 {
		if err := f.Open(ctx); err != nil {
			t.Fatalf("Open() #%d: %v", i, err)
		}
		var buf bytes.Buffer
		if _, err := f.WriteTo(&buf); err != nil {
			t.Fatalf("WriteTo() #%d: %v", i, err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("WriteTo() #%d wrote %q, want %q", i, buf.Bytes(), want)
		}
		if err := f.Close(ctx); err != nil {
			t.Fatalf("Close() #%d: %v", i, err)
		}
	}
}

func testOpenFault(ctx context.Context, t *testing.T, f *file.File) {
	err := f.Open(file.WithFaults(ctx, file.Always))
	if err == nil {
		closeOnCleanup(ctx, t, f)
		t.Fatal("Open() with Always err = nil, want error")
	}
	if !errors.Is(err, file.ErrPermission) {
		t.Errorf("Open() err = %v, want %v", err, file.ErrPermission)
	}
	if !file.Transient(err) {
		t.Errorf("Transient(%v) = false, want true", err)
	}
	checkPathError(t, err, "open", f.Name())
	if got := f.State(); got != file.Closed {
		t.Errorf("State() after failed Open = %v, want %v",
			got, file.Closed)
	}
}

func testCloseFault(ctx context.Context, t *testing.T, f *file.File) {
	open(ctx, t, f)

	err := f.Close(file.WithFaults(ctx, file.Always))
	if err == nil {
		t.Fatal("Close() with Always err = nil, want error")
	}
	if !errors.Is(err, file.ErrInterrupted) {
		t.Errorf("Close() err = %v, want %v", err, file.ErrInterrupted)
	}
	if !file.Transient(err) {
		t.Errorf("Transient(%v) = false, want true", err)
	}
	checkPathError(t, err, "close", f.Name())
	if got := f.State(); got != file.Open {
		t.Errorf("State() after failed Close = %v, want %v",
			got, file.Open)
	}
}

func testFaultDraws(ctx context.Context, t *testing.T, f *file.File) {
	rec := &Recorder{Faults: file.Never}
	ctx = file.WithFaults(ctx, rec)

	if err := f.Open(ctx); err != nil {
		t.Fatalf("Open(): %v", err)
	}
	if err := f.Close(ctx); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	want := []string{"open", "close"}
	if len(rec.Ops) != len(want) {
		t.Fatalf("fault draws = %q, want %q", rec.Ops, want)
	}
	for i := range want {
		if rec.Ops[i] != want[i] {
			t.Errorf("fault draw #%d = %q, want %q", i, rec.Ops[i], want[i])
		}
	}
}

func checkPathError(t *testing.T, err error, op, name string) {
	t.Helper()
	var pathErr *file.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("err = %T, want *file.PathError", err)
	}
	if pathErr.Op != op || pathErr.Path != name {
		t.Errorf("PathError = {Op: %q, Path: %q}, want {%q, %q}",
			pathErr.Op, pathErr.Path, op, name)
	}
}
