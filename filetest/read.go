package filetest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lesiw.io/file"
)

const prefix = "prefix:"

func testReadClosed(t *testing.T, f *file.File) {
	buf := bytes.NewBufferString(prefix)
	n, err := f.WriteTo(buf)
	if !errors.Is(err, file.ErrNotOpen) {
		t.Fatalf("WriteTo() err = %v, want %v", err, file.ErrNotOpen)
	}
	if n != 0 {
		t.Errorf("WriteTo() = %d, want 0", n)
	}
	if got := buf.String(); got != prefix {
		t.Errorf("buffer = %q, want %q (untouched)", got, prefix)
	}

	var pathErr *file.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("WriteTo() err = %T, want *file.PathError", err)
	}
	if pathErr.Op != "read" || pathErr.Path != f.Name() {
		t.Errorf("PathError = {Op: %q, Path: %q}, want {%q, %q}",
			pathErr.Op, pathErr.Path, "read", f.Name())
	}
	if file.Transient(err) {
		t.Errorf("Transient(%v) = true, want false", err)
	}
}

func testReadOpen(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
) {
	open(ctx, t, f)

	buf := bytes.NewBufferString(prefix)
	n, err := f.WriteTo(buf)
	if err != nil {
		t.Fatalf("WriteTo(): %v", err)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, want %d", n, len(want))
	}
	wantBuf := append([]byte(prefix), want...)
	if diff := cmp.Diff(wantBuf, buf.Bytes()); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
	if got := f.State(); got != file.Open {
		t.Errorf("State() after read = %v, want %v", got, file.Open)
	}
	if got := f.Len(); got != len(want) {
		t.Errorf("Len() after read = %d, want %d", got, len(want))
	}
}

func testReadRepeated(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
) {
	open(ctx, t, f)

	var first, second bytes.Buffer
	if _, err := f.WriteTo(&first); err != nil {
		t.Fatalf("first WriteTo(): %v", err)
	}
	if _, err := f.WriteTo(&second); err != nil {
		t.Fatalf("second WriteTo(): %v", err)
	}
	if diff := cmp.Diff(first.Bytes(), second.Bytes()); diff != "" {
		t.Errorf("inconsistent reads (-first +second):\n%s", diff)
	}
	if !bytes.Equal(first.Bytes(), want) {
		t.Errorf("WriteTo() wrote %q, want %q", first.Bytes(), want)
	}
}

func testAppendTo(
	ctx context.Context, t *testing.T, f *file.File, want []byte,
) {
	dst := []byte(prefix)

	got, err := f.AppendTo(dst)
	if !errors.Is(err, file.ErrNotOpen) {
		t.Fatalf("AppendTo() on closed file err = %v, want %v",
			err, file.ErrNotOpen)
	}
	if string(got) != prefix {
		t.Errorf("AppendTo() on closed file = %q, want %q", got, prefix)
	}

	open(ctx, t, f)

	got, err = f.AppendTo(dst)
	if err != nil {
		t.Fatalf("AppendTo(): %v", err)
	}
	wantBuf := append([]byte(prefix), want...)
	if diff := cmp.Diff(wantBuf, got); diff != "" {
		t.Errorf("AppendTo() mismatch (-want +got):\n%s", diff)
	}
}
