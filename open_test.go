package file_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"testing"

	"lesiw.io/file"
)

func TestOpen(t *testing.T) {
	ctx := file.WithFaults(t.Context(), file.Never)
	f := file.NewWithData("f1.txt", []byte("rust!"))

	if err := f.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got, want := f.State(), file.Open; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestOpenTwice(t *testing.T) {
	ctx := file.WithFaults(t.Context(), file.Never)
	f := file.New("f")

	for range 2 {
		if err := f.Open(ctx); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
	}
	if got, want := f.State(), file.Open; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestOpenPermissionDenied(t *testing.T) {
	ctx := file.WithFaults(t.Context(), file.Always)
	f := file.NewWithData("f1.txt", []byte("rust!"))

	err := f.Open(ctx)
	if !errors.Is(err, file.ErrPermission) {
		t.Fatalf("Open() error = %v, want %v", err, file.ErrPermission)
	}
	if got, want := err.Error(), "open f1.txt: permission denied"; got != want {
		t.Errorf("Open() error = %q, want %q", got, want)
	}
	if got, want := f.State(), file.Closed; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func ExampleFile_Open() {
	ctx := file.WithFaults(context.Background(), file.Never)
	f := file.NewWithData("f1.txt", []byte{114, 117, 115, 116, 33})

	if err := f.Open(ctx); err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	if err != nil {
		log.Fatal(err)
	}
	if err := f.Close(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println(n, buf.String(), f)
	// Output:
	// 5 rust! <f1.txt (CLOSED)>
}
