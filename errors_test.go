package file_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"lesiw.io/file"
)

func TestTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{file.ErrPermission, true},
		{file.ErrInterrupted, true},
		{file.ErrNotOpen, false},
		{&file.PathError{Op: "open", Path: "f", Err: file.ErrPermission}, true},
		{fmt.Errorf("wrapped: %w", file.ErrInterrupted), true},
		{errors.New("other"), false},
	}
	for _, tt := range tests {
		if got := file.Transient(tt.err); got != tt.want {
			t.Errorf("Transient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrPermissionIsFS(t *testing.T) {
	if !errors.Is(file.ErrPermission, fs.ErrPermission) {
		t.Error("ErrPermission is not fs.ErrPermission")
	}
}
