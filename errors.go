package file

import (
	"errors"
	"io/fs"
)

// PathError records an error and the operation and file name that caused it.
type PathError = fs.PathError

// newPathError creates a PathError if err is not nil, otherwise returns nil.
func newPathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: name, Err: err}
}

// File handle errors.
var (
	// ErrPermission is returned when Open is denied by an injected fault.
	ErrPermission = fs.ErrPermission

	// ErrInterrupted is returned when Close is interrupted by an injected
	// fault.
	ErrInterrupted = errors.New("interrupted by signal")

	// ErrNotOpen is returned when reading from a file that is not open.
	ErrNotOpen = errors.New("file not open")
)

// Transient reports whether err was caused by an injected fault.
// Such failures are independent per call, so the operation may succeed
// if attempted again. Errors caused by misuse, such as [ErrNotOpen], are
// not transient.
func Transient(err error) bool {
	return errors.Is(err, ErrPermission) || errors.Is(err, ErrInterrupted)
}
