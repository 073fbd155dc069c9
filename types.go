// Package file provides an in-memory file handle with an explicit
// open/closed lifecycle.
//
// A [File] holds a name and an immutable byte slice. It starts [Closed]
// and moves between [Closed] and [Open] through [File.Open] and
// [File.Close]. Its contents can only be read while it is open:
//
//	f := file.NewWithData("f1.txt", []byte("rust!"))
//	if err := f.Open(ctx); err != nil {
//	    return err
//	}
//	var buf bytes.Buffer
//	if _, err := f.WriteTo(&buf); err != nil {
//	    return err
//	}
//	if err := f.Close(ctx); err != nil {
//	    return err
//	}
//
// # Fault Injection
//
// Open and Close fail with a small, fixed probability (one in
// [DefaultOdds]) to exercise error-handling paths. The policy is carried by
// the context, so different call chains can use different policies:
//
//	ctx = file.WithFaults(ctx, file.Never)   // never fail
//	ctx = file.WithFaults(ctx, file.Always)  // always fail
//	ctx = file.WithFaults(ctx, file.OneIn(10))
//
// Injected faults are reported as [*PathError] values wrapping
// [ErrPermission] (Open) or [ErrInterrupted] (Close). Use [Transient] to
// decide whether an operation is worth retrying.
//
// # Ownership
//
// A File has a single owner. It is not safe for concurrent use; callers
// that share a File must provide their own synchronization.
//
// # Testing
//
// The [lesiw.io/file/filetest] package provides a conformance suite for
// handles and scripted fault policies.
package file

import "io"

// A State is the lifecycle state of a [File].
type State int

const (
	// Closed is the initial state. Reads fail with [ErrNotOpen].
	Closed State = iota
	// Open permits reads.
	Open
)

// A File is an in-memory file handle.
//
// The zero value is a closed, empty file with no name.
type File struct {
	name  string
	data  []byte
	state State
}

var _ io.WriterTo = (*File)(nil)
