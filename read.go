package file

import "io"

// WriteTo writes the entire contents of f to w and returns the number of
// bytes written. It implements [io.WriterTo].
//
// If f is not open, WriteTo returns a [*PathError] wrapping [ErrNotOpen]
// without calling w. WriteTo changes neither the state nor the contents
// of f, so it may be called any number of times while f is open.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.state != Open {
		return 0, newPathError("read", f.name, ErrNotOpen)
	}
	if len(f.data) == 0 {
		return 0, nil
	}
	m, err := w.Write(f.data)
	if m > len(f.data) {
		panic("file.File.WriteTo: invalid Write count")
	}
	if m != len(f.data) && err == nil {
		err = io.ErrShortWrite
	}
	return int64(m), err
}

// AppendTo appends the entire contents of f to dst and returns the
// extended slice.
//
// If f is not open, AppendTo returns dst unchanged and a [*PathError]
// wrapping [ErrNotOpen].
func (f *File) AppendTo(dst []byte) ([]byte, error) {
	if f.state != Open {
		return dst, newPathError("read", f.name, ErrNotOpen)
	}
	return append(dst, f.data...), nil
}
