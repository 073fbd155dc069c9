package file

// New returns a closed, empty file named name.
func New(name string) *File {
	return &File{name: name, state: Closed}
}

// NewWithData returns a closed file named name holding a copy of data.
// Later changes to data do not affect the file.
func NewWithData(name string, data []byte) *File {
	f := New(name)
	if len(data) > 0 {
		f.data = append([]byte(nil), data...)
	}
	return f
}

// Name returns the name the file was created with.
func (f *File) Name() string { return f.name }

// Len returns the number of bytes held by the file.
func (f *File) Len() int { return len(f.data) }

// State returns the current lifecycle state.
func (f *File) State() State { return f.state }
