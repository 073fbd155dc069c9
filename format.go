package file

import (
	"fmt"
	"strconv"
)

// String returns "OPEN" or "CLOSED".
func (s State) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// GoString returns the Go syntax for s, as printed by the %#v verb.
func (s State) GoString() string {
	switch s {
	case Open:
		return "file.Open"
	case Closed:
		return "file.Closed"
	}
	return "file.State(" + strconv.Itoa(int(s)) + ")"
}

// String returns f in the form "<name (STATE)>".
func (f *File) String() string {
	return "<" + f.name + " (" + f.state.String() + ")>"
}

// GoString returns a debug representation of f, including its contents,
// as printed by the %#v verb.
func (f *File) GoString() string {
	return fmt.Sprintf("&file.File{name:%q, data:%#v, state:%#v}",
		f.name, f.data, f.state)
}
