package file

import "context"

// Open moves f to the [Open] state.
//
// Open consults the fault policy carried by ctx (see [WithFaults]). When
// the policy reports a fault, Open returns a [*PathError] wrapping
// [ErrPermission] and f is left unchanged. Opening a file that is already
// open is permitted and leaves it open.
func (f *File) Open(ctx context.Context) error {
	if FaultsFrom(ctx).Fault("open") {
		return newPathError("open", f.name, ErrPermission)
	}
	f.state = Open
	return nil
}
