package file

import "context"

// Close moves f to the [Closed] state.
//
// Close draws from the fault policy carried by ctx independently of any
// earlier Open. When the policy reports a fault, Close returns a
// [*PathError] wrapping [ErrInterrupted] and f is left unchanged.
// Closing a file that is already closed is permitted and leaves it closed.
func (f *File) Close(ctx context.Context) error {
	if FaultsFrom(ctx).Fault("close") {
		return newPathError("close", f.name, ErrInterrupted)
	}
	f.state = Closed
	return nil
}
