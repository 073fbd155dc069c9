package file

import "context"

type contextKey int

const faultsKey contextKey = iota

var defaultFaults = OneIn(DefaultOdds)

// WithFaults returns a context that carries a fault policy. [File.Open] and
// [File.Close] consult this policy once per call.
//
// If no policy is set in the context, OneIn(DefaultOdds) is used.
func WithFaults(ctx context.Context, faults Faults) context.Context {
	return context.WithValue(ctx, faultsKey, faults)
}

// FaultsFrom retrieves the fault policy from context.
// Returns OneIn(DefaultOdds) if no policy is set.
func FaultsFrom(ctx context.Context) Faults {
	if faults, ok := ctx.Value(faultsKey).(Faults); ok && faults != nil {
		return faults
	}
	return defaultFaults
}
