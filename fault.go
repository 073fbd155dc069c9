package file

import "math/rand/v2"

// DefaultOdds is the denominator of the default fault probability.
// Without a policy in the context, Open and Close each fail once in
// DefaultOdds calls.
const DefaultOdds = 100_000

// Faults decides whether an operation fails.
//
// Fault is called once per operation with the operation name ("open" or
// "close") and reports whether that call should fail.
type Faults interface {
	Fault(op string) bool
}

// FaultFunc adapts an ordinary function to the [Faults] interface.
type FaultFunc func(op string) bool

// Fault calls fn(op).
func (fn FaultFunc) Fault(op string) bool { return fn(op) }

var (
	// Never is a policy that never fails.
	Never Faults = FaultFunc(func(string) bool { return false })

	// Always is a policy that always fails.
	Always Faults = FaultFunc(func(string) bool { return true })
)

// OneIn returns a policy that fails with probability 1/n.
// Each call draws independently. OneIn(0) never fails and OneIn(1) always
// fails.
func OneIn(n uint32) Faults {
	switch n {
	case 0:
		return Never
	case 1:
		return Always
	}
	return oneIn(n)
}

type oneIn uint32

func (n oneIn) Fault(string) bool { return rand.Uint32N(uint32(n)) == 0 }
