package filetest

import "lesiw.io/file"

// Sequence returns a fault policy that replays results in order, one per
// call, and never fails once they are exhausted.
//
//	// Fail the first Open, then succeed.
//	ctx = file.WithFaults(ctx, filetest.Sequence(true))
func Sequence(results ...bool) file.Faults {
	return &sequence{results: results}
}

type sequence struct {
	results []bool
}

func (s *sequence) Fault(string) bool {
	if len(s.results) == 0 {
		return false
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

// A Recorder is a fault policy that records the operation name of every
// draw before delegating to Faults. A nil Faults never fails.
type Recorder struct {
	Faults file.Faults
	Ops    []string
}

// Fault records op and reports the decision of r.Faults.
func (r *Recorder) Fault(op string) bool {
	r.Ops = append(r.Ops, op)
	if r.Faults == nil {
		return false
	}
	return r.Faults.Fault(op)
}
