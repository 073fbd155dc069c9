package file_test

import (
	"testing"

	"lesiw.io/file"
)

func TestOneInBounds(t *testing.T) {
	tests := []struct {
		n    uint32
		want bool
	}{
		{0, false},
		{1, true},
	}
	for _, tt := range tests {
		faults := file.OneIn(tt.n)
		for range 100 {
			if got := faults.Fault("open"); got != tt.want {
				t.Fatalf("OneIn(%d).Fault() = %v, want %v",
					tt.n, got, tt.want)
			}
		}
	}
}

func TestOneInRate(t *testing.T) {
	const draws = 100_000
	faults := file.OneIn(2)

	var hits int
	for range draws {
		if faults.Fault("close") {
			hits++
		}
	}
	// Six standard deviations either side of draws/2.
	if hits < 49_000 || hits > 51_000 {
		t.Errorf("OneIn(2) failed %d of %d draws, want about half",
			hits, draws)
	}
}

func TestNeverAlways(t *testing.T) {
	for _, op := range []string{"open", "close"} {
		if file.Never.Fault(op) {
			t.Errorf("Never.Fault(%q) = true, want false", op)
		}
		if !file.Always.Fault(op) {
			t.Errorf("Always.Fault(%q) = false, want true", op)
		}
	}
}

func TestFaultFunc(t *testing.T) {
	var ops []string
	faults := file.FaultFunc(func(op string) bool {
		ops = append(ops, op)
		return op == "close"
	})
	ctx := file.WithFaults(t.Context(), faults)
	f := file.New("f")

	if err := f.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := f.Close(ctx); !file.Transient(err) {
		t.Fatalf("Close() error = %v, want transient fault", err)
	}
	if len(ops) != 2 || ops[0] != "open" || ops[1] != "close" {
		t.Errorf("draws = %q, want [open close]", ops)
	}
}
