package file

import "testing"

func TestDefaultFaults(t *testing.T) {
	if DefaultOdds != 100_000 {
		t.Errorf("DefaultOdds = %d, want 100000", DefaultOdds)
	}
	got := FaultsFrom(t.Context())
	if want := Faults(oneIn(DefaultOdds)); got != want {
		t.Errorf("FaultsFrom(ctx) = %#v, want %#v", got, want)
	}
}
