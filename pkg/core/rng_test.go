package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 200; i++ {
		if v := r.IntRange(-3, 3); v < -3 || v > 3 {
			t.Fatalf("IntRange out of range: %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
	}
	if r.IntRange(5, 2) != 5 || r.IntN(0) != 0 {
		t.Fatal("degenerate ranges should return the lower bound")
	}
}
