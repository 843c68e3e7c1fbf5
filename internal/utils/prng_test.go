package utils

import (
	"go-reef-survivors/internal/defs"
	"testing"
)

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(7)
	entries := []defs.DropEntry{
		{PickupID: "gem", Weight: 3},
		{PickupID: "coin", Weight: 1},
		{PickupID: "never", Weight: 0},
	}
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}
	if counts["never"] != 0 {
		t.Fatalf("zero-weight entry chosen %d times", counts["never"])
	}
	if counts["gem"] < 2600 || counts["gem"] > 3400 {
		t.Errorf("gem chosen %d times, expected around 3000", counts["gem"])
	}
	if rng.ChooseWeighted(nil) != "" {
		t.Error("empty table must yield nothing")
	}
}

func TestRangeAndIntnBounds(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 1000; i++ {
		v := rng.Range(0.6, 2.0)
		if v < 0.6 || v > 2.0 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if got := rng.Range(5, 5); got != 5 {
		t.Errorf("degenerate range = %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(150, 0, 100) != 100 || Clamp(-1, 0, 100) != 0 || Clamp(50, 0, 100) != 50 {
		t.Error("Clamp failed")
	}
	if ClampInt(7, 0, 4) != 4 || ClampInt(-2, 0, 4) != 0 {
		t.Error("ClampInt failed")
	}
}
