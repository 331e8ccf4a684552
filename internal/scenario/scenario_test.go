package scenario

import (
	"math"
	"testing"

	"github.com/101shaan/BlitzForge/internal/errors"
)

func TestWeakPasswordsTable(t *testing.T) {
	// The published dataset, verbatim
	expected := []struct {
		name    string
		seconds float64
	}{
		{"password", 0.001},
		{"123456", 0.001},
		{"qwerty", 0.002},
		{"admin", 0.001},
		{"letmein", 0.003},
		{"password123", 0.005},
	}

	weak := WeakPasswords()
	if len(weak) != len(expected) {
		t.Fatalf("len(WeakPasswords()) = %d, want %d", len(weak), len(expected))
	}
	for i, e := range expected {
		if weak[i].Name != e.name || weak[i].FixedSeconds != e.seconds || !weak[i].IsFixed {
			t.Errorf("WeakPasswords()[%d] = %+v, want {%s %v fixed}", i, weak[i], e.name, e.seconds)
		}
	}
}

func TestFixedScenarioIgnoresRate(t *testing.T) {
	s := Fixed("password", 0.001)

	for _, rate := range []float64{1, 5e9, 1e15} {
		estimate, err := s.Resolve(rate)
		if err != nil {
			t.Fatalf("Resolve(%v) error: %v", rate, err)
		}
		if estimate.Seconds != 0.001 {
			t.Errorf("Resolve(%v).Seconds = %v, want 0.001", rate, estimate.Seconds)
		}
	}
}

func TestBruteForceResolve(t *testing.T) {
	s := BruteForce("8 char random", AlphabetLowerDigits, 8)
	estimate, err := s.Resolve(5e9)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	want := 564.2219814912 // 36^8 / 5e9
	if math.Abs(estimate.Seconds-want) > 1e-9 {
		t.Errorf("Resolve(5e9).Seconds = %v, want %v", estimate.Seconds, want)
	}
}

func TestBruteForceResolveBadRate(t *testing.T) {
	s := BruteForce("8 char random", AlphabetLowerDigits, 8)
	if _, err := s.Resolve(0); !errors.IsInvalidArgument(err) {
		t.Errorf("Resolve(0) error = %v, want InvalidArgument", err)
	}
}

func TestResolveAllOrderAndReproducibility(t *testing.T) {
	first, err := ResolveAll(RealWorld(), 5e9)
	if err != nil {
		t.Fatalf("ResolveAll error: %v", err)
	}
	if len(first) != 8 {
		t.Fatalf("len(estimates) = %d, want 8", len(first))
	}

	// Ordered weakest to strongest: crack times never decrease
	for i := 1; i < len(first); i++ {
		if first[i].Seconds < first[i-1].Seconds {
			t.Errorf("estimates out of order at %d: %v < %v", i, first[i].Seconds, first[i-1].Seconds)
		}
	}

	second, err := ResolveAll(RealWorld(), 5e9)
	if err != nil {
		t.Fatalf("ResolveAll error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("resolution not reproducible at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResolveAllStopsOnError(t *testing.T) {
	scenarios := []CrackScenario{
		Fixed("ok", 1),
		BruteForce("bad", 0, 8),
	}
	if _, err := ResolveAll(scenarios, 5e9); !errors.IsInvalidArgument(err) {
		t.Errorf("ResolveAll error = %v, want InvalidArgument", err)
	}
}

func TestAlgorithmRateModel(t *testing.T) {
	algorithms := Algorithms()
	if len(algorithms) != 5 {
		t.Fatalf("len(Algorithms()) = %d, want 5", len(algorithms))
	}

	rate := 5e9
	tests := []struct {
		name string
		want float64
	}{
		{"BlitzHash (custom)", 5e9},
		{"MD5", 2.5e9},
		{"SHA1", 1.5e9},
		{"SHA256", 0.75e9},
		{"Argon2 (real security)", 10},
	}

	for i, tt := range tests {
		a := algorithms[i]
		if a.Name != tt.name {
			t.Errorf("Algorithms()[%d].Name = %q, want %q", i, a.Name, tt.name)
		}
		got := a.RateAt(rate)
		if math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("%s.RateAt(5e9) = %v, want %v", a.Name, got, tt.want)
		}
	}

	// Absolute rates ignore the primary rate entirely
	argon := algorithms[4]
	if argon.RateAt(1e15) != 10 {
		t.Errorf("Argon2 rate should stay pinned at 10 H/s, got %v", argon.RateAt(1e15))
	}
}

func TestKeyspaceCurves(t *testing.T) {
	curves := KeyspaceCurves()
	sizes := []int{26, 36, 62, 95}
	if len(curves) != len(sizes) {
		t.Fatalf("len(KeyspaceCurves()) = %d, want %d", len(curves), len(sizes))
	}
	for i, size := range sizes {
		if curves[i].AlphabetSize != size {
			t.Errorf("curve %d alphabet = %d, want %d", i, curves[i].AlphabetSize, size)
		}
	}
}
