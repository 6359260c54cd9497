package statplot

import (
	"math"
	"testing"
)

func TestSigStars(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want string
	}{
		{"very significant", 0.0001, "***"},
		{"boundary 0.001", 0.001, "**"},
		{"significant", 0.004, "**"},
		{"boundary 0.01", 0.01, "*"},
		{"barely significant", 0.03, "*"},
		{"boundary 0.05", 0.05, "."},
		{"trend", 0.07, "."},
		{"boundary 0.1", 0.1, ""},
		{"not significant", 0.5, ""},
		{"one", 1.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SigStars(tt.p); got != tt.want {
				t.Errorf("SigStars(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestCIToErrSize(t *testing.T) {
	low := []float64{1, 2, 3}
	high := []float64{5, 6, 9}
	central := []float64{3, 4, 5}

	below, above := ciToErrSize(low, high, central)

	wantBelow := []float64{2, 2, 2}
	wantAbove := []float64{2, 2, 4}
	for i := range central {
		if below[i] != wantBelow[i] {
			t.Errorf("below[%d] = %v, want %v", i, below[i], wantBelow[i])
		}
		if above[i] != wantAbove[i] {
			t.Errorf("above[%d] = %v, want %v", i, above[i], wantAbove[i])
		}
	}
}

func TestKDESupport(t *testing.T) {
	sample := []float64{-1, -0.5, 0, 0.5, 1}
	kde := newKDE(sample)

	xs := kdeSupport(sample, kde.PDF, 100)
	if len(xs) == 0 {
		t.Fatal("empty support")
	}

	// Support stays within the padded data range and is increasing.
	lo, hi := -3.0, 3.0
	for i, x := range xs {
		if x < lo || x > hi {
			t.Errorf("support point %v outside padded range [%v, %v]", x, lo, hi)
		}
		if i > 0 && x <= xs[i-1] {
			t.Errorf("support not increasing at %d: %v after %v", i, x, xs[i-1])
		}
	}

	// The density over the kept support is above the trim threshold.
	peak := 0.0
	for _, x := range xs {
		peak = math.Max(peak, kde.PDF(x))
	}
	for _, x := range xs {
		if y := kde.PDF(x); y <= peak*1e-4 {
			t.Errorf("density %v at %v below trim threshold", y, x)
		}
	}
}

func TestQuantile(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := quantile(sample, 50); math.Abs(got-5) > 1e-9 {
		t.Errorf("median = %v, want 5", got)
	}
	lo := quantile(sample, 25)
	hi := quantile(sample, 75)
	if lo >= hi {
		t.Errorf("quartiles out of order: %v >= %v", lo, hi)
	}
}
