package testutil

import (
	"math"
	"testing"
)

func TestRMS(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"dc", []float64{1, 1, 1, 1}, 1},
		{"alternating", []float64{1, -1, 1, -1}, 1},
		{"half", []float64{0.5, -0.5}, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RMS(tc.in); math.Abs(got-tc.want) > 1e-15 {
				t.Fatalf("RMS = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2 + 1e-13, 3}, 1e-12)
}
