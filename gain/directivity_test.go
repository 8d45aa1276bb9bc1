package gain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewDirectivityValidation(t *testing.T) {
	cases := []struct {
		name             string
		alpha, sharpness float64
	}{
		{"alpha below range", -0.1, 1},
		{"alpha above range", 1.1, 1},
		{"alpha nan", math.NaN(), 1},
		{"sharpness below range", 0.5, 0.5},
		{"sharpness above range", 0.5, 11},
		{"sharpness nan", 0.5, math.NaN()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDirectivity(tc.alpha, tc.sharpness); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestOmnidirectionalGain(t *testing.T) {
	d, err := NewDirectivity(0, 1)
	if err != nil {
		t.Fatalf("NewDirectivity: %v", err)
	}

	for _, cosTheta := range []float64{-1, -0.5, 0, 0.5, 1} {
		if got := d.GainCos(cosTheta); got != 1 {
			t.Fatalf("GainCos(%v) = %v, want 1", cosTheta, got)
		}
	}
}

func TestCardioidGain(t *testing.T) {
	d, err := NewDirectivity(0.5, 1)
	if err != nil {
		t.Fatalf("NewDirectivity: %v", err)
	}

	cases := []struct {
		cosTheta, want float64
	}{
		{1, 1},    // on axis
		{0, 0.5},  // side
		{-1, 0},   // behind
	}

	for _, tc := range cases {
		if got := d.GainCos(tc.cosTheta); math.Abs(got-tc.want) > 1e-15 {
			t.Fatalf("GainCos(%v) = %v, want %v", tc.cosTheta, got, tc.want)
		}
	}
}

func TestSharpnessNarrowsLobe(t *testing.T) {
	wide, err := NewDirectivity(0.5, 1)
	if err != nil {
		t.Fatalf("NewDirectivity: %v", err)
	}

	narrow, err := NewDirectivity(0.5, 4)
	if err != nil {
		t.Fatalf("NewDirectivity: %v", err)
	}

	if w, n := wide.GainCos(0), narrow.GainCos(0); n >= w {
		t.Fatalf("sharper pattern should attenuate off-axis more: narrow=%v wide=%v", n, w)
	}
}

func TestGainFromVectors(t *testing.T) {
	d, err := NewDirectivity(0.5, 1)
	if err != nil {
		t.Fatalf("NewDirectivity: %v", err)
	}

	forward := mgl64.Vec3{0, 0, -1}

	onAxis := d.Gain(forward, mgl64.Vec3{0, 0, -10})
	if math.Abs(onAxis-1) > 1e-15 {
		t.Fatalf("on-axis gain = %v, want 1", onAxis)
	}

	behind := d.Gain(forward, mgl64.Vec3{0, 0, 3})
	if math.Abs(behind) > 1e-15 {
		t.Fatalf("behind gain = %v, want 0", behind)
	}

	// A zero direction degrades to on-axis rather than NaN.
	if got := d.Gain(forward, mgl64.Vec3{}); got != 1 {
		t.Fatalf("zero direction gain = %v, want 1", got)
	}
}
