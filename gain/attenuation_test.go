package gain

import (
	"errors"
	"math"
	"testing"
)

func TestParseRolloff(t *testing.T) {
	cases := []struct {
		name string
		want Rolloff
	}{
		{"logarithmic", RolloffLogarithmic},
		{"linear", RolloffLinear},
		{"none", RolloffNone},
	}

	for _, tc := range cases {
		got, err := ParseRolloff(tc.name)
		if err != nil {
			t.Fatalf("ParseRolloff(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRolloff(%q) = %v, want %v", tc.name, got, tc.want)
		}
		if got.String() != tc.name {
			t.Fatalf("String() = %q, want %q", got.String(), tc.name)
		}
	}
}

func TestParseRolloffUnknown(t *testing.T) {
	_, err := ParseRolloff("exponential")
	if !errors.Is(err, ErrUnknownRolloff) {
		t.Fatalf("expected ErrUnknownRolloff, got %v", err)
	}
}

func TestNewAttenuationValidation(t *testing.T) {
	cases := []struct {
		name     string
		rolloff  Rolloff
		min, max float64
	}{
		{"negative min", RolloffLinear, -1, 10},
		{"max below min", RolloffLinear, 5, 4},
		{"nan min", RolloffLinear, math.NaN(), 10},
		{"inf max", RolloffLinear, 1, math.Inf(1)},
		{"bad rolloff", Rolloff(42), 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewAttenuation(tc.rolloff, tc.min, tc.max); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLogarithmicGainMonotone(t *testing.T) {
	a, err := NewAttenuation(RolloffLogarithmic, 1, 100)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	prev := a.Gain(a.MinDistance)
	if prev != 1 {
		t.Fatalf("gain at min distance should be 1, got %v", prev)
	}

	for d := a.MinDistance; d <= a.MaxDistance; d += 0.25 {
		g := a.Gain(d)
		if g > prev+1e-15 {
			t.Fatalf("gain increased at distance %v: %v > %v", d, g, prev)
		}
		if g < 0 {
			t.Fatalf("gain negative at distance %v: %v", d, g)
		}
		prev = g
	}

	if g := a.Gain(a.MaxDistance); g != 0 {
		t.Fatalf("gain at max distance should be 0, got %v", g)
	}
}

func TestGainClampsToMaxDistance(t *testing.T) {
	a, err := NewAttenuation(RolloffLogarithmic, 1, 10)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	if got, want := a.Gain(100), a.Gain(10); got != want {
		t.Fatalf("gain beyond max distance should clamp: got %v, want %v", got, want)
	}
}

func TestGainClampsToMinDistance(t *testing.T) {
	a, err := NewAttenuation(RolloffLogarithmic, 2, 50)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	if got := a.Gain(0.5); got != 1 {
		t.Fatalf("gain below min distance should be 1, got %v", got)
	}
}

func TestLinearGain(t *testing.T) {
	a, err := NewAttenuation(RolloffLinear, 0, 10)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	cases := []struct {
		distance, want float64
	}{
		{0, 1},
		{5, 0.5},
		{10, 0},
		{20, 0},
	}

	for _, tc := range cases {
		if got := a.Gain(tc.distance); math.Abs(got-tc.want) > 1e-15 {
			t.Fatalf("Gain(%v) = %v, want %v", tc.distance, got, tc.want)
		}
	}
}

func TestNoneRolloffIgnoresDistance(t *testing.T) {
	a, err := NewAttenuation(RolloffNone, 1, 10)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	for _, d := range []float64{0, 1, 10, 1e6} {
		if got := a.Gain(d); got != 1 {
			t.Fatalf("Gain(%v) = %v, want 1", d, got)
		}
	}
}

func TestDegenerateRangeGain(t *testing.T) {
	a, err := NewAttenuation(RolloffLogarithmic, 3, 3)
	if err != nil {
		t.Fatalf("NewAttenuation: %v", err)
	}

	if got := a.Gain(2); got != 1 {
		t.Fatalf("gain at or below min should be 1, got %v", got)
	}
	if got := a.Gain(4); got != 0 {
		t.Fatalf("gain above collapsed range should be 0, got %v", got)
	}
}
