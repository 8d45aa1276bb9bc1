package gain

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMinDistance is the distance below which no attenuation applies.
	DefaultMinDistance = 1.0
	// DefaultMaxDistance is the distance beyond which attenuation no longer
	// increases.
	DefaultMaxDistance = 1000.0

	rangeEpsilon = 1e-9
)

// ErrUnknownRolloff reports a rolloff model name outside the supported set.
var ErrUnknownRolloff = errors.New("gain: unknown rolloff model")

// Rolloff selects the distance-to-gain attenuation curve.
type Rolloff int

const (
	// RolloffLogarithmic follows 1/(d+1) relative to the minimum distance,
	// faded to zero at the maximum distance.
	RolloffLogarithmic Rolloff = iota
	// RolloffLinear fades linearly from 1 at the minimum distance to 0 at
	// the maximum distance.
	RolloffLinear
	// RolloffNone applies no distance attenuation.
	RolloffNone
)

// ParseRolloff maps a configuration name to a rolloff model.
func ParseRolloff(name string) (Rolloff, error) {
	switch name {
	case "logarithmic":
		return RolloffLogarithmic, nil
	case "linear":
		return RolloffLinear, nil
	case "none":
		return RolloffNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRolloff, name)
	}
}

// String returns the configuration name of the rolloff model.
func (r Rolloff) String() string {
	switch r {
	case RolloffLogarithmic:
		return "logarithmic"
	case RolloffLinear:
		return "linear"
	case RolloffNone:
		return "none"
	default:
		return fmt.Sprintf("rolloff(%d)", int(r))
	}
}

// Valid reports whether the rolloff model is a known one.
func (r Rolloff) Valid() bool {
	switch r {
	case RolloffLogarithmic, RolloffLinear, RolloffNone:
		return true
	default:
		return false
	}
}

// Attenuation maps source-to-listener distance to a linear gain. Distances
// are clamped to [MinDistance, MaxDistance] before the curve is applied.
type Attenuation struct {
	Rolloff     Rolloff
	MinDistance float64
	MaxDistance float64
}

// NewAttenuation validates and builds an attenuation curve.
func NewAttenuation(rolloff Rolloff, minDistance, maxDistance float64) (Attenuation, error) {
	if !rolloff.Valid() {
		return Attenuation{}, fmt.Errorf("%w: %d", ErrUnknownRolloff, int(rolloff))
	}

	if minDistance < 0 || math.IsNaN(minDistance) || math.IsInf(minDistance, 0) {
		return Attenuation{}, fmt.Errorf("gain: min distance must be >= 0 and finite: %f", minDistance)
	}

	if maxDistance < minDistance || math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) {
		return Attenuation{}, fmt.Errorf("gain: max distance must be >= min distance %f and finite: %f",
			minDistance, maxDistance)
	}

	return Attenuation{Rolloff: rolloff, MinDistance: minDistance, MaxDistance: maxDistance}, nil
}

// Gain returns the linear gain for a source at the given distance in meters.
func (a Attenuation) Gain(distance float64) float64 {
	if a.Rolloff == RolloffNone {
		return 1
	}

	d := math.Min(math.Max(distance, a.MinDistance), a.MaxDistance)
	span := a.MaxDistance - a.MinDistance

	if span <= rangeEpsilon {
		if distance <= a.MinDistance {
			return 1
		}
		return 0
	}

	rel := d - a.MinDistance

	switch a.Rolloff {
	case RolloffLinear:
		return 1 - rel/span
	default:
		// 1/(d+1) relative to the minimum distance, faded so the gain
		// reaches exactly zero at the maximum distance.
		return (1 / (rel + 1)) * (1 - rel/span)
	}
}
