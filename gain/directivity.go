package gain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultDirectivityAlpha is the default pattern shape (omnidirectional).
	DefaultDirectivityAlpha = 0.0
	// DefaultDirectivitySharpness is the default pattern exponent.
	DefaultDirectivitySharpness = 1.0

	minDirectivitySharpness = 1.0
	maxDirectivitySharpness = 10.0
)

// Directivity is an angle-dependent emitter gain pattern. Alpha blends
// between omnidirectional (0), cardioid (0.5) and figure-eight (1); the
// sharpness exponent narrows the resulting lobe.
type Directivity struct {
	Alpha     float64
	Sharpness float64
}

// NewDirectivity validates and builds a directivity pattern.
func NewDirectivity(alpha, sharpness float64) (Directivity, error) {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return Directivity{}, fmt.Errorf("gain: directivity alpha must be in [0, 1]: %f", alpha)
	}

	if sharpness < minDirectivitySharpness || sharpness > maxDirectivitySharpness || math.IsNaN(sharpness) {
		return Directivity{}, fmt.Errorf("gain: directivity sharpness must be in [%g, %g]: %f",
			minDirectivitySharpness, maxDirectivitySharpness, sharpness)
	}

	return Directivity{Alpha: alpha, Sharpness: sharpness}, nil
}

// GainCos returns the pattern gain for a given cosine of the angle between
// the emitter's forward axis and the direction toward the listener.
func (d Directivity) GainCos(cosTheta float64) float64 {
	if d.Alpha == 0 {
		return 1
	}

	pattern := (1 - d.Alpha) + d.Alpha*mgl64.Clamp(cosTheta, -1, 1)

	return math.Pow(math.Abs(pattern), d.Sharpness)
}

// Gain returns the pattern gain for an emitter with the given forward axis
// toward a listener in the given direction. Both vectors must be non-zero;
// they need not be normalized.
func (d Directivity) Gain(forward, toListener mgl64.Vec3) float64 {
	fl := forward.Len()
	tl := toListener.Len()

	if fl == 0 || tl == 0 {
		return d.GainCos(1)
	}

	return d.GainCos(forward.Dot(toListener) / (fl * tl))
}
