package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-spatial/ambisonic"
	"github.com/cwbudde/algo-spatial/gain"
	"github.com/cwbudde/algo-spatial/geom"
)

// SourceOption mutates source construction parameters.
type SourceOption func(*sourceConfig) error

type sourceConfig struct {
	transform   geom.Transform
	minDistance float64
	maxDistance float64
	rolloff     gain.Rolloff
	gain        float64
	alpha       float64
	sharpness   float64
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		transform:   geom.IdentityTransform(),
		minDistance: gain.DefaultMinDistance,
		maxDistance: gain.DefaultMaxDistance,
		rolloff:     gain.RolloffLogarithmic,
		gain:        1,
		alpha:       gain.DefaultDirectivityAlpha,
		sharpness:   gain.DefaultDirectivitySharpness,
	}
}

// WithSourcePosition sets the emitter position in meters.
func WithSourcePosition(x, y, z float64) SourceOption {
	return func(cfg *sourceConfig) error {
		cfg.transform.Position = mgl64.Vec3{x, y, z}
		return nil
	}
}

// WithSourceOrientation sets the emitter forward/up pair. The pair must span
// a plane.
func WithSourceOrientation(forward, up mgl64.Vec3) SourceOption {
	return func(cfg *sourceConfig) error {
		return cfg.transform.SetOrientation(forward, up)
	}
}

// WithSourceRolloff selects the distance attenuation model by its
// configuration name. Unknown names fail source creation.
func WithSourceRolloff(name string) SourceOption {
	return func(cfg *sourceConfig) error {
		rolloff, err := gain.ParseRolloff(name)
		if err != nil {
			return err
		}

		cfg.rolloff = rolloff

		return nil
	}
}

// WithSourceDistanceRange sets the clamping range for distance attenuation.
func WithSourceDistanceRange(minDistance, maxDistance float64) SourceOption {
	return func(cfg *sourceConfig) error {
		// Range consistency is validated by the attenuation constructor.
		cfg.minDistance = minDistance
		cfg.maxDistance = maxDistance

		return nil
	}
}

// WithSourceGain sets the user gain applied on top of the computed
// attenuation and directivity.
func WithSourceGain(g float64) SourceOption {
	return func(cfg *sourceConfig) error {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("scene: source gain must be >= 0 and finite: %f", g)
		}

		cfg.gain = g

		return nil
	}
}

// WithSourceDirectivity sets the emitter's directional pattern.
func WithSourceDirectivity(alpha, sharpness float64) SourceOption {
	return func(cfg *sourceConfig) error {
		cfg.alpha = alpha
		cfg.sharpness = sharpness

		return nil
	}
}

// Source is a positioned, oriented emitter owned by a Scene. It composes
// distance attenuation, directivity and ambisonic encoding into the
// coefficient set pushed to the rendering backend. The back-reference to the
// scene is non-owning and serves listener lookups during updates.
type Source struct {
	scene  *Scene
	handle Handle

	transform geom.Transform
	gain      float64
	att       gain.Attenuation
	dir       gain.Directivity
	enc       *ambisonic.Encoder

	coeffs        []float64
	compositeGain float64
	updates       uint64
	destroyed     bool
}

// Handle returns the source's stable arena handle.
func (s *Source) Handle() Handle { return s.handle }

// Position returns the emitter position.
func (s *Source) Position() mgl64.Vec3 {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	return s.transform.Position
}

// SetPosition moves the emitter and recomputes its output parameters.
func (s *Source) SetPosition(x, y, z float64) error {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	if err := s.aliveLocked(); err != nil {
		return err
	}

	s.transform.Position = mgl64.Vec3{x, y, z}
	s.updateLocked()

	return nil
}

// SetOrientation turns the emitter and recomputes its output parameters.
func (s *Source) SetOrientation(forward, up mgl64.Vec3) error {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	if err := s.aliveLocked(); err != nil {
		return err
	}

	if err := s.transform.SetOrientation(forward, up); err != nil {
		return err
	}

	s.updateLocked()

	return nil
}

// SetGain changes the user gain and recomputes the output parameters.
func (s *Source) SetGain(g float64) error {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	if err := s.aliveLocked(); err != nil {
		return err
	}

	if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("scene: source gain must be >= 0 and finite: %f", g)
	}

	s.gain = g
	s.updateLocked()

	return nil
}

// Update recomputes attenuation, directivity and encoding coefficients from
// the current source and listener transforms and pushes the result to the
// backend. The Scene calls this automatically after any listener move.
func (s *Source) Update() error {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	if err := s.aliveLocked(); err != nil {
		return err
	}

	s.updateLocked()

	return nil
}

// CompositeGain returns the most recently computed product of attenuation,
// directivity and user gain.
func (s *Source) CompositeGain() float64 {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	return s.compositeGain
}

// Coefficients returns a copy of the most recently pushed, gain-scaled
// ambisonic encoding coefficients.
func (s *Source) Coefficients() []float64 {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	out := make([]float64, len(s.coeffs))
	copy(out, s.coeffs)

	return out
}

// Destroyed reports whether the source has been removed from its scene.
func (s *Source) Destroyed() bool {
	s.scene.mu.Lock()
	defer s.scene.mu.Unlock()

	return s.destroyed
}

func (s *Source) aliveLocked() error {
	if s.scene.closed {
		return ErrSceneClosed
	}
	if s.destroyed {
		return ErrSourceDestroyed
	}

	return nil
}

func (s *Source) updateLocked() {
	listenerPos := s.scene.listener.transform.Position

	distance := s.transform.Position.Sub(listenerPos).Len()
	attGain := s.att.Gain(distance)

	toListener := listenerPos.Sub(s.transform.Position)
	dirGain := s.dir.Gain(s.transform.Forward, toListener)

	// Encoding happens in the pre-rotation world frame; the backend's
	// rotator applies the listener orientation to the whole sound field.
	azimuth, elevation := geom.AzimuthElevation(geom.Transform{
		Position: listenerPos,
		Forward:  geom.DefaultForward,
		Up:       geom.DefaultUp,
	}, s.transform.Position)

	encoded := s.enc.Encode(azimuth, elevation)

	s.compositeGain = attGain * dirGain * s.gain
	for i := range s.coeffs {
		s.coeffs[i] = encoded[i] * s.compositeGain
	}

	s.updates++

	if s.scene.connected {
		s.scene.backend.SetSourceCoefficients(s.handle.index, s.coeffs)
	}
}
