package room

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultSpeedOfSound is the speed of sound in air at 20 degrees
	// Celsius, in meters per second.
	DefaultSpeedOfSound = 343.0

	minSpeedOfSound = 300.0
	maxSpeedOfSound = 370.0
)

// DefaultMaterialName is the material applied to walls that were never
// configured. It absorbs fully, so an unconfigured room contributes no
// reflections.
const DefaultMaterialName = "transparent"

// Option mutates room construction or update parameters. Options passed to
// SetProperties merge over the current state; unspecified properties keep
// their prior values.
type Option func(*Room) error

// WithDimensions sets the room extent in meters.
func WithDimensions(width, height, depth float64) Option {
	return func(r *Room) error {
		dims, err := NewDimensions(width, height, depth)
		if err != nil {
			return err
		}

		r.dims = dims

		return nil
	}
}

// WithWallMaterial assigns a named material to a single wall.
func WithWallMaterial(wall Wall, name string) Option {
	return func(r *Room) error {
		if wall < 0 || wall >= NumWalls {
			return fmt.Errorf("room: invalid wall: %d", int(wall))
		}

		mat, err := ParseMaterial(name)
		if err != nil {
			return err
		}

		r.mats[wall] = mat

		return nil
	}
}

// WithUniformMaterial assigns the same named material to all six walls.
func WithUniformMaterial(name string) Option {
	return func(r *Room) error {
		mat, err := ParseMaterial(name)
		if err != nil {
			return err
		}

		r.mats = UniformMaterials(mat)

		return nil
	}
}

// WithMaterials assigns per-wall material names in wall order
// (left, right, floor, ceiling, back, front).
func WithMaterials(names [NumWalls]string) Option {
	return func(r *Room) error {
		var mats Materials
		for wall, name := range names {
			mat, err := ParseMaterial(name)
			if err != nil {
				return fmt.Errorf("room: wall %s: %w", Wall(wall), err)
			}

			mats[wall] = mat
		}

		r.mats = mats

		return nil
	}
}

// WithSpeedOfSound sets the speed of sound in meters per second, shared by
// all delay computations.
func WithSpeedOfSound(speed float64) Option {
	return func(r *Room) error {
		if speed < minSpeedOfSound || speed > maxSpeedOfSound ||
			math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("room: speed of sound must be in [%g, %g]: %f",
				minSpeedOfSound, maxSpeedOfSound, speed)
		}

		r.speedOfSound = speed

		return nil
	}
}

// Room owns the geometry, wall materials and the early/late reflection
// subsystems, recomputing both whenever geometry or materials change.
type Room struct {
	dims         Dimensions
	mats         Materials
	listener     mgl64.Vec3
	speedOfSound float64

	early EarlyReflections
	late  LateReflections
}

// New creates a room. Without options the room is degenerate (zero extent,
// fully absorbing walls) and contributes no acoustics.
func New(opts ...Option) (*Room, error) {
	defaultMat, err := ParseMaterial(DefaultMaterialName)
	if err != nil {
		return nil, err
	}

	r := &Room{
		mats:         UniformMaterials(defaultMat),
		speedOfSound: DefaultSpeedOfSound,
	}

	if err := r.SetProperties(opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// SetProperties merges the supplied options over the current state, then
// fully recomputes both reflection subsystems. The recompute is total: every
// call rebuilds early and late parameters from the complete current set.
func (r *Room) SetProperties(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(r); err != nil {
			return err
		}
	}

	r.early.recompute(r.dims, r.mats, r.listener, r.speedOfSound)
	r.late.recompute(r.dims, r.mats, r.speedOfSound)

	return nil
}

// SetListenerPosition moves the reflection reference point and recomputes
// the early-reflection geometry only; the late tail depends on volume and
// absorption, not listener position.
func (r *Room) SetListenerPosition(x, y, z float64) {
	r.listener = mgl64.Vec3{x, y, z}
	r.early.recompute(r.dims, r.mats, r.listener, r.speedOfSound)
}

// Dimensions returns the current room extent.
func (r *Room) Dimensions() Dimensions { return r.dims }

// Materials returns the current per-wall materials.
func (r *Room) Materials() Materials { return r.mats }

// SpeedOfSound returns the configured speed of sound in meters per second.
func (r *Room) SpeedOfSound() float64 { return r.speedOfSound }

// Early returns the early-reflection subsystem.
func (r *Room) Early() *EarlyReflections { return &r.early }

// Late returns the late-reflection subsystem.
func (r *Room) Late() *LateReflections { return &r.late }

// Response is a snapshot of the acoustic parameters the rendering backend
// consumes: six first-order reflection taps and the per-band tail decay.
type Response struct {
	Early        [NumWalls]Reflection
	RT60         [NumBands]float64
	SpeedOfSound float64
}

// Response snapshots the current acoustic parameter set.
func (r *Room) Response() Response {
	return Response{
		Early:        r.early.Taps(),
		RT60:         r.late.RT60(),
		SpeedOfSound: r.speedOfSound,
	}
}

// ImpulseResponse synthesizes the room's impulse-response asset at the given
// sample rate: the six early taps at their delays followed by a band-shaped
// decaying noise tail. Duration is clamped to cover at least the longest
// early delay.
func (r *Room) ImpulseResponse(sampleRate, duration float64) ([]float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("room: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("room: duration must be > 0 and finite: %f", duration)
	}

	for _, tap := range r.early.Taps() {
		duration = math.Max(duration, tap.Delay)
	}

	n := int(math.Ceil(duration * sampleRate))

	tail, err := r.late.synthesizeTail(sampleRate, n)
	if err != nil {
		return nil, err
	}

	// The tail sits underneath the discrete taps, scaled by the mean
	// reflection gain so dead rooms stay dead.
	var meanGain float64
	for _, tap := range r.early.Taps() {
		meanGain += tap.Gain
	}
	meanGain /= float64(NumWalls)

	ir := make([]float64, n)
	for i := range ir {
		ir[i] = tail[i] * meanGain
	}

	for _, tap := range r.early.Taps() {
		idx := int(math.Round(tap.Delay * sampleRate))
		if idx >= 0 && idx < n {
			ir[idx] += tap.Gain
		}
	}

	return ir, nil
}
