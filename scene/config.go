package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spatial/ambisonic"
	"github.com/cwbudde/algo-spatial/geom"
	"github.com/cwbudde/algo-spatial/room"
)

// Option mutates scene construction parameters. All options validate their
// input; the resulting configuration is resolved once at construction and
// never mutated afterwards.
type Option func(*config) error

type config struct {
	order    ambisonic.Order
	listener geom.Transform
	roomOpts []room.Option
	logger   *zap.Logger
}

func defaultConfig() config {
	return config{
		order:    ambisonic.OrderFirst,
		listener: geom.IdentityTransform(),
		logger:   zap.NewNop(),
	}
}

// WithAmbisonicOrder sets the scene-wide ambisonic order. Unsupported orders
// fail construction; every source encodes at this shared order.
func WithAmbisonicOrder(n int) Option {
	return func(cfg *config) error {
		order, err := ambisonic.ParseOrder(n)
		if err != nil {
			return err
		}

		cfg.order = order

		return nil
	}
}

// WithListenerPosition sets the initial listener position in meters.
func WithListenerPosition(x, y, z float64) Option {
	return func(cfg *config) error {
		cfg.listener.Position = mgl64.Vec3{x, y, z}
		return nil
	}
}

// WithListenerOrientation sets the initial listener forward/up pair. The
// pair must span a plane.
func WithListenerOrientation(forward, up mgl64.Vec3) Option {
	return func(cfg *config) error {
		return cfg.listener.SetOrientation(forward, up)
	}
}

// WithRoomDimensions sets the room extent in meters.
func WithRoomDimensions(width, height, depth float64) Option {
	return func(cfg *config) error {
		cfg.roomOpts = append(cfg.roomOpts, room.WithDimensions(width, height, depth))
		return nil
	}
}

// WithRoomMaterials assigns per-wall material names in wall order.
func WithRoomMaterials(names [room.NumWalls]string) Option {
	return func(cfg *config) error {
		cfg.roomOpts = append(cfg.roomOpts, room.WithMaterials(names))
		return nil
	}
}

// WithUniformRoomMaterial assigns one named material to all six walls.
func WithUniformRoomMaterial(name string) Option {
	return func(cfg *config) error {
		cfg.roomOpts = append(cfg.roomOpts, room.WithUniformMaterial(name))
		return nil
	}
}

// WithSpeedOfSound sets the speed of sound in meters per second, shared by
// every delay computation in the scene.
func WithSpeedOfSound(speed float64) Option {
	return func(cfg *config) error {
		cfg.roomOpts = append(cfg.roomOpts, room.WithSpeedOfSound(speed))
		return nil
	}
}

// WithLogger sets the structured logger for scene lifecycle events. The
// default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}
