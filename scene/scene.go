package scene

import (
	"context"
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spatial/ambisonic"
	"github.com/cwbudde/algo-spatial/gain"
	"github.com/cwbudde/algo-spatial/render"
	"github.com/cwbudde/algo-spatial/room"
)

// Errors reported by scene state checks.
var (
	// ErrSceneClosed reports an operation on a closed scene.
	ErrSceneClosed = errors.New("scene: scene is closed")
	// ErrSourceDestroyed reports an operation on a removed source.
	ErrSourceDestroyed = errors.New("scene: source has been destroyed")
)

// Scene is the single entry point for scene mutation: it owns the room, the
// listener and the source collection, and propagates every state change to
// the dependent components in a fixed order.
type Scene struct {
	mu sync.Mutex

	order    ambisonic.Order
	backend  render.Backend
	room     *room.Room
	listener *Listener
	sources  arena

	conn   *render.Connection
	cancel context.CancelFunc
	log    *zap.Logger

	// connected turns true inside connect while the scene mutex is held, so
	// a mutation can never observe a wired graph without also seeing the
	// flag. Gating pushes on the Connection would leave a window between
	// connect returning and the deferred goroutine recording the outcome.
	connected bool
	closed    bool
}

// New creates a scene bound to a rendering backend. Configuration errors
// surface here; the backend's asynchronous initialization does not block
// construction, the graph is wired by a deferred continuation once the
// backend reports readiness.
func New(backend render.Backend, opts ...Option) (*Scene, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	rm, err := room.New(cfg.roomOpts...)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		order:   cfg.order,
		backend: backend,
		room:    rm,
		log:     cfg.logger,
	}

	s.listener = &Listener{
		scene:     s,
		order:     cfg.order,
		transform: cfg.listener,
	}

	pos := cfg.listener.Position
	rm.SetListenerPosition(pos.X(), pos.Y(), pos.Z())

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.conn = render.Defer(ctx, backend, s.connect)

	s.log.Debug("scene created",
		zap.Stringer("order", cfg.order),
		zap.Int("channels", cfg.order.ChannelCount()))

	return s, nil
}

// connect wires the audio graph once the backend is ready, then re-pushes
// the current rotation, room response and source coefficients so nothing
// set before readiness is lost.
func (s *Scene) connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSceneClosed
	}

	channels := s.order.ChannelCount()
	graph := render.Graph{
		AmbisonicInput: render.Node{Name: "ambisonic-input", Channels: channels},
		RotatedOutput:  render.Node{Name: "ambisonic-rotated", Channels: channels},
		BinauralOutput: render.Node{Name: "binaural-output", Channels: 2},
	}

	if err := s.backend.Connect(graph); err != nil {
		return err
	}

	s.connected = true

	s.backend.SetListenerRotation(s.listener.transform.Rotation())
	s.backend.SetRoomResponse(s.room.Response())
	s.sources.forEach(func(src *Source) {
		s.backend.SetSourceCoefficients(src.handle.index, src.coeffs)
	})

	s.log.Debug("backend graph connected", zap.Int("sources", s.sources.len()))

	return nil
}

// Listener returns the scene's listener.
func (s *Scene) Listener() *Listener { return s.listener }

// Order returns the scene-wide ambisonic order.
func (s *Scene) Order() ambisonic.Order { return s.order }

// Connection returns the deferred backend connection for observation.
func (s *Scene) Connection() *render.Connection { return s.conn }

// CreateSource constructs a source bound to this scene and appends it to
// the collection. Construction is atomic: the source is fully initialized,
// updated and registered before CreateSource returns.
func (s *Scene) CreateSource(opts ...SourceOption) (*Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSceneClosed
	}

	cfg := defaultSourceConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	att, err := gain.NewAttenuation(cfg.rolloff, cfg.minDistance, cfg.maxDistance)
	if err != nil {
		return nil, err
	}

	dir, err := gain.NewDirectivity(cfg.alpha, cfg.sharpness)
	if err != nil {
		return nil, err
	}

	enc, err := ambisonic.NewEncoder(s.order)
	if err != nil {
		return nil, err
	}

	src := &Source{
		scene:     s,
		transform: cfg.transform,
		gain:      cfg.gain,
		att:       att,
		dir:       dir,
		enc:       enc,
		coeffs:    make([]float64, s.order.ChannelCount()),
	}

	src.handle = s.sources.insert(src)
	src.updateLocked()

	s.log.Debug("source created",
		zap.Int("slot", src.handle.index),
		zap.Stringer("rolloff", cfg.rolloff))

	return src, nil
}

// DestroySource removes a source from the scene. Its slot is recycled; the
// handles of all other sources stay valid.
func (s *Scene) DestroySource(src *Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSceneClosed
	}
	if src == nil || src.scene != s || src.destroyed {
		return ErrSourceDestroyed
	}

	s.sources.remove(src.handle)
	src.destroyed = true

	if s.connected {
		s.backend.SetSourceCoefficients(src.handle.index, make([]float64, len(src.coeffs)))
	}

	s.log.Debug("source destroyed", zap.Int("slot", src.handle.index))

	return nil
}

// NumSources returns the number of live sources.
func (s *Scene) NumSources() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sources.len()
}

// SetListenerPosition moves the listener and re-propagates: listener state
// first, then the room's early-reflection geometry, then every source in
// creation order. Sources read listener state during their update, so the
// ordering is load-bearing.
func (s *Scene) SetListenerPosition(x, y, z float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSceneClosed
	}

	s.setListenerPositionLocked(x, y, z)

	return nil
}

func (s *Scene) setListenerPositionLocked(x, y, z float64) {
	s.listener.transform.Position = mgl64.Vec3{x, y, z}
	s.room.SetListenerPosition(x, y, z)

	if s.connected {
		s.backend.SetRoomResponse(s.room.Response())
	}

	s.sources.forEach(func(src *Source) {
		src.updateLocked()
	})
}

// SetListenerOrientation updates the listener orientation and pushes the
// derived rotation matrix. No source pass is needed: sources encode in the
// pre-rotation frame and their gains depend on positions only.
func (s *Scene) SetListenerOrientation(forward, up mgl64.Vec3) error {
	return s.listener.SetOrientation(forward, up)
}

// SetListenerFromMatrix syncs the listener from an external engine's
// local-to-world matrix: rotation is extracted and pushed, and because the
// translation column may have moved the listener, the same full propagation
// pass as SetListenerPosition runs afterwards.
func (s *Scene) SetListenerFromMatrix(m mgl64.Mat4) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSceneClosed
	}

	if err := s.listener.setFromWorldMatrixLocked(m); err != nil {
		return err
	}

	pos := s.listener.transform.Position
	s.setListenerPositionLocked(pos.X(), pos.Y(), pos.Z())

	return nil
}

// SetRoomProperties merges the supplied room options over the current room
// state, recomputes the reflection subsystems and pushes the new response to
// the backend. Source gains do not depend on room state, so no source pass
// runs.
func (s *Scene) SetRoomProperties(opts ...room.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSceneClosed
	}

	if err := s.room.SetProperties(opts...); err != nil {
		return err
	}

	if s.connected {
		s.backend.SetRoomResponse(s.room.Response())
	}

	s.log.Debug("room properties updated")

	return nil
}

// RoomResponse snapshots the room's current acoustic parameters.
func (s *Scene) RoomResponse() room.Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.room.Response()
}

// RoomImpulseResponse synthesizes the room's impulse-response asset.
func (s *Scene) RoomImpulseResponse(sampleRate, duration float64) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.room.ImpulseResponse(sampleRate, duration)
}

// Close tears the scene down. A backend connection still pending is
// cancelled and will never fire; further mutations fail with
// ErrSceneClosed. Close is idempotent.
func (s *Scene) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.cancel()
	s.log.Debug("scene closed")

	return nil
}
