package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spatial/ambisonic"
	"github.com/cwbudde/algo-spatial/geom"
)

// Listener owns the rendering-backend handle: it derives world-to-listener
// rotation matrices from its orientation and pushes them to the backend.
// Mutations that also affect dependent state (room geometry, source gains)
// go through the Scene, which guarantees the update ordering.
type Listener struct {
	scene     *Scene
	order     ambisonic.Order
	transform geom.Transform
}

// Order returns the scene-wide ambisonic order.
func (l *Listener) Order() ambisonic.Order { return l.order }

// Position returns the current listener position.
func (l *Listener) Position() mgl64.Vec3 {
	l.scene.mu.Lock()
	defer l.scene.mu.Unlock()

	return l.transform.Position
}

// Transform returns the current listener transform.
func (l *Listener) Transform() geom.Transform {
	l.scene.mu.Lock()
	defer l.scene.mu.Unlock()

	return l.transform
}

// Rotation returns the current world-to-listener rotation matrix, rows
// [right, up, back].
func (l *Listener) Rotation() mgl64.Mat3 {
	l.scene.mu.Lock()
	defer l.scene.mu.Unlock()

	return l.transform.Rotation()
}

// SetOrientation validates the forward/up pair, derives the rotation matrix
// and pushes it to the backend. Until the backend's graph is connected the
// matrix lives as local state only; the connection re-reads it when wiring.
func (l *Listener) SetOrientation(forward, up mgl64.Vec3) error {
	l.scene.mu.Lock()
	defer l.scene.mu.Unlock()

	if l.scene.closed {
		return ErrSceneClosed
	}

	return l.setOrientationLocked(forward, up)
}

func (l *Listener) setOrientationLocked(forward, up mgl64.Vec3) error {
	if err := l.transform.SetOrientation(forward, up); err != nil {
		return err
	}

	l.pushRotationLocked()

	return nil
}

// setFromWorldMatrixLocked extracts orientation and position from a
// local-to-world matrix and pushes the rotation. Position propagation to
// room and sources is the scene's responsibility.
func (l *Listener) setFromWorldMatrixLocked(m mgl64.Mat4) error {
	t, err := geom.FromWorldMatrix(m)
	if err != nil {
		return err
	}

	l.transform = t
	l.pushRotationLocked()

	return nil
}

func (l *Listener) pushRotationLocked() {
	if !l.scene.connected {
		l.scene.log.Debug("rotation push deferred until backend connects")
		return
	}

	l.scene.backend.SetListenerRotation(l.transform.Rotation())
	l.scene.log.Debug("listener rotation pushed", zap.Any("forward", l.transform.Forward))
}
