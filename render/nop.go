package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-spatial/room"
)

// NopBackend is an immediately-ready backend that discards every push. It
// serves headless use and tests.
type NopBackend struct {
	ready chan struct{}
}

// NewNopBackend creates a backend that is ready from construction.
func NewNopBackend() *NopBackend {
	ready := make(chan struct{})
	close(ready)

	return &NopBackend{ready: ready}
}

// Ready reports immediate readiness.
func (b *NopBackend) Ready() <-chan struct{} { return b.ready }

// Err always reports success.
func (b *NopBackend) Err() error { return nil }

// SetListenerRotation discards the rotation.
func (b *NopBackend) SetListenerRotation(mgl64.Mat3) {}

// SetSourceCoefficients discards the coefficients.
func (b *NopBackend) SetSourceCoefficients(int, []float64) {}

// SetRoomResponse discards the response.
func (b *NopBackend) SetRoomResponse(room.Response) {}

// Connect accepts any graph.
func (b *NopBackend) Connect(Graph) error { return nil }
