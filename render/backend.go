package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-spatial/room"
)

// Node identifies an audio-graph connection point owned by the control
// layer. The backend wires nodes together once its resources are ready; the
// core never touches samples itself.
type Node struct {
	Name     string
	Channels int
}

// Graph carries the three connection points a scene exposes to the backend:
// the pre-rotation ambisonic input, the rotated ambisonic output and the
// binaural output.
type Graph struct {
	AmbisonicInput Node
	RotatedOutput  Node
	BinauralOutput Node
}

// Backend is the rendering collaborator that decodes ambisonic channels,
// applies the listener rotation and produces the binaural output. Backends
// initialize their impulse-response resources asynchronously: Ready is
// closed once initialization finishes, after which Err reports whether it
// succeeded. Parameter setters must be cheap and callable before readiness;
// a backend that is not ready yet may drop them, the scene re-pushes current
// values when the graph is connected.
type Backend interface {
	// Ready is closed when asynchronous initialization completes.
	Ready() <-chan struct{}

	// Err reports the initialization outcome. It is only meaningful after
	// Ready is closed.
	Err() error

	// SetListenerRotation pushes a world-to-listener rotation with rows
	// [right, up, back].
	SetListenerRotation(m mgl64.Mat3)

	// SetSourceCoefficients pushes the scaled ambisonic encoding
	// coefficients for one source slot.
	SetSourceCoefficients(slot int, coeffs []float64)

	// SetRoomResponse pushes the room's early/late reflection parameters.
	SetRoomResponse(resp room.Response)

	// Connect wires the scene's graph connection points. Called exactly
	// once, after Ready.
	Connect(g Graph) error
}
