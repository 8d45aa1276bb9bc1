package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrientationEpsilon is the minimum squared magnitude of forward x up below
// which an orientation is considered degenerate.
const OrientationEpsilon = 1e-6

// ErrDegenerateOrientation reports a forward/up pair that spans no plane.
var ErrDegenerateOrientation = errors.New("geom: forward and up vectors are parallel or zero")

// DefaultForward is the forward axis of an identity orientation.
// The convention is right-handed with the listener looking down -Z.
var DefaultForward = mgl64.Vec3{0, 0, -1}

// DefaultUp is the up axis of an identity orientation.
var DefaultUp = mgl64.Vec3{0, 1, 0}

// Transform is a position in meters plus an orientation given as forward and
// up unit vectors. Construct with NewTransform so the orientation is
// validated and normalized; the zero value is not a valid transform.
type Transform struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3
	Up       mgl64.Vec3
}

// IdentityTransform returns a transform at the origin with the default
// orientation.
func IdentityTransform() Transform {
	return Transform{Forward: DefaultForward, Up: DefaultUp}
}

// NewTransform builds a transform from a position and a forward/up pair.
// Forward and up are normalized; the pair is rejected when their cross
// product is degenerate.
func NewTransform(position, forward, up mgl64.Vec3) (Transform, error) {
	f, u, err := normalizeOrientation(forward, up)
	if err != nil {
		return Transform{}, err
	}

	return Transform{Position: position, Forward: f, Up: u}, nil
}

// SetOrientation replaces the orientation, validating the new pair. Position
// is unchanged.
func (t *Transform) SetOrientation(forward, up mgl64.Vec3) error {
	f, u, err := normalizeOrientation(forward, up)
	if err != nil {
		return err
	}

	t.Forward = f
	t.Up = u

	return nil
}

// Right returns the right axis, forward x up.
func (t Transform) Right() mgl64.Vec3 {
	return t.Forward.Cross(t.Up)
}

// Basis returns the orthonormalized right/up/forward axes. Up is
// re-derived from right and forward so the three axes are mutually
// orthogonal even when the stored forward/up pair is only approximately so.
func (t Transform) Basis() (right, up, forward mgl64.Vec3) {
	forward = t.Forward.Normalize()
	right = forward.Cross(t.Up).Normalize()
	up = right.Cross(forward)

	return right, up, forward
}

// Rotation returns the world-to-listener rotation for this orientation as a
// 3x3 matrix with rows [right, up, back]. At the default orientation this is
// the identity.
func (t Transform) Rotation() mgl64.Mat3 {
	right, up, forward := t.Basis()
	back := forward.Mul(-1)

	return mgl64.Mat3FromRows(right, up, back)
}

// Matrix returns the local-to-world 4x4 transform: basis axes in the
// columns, position in the translation column.
func (t Transform) Matrix() mgl64.Mat4 {
	right, up, forward := t.Basis()
	back := forward.Mul(-1)

	return mgl64.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		back.Vec4(0),
		t.Position.Vec4(1),
	)
}

// Quaternion returns the orientation as a unit quaternion.
func (t Transform) Quaternion() mgl64.Quat {
	right, up, forward := t.Basis()
	back := forward.Mul(-1)

	m := mgl64.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		back.Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)

	return mgl64.Mat4ToQuat(m)
}

// FromWorldMatrix extracts a transform from a local-to-world 4x4 matrix.
// Column 0 is taken as right, column 1 as up, the negated column 2 as
// forward and column 3 as the position, matching the right-handed -Z-forward
// convention. The rotation block must be non-degenerate; scale and shear are
// removed by normalization.
func FromWorldMatrix(m mgl64.Mat4) (Transform, error) {
	up := m.Col(1).Vec3()
	forward := m.Col(2).Vec3().Mul(-1)
	position := m.Col(3).Vec3()

	t, err := NewTransform(position, forward, up)
	if err != nil {
		return Transform{}, fmt.Errorf("geom: world matrix rotation block is degenerate: %w", err)
	}

	return t, nil
}

func normalizeOrientation(forward, up mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, error) {
	cross := forward.Cross(up)
	if cross.Dot(cross) <= OrientationEpsilon || !finiteVec(forward) || !finiteVec(up) {
		return mgl64.Vec3{}, mgl64.Vec3{}, ErrDegenerateOrientation
	}

	return forward.Normalize(), up.Normalize(), nil
}

func finiteVec(v mgl64.Vec3) bool {
	for i := range 3 {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}

	return true
}
