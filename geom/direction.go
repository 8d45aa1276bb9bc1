package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// coincidentEpsilon is the squared distance below which two points are
// treated as coincident for bearing purposes.
const coincidentEpsilon = 1e-12

// Direction returns the unit vector from one point to another. The second
// result is false when the points coincide.
func Direction(from, to mgl64.Vec3) (mgl64.Vec3, bool) {
	d := to.Sub(from)
	if d.Dot(d) <= coincidentEpsilon {
		return mgl64.Vec3{}, false
	}

	return d.Normalize(), true
}

// AzimuthElevation returns the bearing of a world-space point in the
// transform's frame, using the ambisonic convention: azimuth measured from
// the forward axis, positive to the left; elevation positive upward. A point
// coincident with the transform's position is treated as straight ahead.
func AzimuthElevation(t Transform, point mgl64.Vec3) (azimuth, elevation float64) {
	dir, ok := Direction(t.Position, point)
	if !ok {
		return 0, 0
	}

	right, up, forward := t.Basis()

	front := dir.Dot(forward)
	left := -dir.Dot(right)
	top := dir.Dot(up)

	azimuth = math.Atan2(left, front)
	elevation = math.Asin(mgl64.Clamp(top, -1, 1))

	return azimuth, elevation
}
