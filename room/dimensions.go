package room

import (
	"fmt"
	"math"
)

// volumeEpsilon is the floor applied to room volume and absorption area so
// decay estimates stay finite for degenerate rooms.
const volumeEpsilon = 1e-6

// Dimensions is the room extent in meters. The room is an axis-aligned box
// centered at the world origin.
type Dimensions struct {
	Width  float64
	Height float64
	Depth  float64
}

// NewDimensions validates room dimensions. All extents must be non-negative
// and finite; zero extents describe the degenerate "no room" case.
func NewDimensions(width, height, depth float64) (Dimensions, error) {
	for _, v := range []float64{width, height, depth} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Dimensions{}, fmt.Errorf("room: dimensions must be >= 0 and finite: %fx%fx%f",
				width, height, depth)
		}
	}

	return Dimensions{Width: width, Height: height, Depth: depth}, nil
}

// Volume returns the room volume in cubic meters.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// WallAreas returns the surface area of each wall in square meters.
func (d Dimensions) WallAreas() [NumWalls]float64 {
	side := d.Height * d.Depth
	floor := d.Width * d.Depth
	face := d.Width * d.Height

	return [NumWalls]float64{
		WallLeft:    side,
		WallRight:   side,
		WallFloor:   floor,
		WallCeiling: floor,
		WallBack:    face,
		WallFront:   face,
	}
}
