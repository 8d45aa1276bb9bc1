package room

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Reflection is one first-order wall reflection: a delayed, attenuated copy
// of the direct sound.
type Reflection struct {
	Wall  Wall
	Delay float64 // seconds, round trip listener-to-wall
	Gain  float64 // linear reflection gain
}

// EarlyReflections models the six first-order wall reflections around a
// listener inside the room. Delays follow from listener-to-wall distances
// and the speed of sound; gains follow from per-wall absorption.
type EarlyReflections struct {
	taps [NumWalls]Reflection
}

// Taps returns the current reflection set in wall order.
func (e *EarlyReflections) Taps() [NumWalls]Reflection {
	return e.taps
}

// recompute rebuilds all six taps from the full current parameter set.
func (e *EarlyReflections) recompute(dims Dimensions, mats Materials, listener mgl64.Vec3, speedOfSound float64) {
	halfW := dims.Width / 2
	halfH := dims.Height / 2
	halfD := dims.Depth / 2

	// Distance from the listener to each wall plane. A listener outside the
	// box clamps to the wall itself.
	distances := [NumWalls]float64{
		WallLeft:    halfW + listener.X(),
		WallRight:   halfW - listener.X(),
		WallFloor:   halfH + listener.Y(),
		WallCeiling: halfH - listener.Y(),
		WallBack:    halfD + listener.Z(),
		WallFront:   halfD - listener.Z(),
	}

	for wall := range e.taps {
		distance := math.Max(distances[wall], 0)
		absorption := mgl64.Clamp(mats[wall].MeanAbsorption(), 0, 1)

		e.taps[wall] = Reflection{
			Wall:  Wall(wall),
			Delay: 2 * distance / speedOfSound,
			Gain:  math.Sqrt(1 - absorption),
		}
	}
}
