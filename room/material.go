package room

import (
	"errors"
	"fmt"
	"sort"
)

// NumBands is the number of octave bands absorption profiles are defined
// over.
const NumBands = 6

// BandCenters holds the octave-band center frequencies in Hz.
var BandCenters = [NumBands]float64{125, 250, 500, 1000, 2000, 4000}

// ErrUnknownMaterial reports a material name outside the built-in table.
var ErrUnknownMaterial = errors.New("room: unknown material")

// Material is a named wall absorption profile over the octave bands.
type Material struct {
	Name       string
	Absorption [NumBands]float64
}

// Wall identifies one of the six axis-aligned room surfaces.
type Wall int

const (
	WallLeft Wall = iota
	WallRight
	WallFloor
	WallCeiling
	WallBack
	WallFront

	// NumWalls is the number of room surfaces.
	NumWalls
)

// String returns the wall name used in configuration.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallFloor:
		return "floor"
	case WallCeiling:
		return "ceiling"
	case WallBack:
		return "back"
	case WallFront:
		return "front"
	default:
		return fmt.Sprintf("wall(%d)", int(w))
	}
}

// Materials assigns one absorption profile per wall.
type Materials [NumWalls]Material

// UniformMaterials assigns the same material to all six walls.
func UniformMaterials(m Material) Materials {
	var mats Materials
	for i := range mats {
		mats[i] = m
	}

	return mats
}

// materialTable holds measured octave-band absorption coefficients for
// common surface treatments.
var materialTable = map[string][NumBands]float64{
	"transparent":               {1, 1, 1, 1, 1, 1},
	"acoustic-ceiling-tiles":    {0.50, 0.70, 0.60, 0.70, 0.70, 0.50},
	"brick-bare":                {0.03, 0.03, 0.03, 0.04, 0.05, 0.07},
	"brick-painted":             {0.01, 0.01, 0.02, 0.02, 0.02, 0.03},
	"concrete-block-coarse":     {0.36, 0.44, 0.31, 0.29, 0.39, 0.25},
	"concrete-block-painted":    {0.10, 0.05, 0.06, 0.07, 0.09, 0.08},
	"curtain-heavy":             {0.14, 0.35, 0.55, 0.72, 0.70, 0.65},
	"fiberglass-insulation":     {0.43, 0.86, 0.99, 0.99, 0.99, 0.99},
	"glass-thin":                {0.08, 0.04, 0.03, 0.03, 0.02, 0.02},
	"glass-thick":               {0.18, 0.06, 0.04, 0.03, 0.02, 0.02},
	"grass":                     {0.11, 0.26, 0.60, 0.69, 0.92, 0.99},
	"linoleum-on-concrete":      {0.02, 0.03, 0.03, 0.03, 0.03, 0.02},
	"marble":                    {0.01, 0.01, 0.01, 0.01, 0.02, 0.02},
	"metal-panel":               {0.59, 0.38, 0.19, 0.09, 0.05, 0.04},
	"parquet-on-concrete":       {0.04, 0.04, 0.07, 0.06, 0.06, 0.07},
	"plaster-smooth":            {0.01, 0.02, 0.02, 0.03, 0.04, 0.05},
	"plywood-panel":             {0.28, 0.22, 0.17, 0.09, 0.10, 0.11},
	"polished-concrete-or-tile": {0.01, 0.01, 0.02, 0.02, 0.02, 0.02},
	"sheet-rock":                {0.29, 0.10, 0.05, 0.04, 0.07, 0.09},
	"water-or-ice-surface":      {0.01, 0.01, 0.01, 0.02, 0.02, 0.03},
	"wood-ceiling":              {0.15, 0.11, 0.10, 0.07, 0.06, 0.07},
	"wood-panel":                {0.28, 0.22, 0.17, 0.09, 0.10, 0.11},
}

// ParseMaterial looks up a named absorption profile. Unknown names fail with
// ErrUnknownMaterial rather than defaulting silently.
func ParseMaterial(name string) (Material, error) {
	absorption, ok := materialTable[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}

	return Material{Name: name, Absorption: absorption}, nil
}

// MaterialNames returns the known material names in sorted order.
func MaterialNames() []string {
	names := make([]string, 0, len(materialTable))
	for name := range materialTable {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// MeanAbsorption returns the absorption averaged across all bands.
func (m Material) MeanAbsorption() float64 {
	var sum float64
	for _, a := range m.Absorption {
		sum += a
	}

	return sum / NumBands
}
