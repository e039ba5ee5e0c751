package ascii

import (
	"math"

	"github.com/smasonuk/matrixcube"
)

// Profile sizes the text grid and cube for one quality tier.
type Profile struct {
	CharHeight      float64 `json:"charHeight"`
	CharWidth       float64 `json:"charWidth"`
	CubeHalfMax     float64 `json:"cubeHalfMax"`
	CubeHalfMin     float64 `json:"cubeHalfMin"`
	Dist            float64 `json:"dist"`
	MaxCols         int     `json:"maxCols"`
	MaxRows         int     `json:"maxRows"`
	MinCols         int     `json:"minCols"`
	MinRows         int     `json:"minRows"`
	SampleDivisor   float64 `json:"sampleDivisor"`
	ScaleMultiplier float64 `json:"scaleMultiplier"`
	TargetFPS       float64 `json:"targetFps"`
}

var profiles = map[matrixcube.QualityTier]Profile{
	matrixcube.TierLow: {
		CharHeight: 18, CharWidth: 9,
		CubeHalfMax: 15, CubeHalfMin: 7,
		Dist:    22,
		MaxCols: 120, MaxRows: 48, MinCols: 40, MinRows: 16,
		SampleDivisor: 12, ScaleMultiplier: 1.56,
		TargetFPS: 18,
	},
	matrixcube.TierMedium: {
		CharHeight: 18, CharWidth: 9,
		CubeHalfMax: 16, CubeHalfMin: 7,
		Dist:    22,
		MaxCols: 132, MaxRows: 52, MinCols: 40, MinRows: 16,
		SampleDivisor: 14, ScaleMultiplier: 1.72,
		TargetFPS: 20,
	},
	matrixcube.TierHigh: {
		CharHeight: 18, CharWidth: 9,
		CubeHalfMax: 18, CubeHalfMin: 8,
		Dist:    23,
		MaxCols: 144, MaxRows: 56, MinCols: 40, MinRows: 16,
		SampleDivisor: 16, ScaleMultiplier: 1.68,
		TargetFPS: 24,
	},
}

// ProfileFor returns the profile for tier. Unknown tiers get the high profile.
func ProfileFor(tier matrixcube.QualityTier) Profile {
	if p, ok := profiles[tier]; ok {
		return p
	}
	return profiles[matrixcube.TierHigh]
}

// Size is a grid in character cells.
type Size struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// DefaultSize is the grid used before the container has been measured.
var DefaultSize = Size{Cols: 72, Rows: 28}

// MinContainerHeight is the smallest container height used for grid sizing.
const MinContainerHeight = 160

// GridSize fits a grid to a container of width x height pixels, within the profile's bounds.
func GridSize(width, height float64, p Profile) Size {
	return Size{
		Cols: clampInt(floorDiv(width, p.CharWidth), p.MinCols, p.MaxCols),
		Rows: clampInt(floorDiv(height, p.CharHeight), p.MinRows, p.MaxRows),
	}
}

func floorDiv(v, cell float64) int {
	if cell <= 0 || math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Floor(v / cell))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Params is the cube geometry for one grid.
type Params struct {
	Aspect        float64
	CubeHalf      float64
	Dist          float64
	SampleDivisor float64
	Scale         float64
}

// ParamsFor derives cube size and projection scale from the grid's smaller side.
func ParamsFor(size Size, p Profile) Params {
	minDim := float64(min(size.Cols, size.Rows))
	return Params{
		Aspect:        2,
		CubeHalf:      matrixcube.Clamp(minDim/4.2, p.CubeHalfMin, p.CubeHalfMax),
		Dist:          p.Dist,
		SampleDivisor: p.SampleDivisor,
		Scale:         minDim * p.ScaleMultiplier,
	}
}
