package ascii

import (
	"strings"
	"testing"

	"github.com/smasonuk/matrixcube"
)

func TestGridSizeBounded(t *testing.T) {
	sizes := []struct{ w, h float64 }{
		{0, 0},
		{-50, 10},
		{1400, 720},
		{360, 160},
		{5000, 5000},
		{899, 401},
	}
	for _, tier := range matrixcube.Tiers {
		p := ProfileFor(tier)
		for _, s := range sizes {
			g := GridSize(s.w, s.h, p)
			if g.Cols < p.MinCols || g.Cols > p.MaxCols || g.Rows < p.MinRows || g.Rows > p.MaxRows {
				t.Errorf("%s GridSize(%v, %v) = %+v out of bounds", tier, s.w, s.h, g)
			}
		}
	}
	if g := GridSize(900, 450, ProfileFor(matrixcube.TierHigh)); g != (Size{Cols: 100, Rows: 25}) {
		t.Errorf("GridSize(900, 450) = %+v, want 100x25", g)
	}
}

func TestProfileFor(t *testing.T) {
	testCases := []struct {
		tier matrixcube.QualityTier
		fps  float64
		div  float64
	}{
		{matrixcube.TierLow, 18, 12},
		{matrixcube.TierMedium, 20, 14},
		{matrixcube.TierHigh, 24, 16},
		{"unknown", 24, 16},
	}
	for _, tc := range testCases {
		p := ProfileFor(tc.tier)
		if p.TargetFPS != tc.fps || p.SampleDivisor != tc.div {
			t.Errorf("ProfileFor(%s) = %+v", tc.tier, p)
		}
	}
}

func TestParamsFor(t *testing.T) {
	p := ProfileFor(matrixcube.TierMedium)
	testCases := []struct {
		size     Size
		cubeHalf float64
		scale    float64
	}{
		{Size{Cols: 72, Rows: 28}, 28 / 4.2, 28 * 1.72},
		{Size{Cols: 40, Rows: 16}, 7, 16 * 1.72},
		{Size{Cols: 132, Rows: 52}, 52 / 4.2, 52 * 1.72},
		{Size{Cols: 132, Rows: 100}, 16, 100 * 1.72},
	}
	for _, tc := range testCases {
		got := ParamsFor(tc.size, p)
		if got.Aspect != 2 || got.Dist != 22 {
			t.Errorf("ParamsFor(%+v) = %+v", tc.size, got)
		}
		if d := got.CubeHalf - max(7, tc.cubeHalf); d > 1e-9 || d < -1e-9 {
			t.Errorf("ParamsFor(%+v).CubeHalf = %v, want %v", tc.size, got.CubeHalf, tc.cubeHalf)
		}
		if d := got.Scale - tc.scale; d > 1e-9 || d < -1e-9 {
			t.Errorf("ParamsFor(%+v).Scale = %v, want %v", tc.size, got.Scale, tc.scale)
		}
	}
}

func TestRenderLineCount(t *testing.T) {
	p := ProfileFor(matrixcube.TierMedium)
	size := Size{Cols: 60, Rows: 24}
	out := Render(ParamsFor(size, p), Rot{A: 0.2, B: 0.4, C: 0.1}, size)

	lines := strings.Split(out, "\n")
	if len(lines) != size.Rows+1 {
		t.Fatalf("got %d lines, want %d", len(lines), size.Rows+1)
	}
	for i, line := range lines[:size.Rows] {
		if len(line) != size.Cols {
			t.Errorf("line %d has %d chars, want %d", i, len(line), size.Cols)
		}
	}
	if lines[size.Rows] != "" {
		t.Errorf("expected trailing newline, last piece %q", lines[size.Rows])
	}
}

func TestRenderShowsEdgesAndFaceSymbols(t *testing.T) {
	p := ProfileFor(matrixcube.TierHigh)
	size := Size{Cols: 96, Rows: 38}
	out := Render(ParamsFor(size, p), Rot{A: 1.0, B: 0.7, C: 0.2}, size)

	if !strings.ContainsRune(out, EdgeGlyph) {
		t.Error("missing edge glyph")
	}
	if !strings.ContainsAny(out, string(FaceSymbols[:])) {
		t.Error("missing face symbol")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	p := ProfileFor(matrixcube.TierLow)
	size := GridSize(720, 400, p)
	params := ParamsFor(size, p)
	rot := RotationAt(0)
	if a, b := Render(params, rot, size), Render(params, rot, size); a != b {
		t.Error("two renders of the same pose differ")
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	if out := Render(ParamsFor(Size{}, ProfileFor(matrixcube.TierLow)), Rot{}, Size{}); out != "" {
		t.Errorf("Render(empty) = %q", out)
	}
}

func TestShade(t *testing.T) {
	testCases := []struct {
		intensity float64
		face      int
		want      byte
	}{
		{0, 0, ' '},
		{0.5, 0, '+'},
		{0.45, 0, '='},
		{1, 0, '$'},
		{1, 3, '='},
		{0.85, 5, '~'},
		{1, 9, '~'},
		{0.7, 2, '*'},
	}
	for _, tc := range testCases {
		if got := shade(tc.intensity, tc.face); got != tc.want {
			t.Errorf("shade(%v, %d) = %q, want %q", tc.intensity, tc.face, got, tc.want)
		}
	}
}

func TestRotationAt(t *testing.T) {
	r := RotationAt(2)
	if r != (Rot{A: 1.8, B: 2.2, C: 1.4}) {
		t.Errorf("RotationAt(2) = %+v", r)
	}
}
