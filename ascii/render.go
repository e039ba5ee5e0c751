// Package ascii renders the rotating cube as a block of monospaced text.
package ascii

import (
	"math"
	"strings"

	"github.com/smasonuk/matrixcube"
)

// Luma is the brightness ramp from dim to dense.
const Luma = " .:-=+*#%@"

// FaceSymbols replace the two densest ramp steps, one per face.
var FaceSymbols = [6]byte{'$', '%', '&', '=', '+', '~'}

// EdgeGlyph is stamped along every cube edge.
const EdgeGlyph = '@'

// EdgeSegments is how many pieces each edge is sampled in.
const EdgeSegments = 28

var light = matrixcube.Norm(matrixcube.Vec3{0.35, -0.25, 1})

// Rot is a set of X, Y and Z rotation angles.
type Rot struct {
	A float64
	B float64
	C float64
}

// RotationAt is the pose of the cube after seconds of animation.
func RotationAt(seconds float64) Rot {
	return Rot{A: seconds * 0.9, B: seconds * 1.1, C: seconds * 0.7}
}

func (r Rot) apply(v matrixcube.Vec3) matrixcube.Vec3 {
	return matrixcube.RotateXYZ(v, r.A, r.B, r.C)
}

type face struct {
	id     int
	normal matrixcube.Vec3
	point  func(u, v float64) matrixcube.Vec3
}

type buffer struct {
	cols  int
	rows  int
	chars []byte
	zbuf  []float64
}

func newBuffer(size Size) *buffer {
	n := size.Cols * size.Rows
	b := &buffer{
		cols:  size.Cols,
		rows:  size.Rows,
		chars: make([]byte, n),
		zbuf:  make([]float64, n),
	}
	for i := range b.chars {
		b.chars[i] = ' '
		b.zbuf[i] = math.Inf(-1)
	}
	return b
}

// put keeps the glyph nearest the camera, judged by inverse depth.
func (b *buffer) put(sx, sy int, invZ float64, ch byte) {
	i := sy*b.cols + sx
	if invZ > b.zbuf[i] {
		b.zbuf[i] = invZ
		b.chars[i] = ch
	}
}

func (b *buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for y := 0; y < b.rows; y++ {
		sb.Write(b.chars[y*b.cols : (y+1)*b.cols])
		sb.WriteByte('\n')
	}
	return sb.String()
}

type projection struct {
	invZ float64
	sx   int
	sy   int
}

// Render draws the cube at rot into a size.Cols x size.Rows grid.
// Every row ends in a newline.
func Render(params Params, rot Rot, size Size) string {
	if size.Cols <= 0 || size.Rows <= 0 {
		return ""
	}
	buf := newBuffer(size)
	step := params.CubeHalf / max(8, params.SampleDivisor)
	h := params.CubeHalf

	project := func(p matrixcube.Vec3) (projection, bool) {
		pr := rot.apply(p)
		z := pr[2] + params.Dist
		if z <= 0.01 {
			return projection{}, false
		}
		invZ := 1 / z
		sx := int(math.Floor(float64(size.Cols)/2 + pr[0]*invZ*params.Scale))
		sy := int(math.Floor(float64(size.Rows)/2 + pr[1]*invZ*params.Scale/params.Aspect))
		if sx < 0 || sx >= size.Cols || sy < 0 || sy >= size.Rows {
			return projection{}, false
		}
		return projection{invZ: invZ, sx: sx, sy: sy}, true
	}

	faces := [6]face{
		{0, matrixcube.Vec3{1, 0, 0}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{h, u, v} }},
		{1, matrixcube.Vec3{-1, 0, 0}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{-h, u, v} }},
		{2, matrixcube.Vec3{0, 1, 0}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{u, h, v} }},
		{3, matrixcube.Vec3{0, -1, 0}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{u, -h, v} }},
		{4, matrixcube.Vec3{0, 0, 1}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{u, v, h} }},
		{5, matrixcube.Vec3{0, 0, -1}, func(u, v float64) matrixcube.Vec3 { return matrixcube.Vec3{u, v, -h} }},
	}

	nearest := 1 / (params.Dist + h*2)
	if step > 0 {
		for _, f := range faces {
			n := matrixcube.Norm(rot.apply(f.normal))
			if n[2] <= 0.02 {
				continue
			}
			intensity := matrixcube.Clamp((matrixcube.Dot(n, light)+1)/2, 0, 1)
			for u := -h; u <= h; u += step {
				for v := -h; v <= h; v += step {
					p, ok := project(f.point(u, v))
					if !ok {
						continue
					}
					boost := matrixcube.Clamp((p.invZ-nearest)*6, 0, 0.25)
					buf.put(p.sx, p.sy, p.invZ, shade(matrixcube.Clamp(intensity+boost, 0, 1), f.id))
				}
			}
		}
	}

	vertices := matrixcube.NewCubeVertices(h)
	for _, e := range matrixcube.CubeEdges {
		a, b := vertices[e[0]], vertices[e[1]]
		for k := 0; k <= EdgeSegments; k++ {
			p, ok := project(matrixcube.Lerp3(a, b, float64(k)/EdgeSegments))
			if !ok {
				continue
			}
			buf.put(p.sx, p.sy, p.invZ+1e-6, EdgeGlyph)
		}
	}

	return buf.String()
}

// shade maps intensity onto Luma, swapping the top two steps for the face symbol.
func shade(intensity float64, faceID int) byte {
	idx := max(0, min(len(Luma)-1, int(math.Round(intensity*float64(len(Luma)-1)))))
	if idx >= len(Luma)-2 {
		return FaceSymbols[max(0, min(len(FaceSymbols)-1, faceID))]
	}
	return Luma[idx]
}
