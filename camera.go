package matrixcube

// CameraDistance is the distance from the camera to the cube origin, in cube units.
const CameraDistance = 520

// ProjectEpsilon is the smallest effective depth a point may have and still be projected.
const ProjectEpsilon = 1e-6

// Projected is a screen-space point with the perspective scale that produced it.
type Projected struct {
	Scale float64
	X     float64
	Y     float64
}

// Pt is a screen-space position.
type Pt struct {
	X float64
	Y float64
}

func (p Projected) Pt() Pt {
	return Pt{X: p.X, Y: p.Y}
}

// Project maps p onto the screen plane of a camera sitting distance units in front of the origin.
// Points at or behind the camera report false.
func Project(p Vec3, centerX, centerY, distance float64) (Projected, bool) {
	depth := distance + p[2]
	if depth <= ProjectEpsilon {
		return Projected{}, false
	}
	scale := distance / depth
	return Projected{
		Scale: scale,
		X:     centerX + p[0]*scale,
		Y:     centerY + p[1]*scale,
	}, true
}

// CameraPosition is where the cube camera sits.
func CameraPosition() Vec3 {
	return Vec3{0, 0, -CameraDistance}
}
