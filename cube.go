package matrixcube

// CubeVertices are the unit cube corners.
var CubeVertices = [8]Vec3{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

// CubeEdges index into CubeVertices.
var CubeEdges = [12][2]int{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// CubeFaces list four vertex indices per face with consistent winding.
var CubeFaces = [6][4]int{
	{0, 1, 2, 3}, // back  (z = -1)
	{4, 5, 6, 7}, // front (z = +1)
	{0, 1, 5, 4}, // top   (y = -1)
	{2, 3, 7, 6}, // bottom(y = +1)
	{1, 2, 6, 5}, // right (x = +1)
	{0, 3, 7, 4}, // left  (x = -1)
}

// NewCubeVertices scales the unit cube to the given half-size.
func NewCubeVertices(halfSize float64) []Vec3 {
	out := make([]Vec3, len(CubeVertices))
	for i, v := range CubeVertices {
		out[i] = v.Mul(halfSize)
	}
	return out
}
