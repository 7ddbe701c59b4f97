package polytope4d

import "github.com/go-gl/mathgl/mgl64"

// CubeVertices are the corners of the unit cube centred at the origin,
// x varying fastest.
var CubeVertices = func() []Vector3 {
	out := make([]Vector3, 0, 8)
	for z := -1; z <= 1; z += 2 {
		for y := -1; y <= 1; y += 2 {
			for x := -1; x <= 1; x += 2 {
				out = append(out, Vector3{0.5 * Real(x), 0.5 * Real(y), 0.5 * Real(z)})
			}
		}
	}
	return out
}()

// CubeEdges joins CubeVertices differing in one coordinate.
var CubeEdges = func() [][2]int {
	var out [][2]int
	for i := range CubeVertices {
		for j := i + 1; j < len(CubeVertices); j++ {
			d := 0
			for a := 0; a < 3; a++ {
				if CubeVertices[i][a] != CubeVertices[j][a] {
					d++
				}
			}
			if d == 1 {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}()

// CubeFaces are the quads z-, z+, y-, y+, x-, x+ of CubeVertices.
var CubeFaces = [6][4]int{
	{0, 1, 3, 2}, {4, 6, 7, 5},
	{0, 4, 5, 1}, {2, 3, 7, 6},
	{0, 2, 6, 4}, {1, 5, 7, 3},
}

// netCube places one tesseract cell in the unfolded net: Center is its
// position in the Dalí cross, fold maps a local cube corner to the 4D
// tesseract vertex it becomes when folded.
type netCube struct {
	label  string
	center Vector3
	fold   func(l Vector3) Vector4
}

var daliCross = [8]netCube{
	{"central (w-)", Vector3{0, 0, 0}, func(l Vector3) Vector4 { return Vector4{l[0], l[1], l[2], -0.5} }},
	{"outer (w+)", Vector3{0, 0, -2}, func(l Vector3) Vector4 { return Vector4{l[0], l[1], -l[2], 0.5} }},
	{"right (x+)", Vector3{1, 0, 0}, func(l Vector3) Vector4 { return Vector4{0.5, l[1], l[2], l[0]} }},
	{"left (x-)", Vector3{-1, 0, 0}, func(l Vector3) Vector4 { return Vector4{-0.5, l[1], l[2], -l[0]} }},
	{"front (y+)", Vector3{0, 1, 0}, func(l Vector3) Vector4 { return Vector4{l[0], 0.5, l[2], l[1]} }},
	{"back (y-)", Vector3{0, -1, 0}, func(l Vector3) Vector4 { return Vector4{l[0], -0.5, l[2], -l[1]} }},
	{"top (z+)", Vector3{0, 0, 1}, func(l Vector3) Vector4 { return Vector4{l[0], l[1], 0.5, l[2]} }},
	{"bottom (z-)", Vector3{0, 0, -1}, func(l Vector3) Vector4 { return Vector4{l[0], l[1], -0.5, -l[2]} }},
}

// NetCube is one cube of the tesseract net at a given fold.
type NetCube struct {
	Label     string
	Positions []Vector3 // indexed like CubeVertices
}

// TesseractNet interpolates the 8 cubes between the unfolded Dalí cross
// (foldT 0) and the projected folded tesseract (foldT 1). foldT is clamped
// to [0, 1].
func TesseractNet(foldT, viewDistance Real, mode ProjectionMode) []NetCube {
	t := mgl64.Clamp(foldT, 0, 1)
	out := make([]NetCube, len(daliCross))
	for i, c := range daliCross {
		pos := make([]Vector3, len(CubeVertices))
		for k, l := range CubeVertices {
			flat := l.Add(c.center)
			folded := Project(c.fold(l), viewDistance, mode)
			pos[k] = flat.Mul(1 - t).Add(folded.Mul(t))
		}
		out[i] = NetCube{Label: c.label, Positions: pos}
	}
	return out
}

// NetVertex4 returns the tesseract vertex that corner k of net cube i folds
// onto.
func NetVertex4(i, k int) Vector4 { return daliCross[i].fold(CubeVertices[k]) }
