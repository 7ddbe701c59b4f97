package polytope4d

import "math"

// buildTesseract: vertices {±½}⁴ with x varying fastest, Hamming-1 edges and
// 8 cubic cells with one axis fixed to ±½ (axis-major, + before -).
func buildTesseract(depFunc) *Polytope {
	vs := halfCubeVerts(0.5)
	cells := make([]Cell, 0, 8)
	for axis := 0; axis < 4; axis++ {
		for _, sign := range []Real{0.5, -0.5} {
			cv := make([]int, 0, 8)
			for i, v := range vs {
				if math.Abs(v[axis]-sign) < CellCoordEps {
					cv = append(cv, i)
				}
			}
			cells = append(cells, Cell{Vertices: cv, Type: CellCube})
		}
	}
	return &Polytope{
		Kind:     Tesseract,
		Vertices: vs,
		Edges:    hammingEdges(vs, HammingCoordEps),
		Cells:    cells,
		HasCells: true,
	}
}

// tesseractCellAxis returns the fixed axis and its sign for a tesseract
// cell index as produced by buildTesseract.
func tesseractCellAxis(i int) (axis int, sign Real) {
	sign = 0.5
	if i%2 == 1 {
		sign = -0.5
	}
	return i / 2, sign
}
