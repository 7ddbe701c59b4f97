package polytope4d

import "math"

// canonicalCell5 returns the regular 5-cell: four vertices (±1,±1,±1,-1/√5)
// with an even number of minus signs among x,y,z plus one vertex on the
// w axis balancing the centroid at the origin. Each is scaled to unit radius.
func canonicalCell5() []Vector4 {
	s5 := math.Sqrt(5)
	vs := []Vector4{
		{1, 1, 1, -1 / s5},
		{1, -1, -1, -1 / s5},
		{-1, 1, -1, -1 / s5},
		{-1, -1, 1, -1 / s5},
		{0, 0, 0, s5 - 1/s5},
	}
	for i := range vs {
		vs[i] = Normalize4(vs[i])
	}
	return vs
}

// buildCell5: every vertex pair is an edge; each cell omits one vertex.
func buildCell5(depFunc) *Polytope {
	vs := canonicalCell5()
	cells := make([]Cell, 0, len(vs))
	for skip := range vs {
		cv := make([]int, 0, len(vs)-1)
		for i := range vs {
			if i != skip {
				cv = append(cv, i)
			}
		}
		cells = append(cells, Cell{Vertices: cv, Type: CellTetrahedron})
	}
	return &Polytope{
		Kind:     Cell5,
		Vertices: vs,
		Edges:    completeEdges(len(vs)),
		Cells:    cells,
		HasCells: true,
	}
}
