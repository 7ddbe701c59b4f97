package polytope4d

// buildCell16: the 8 vectors ±eᵢ ordered +x,-x,+y,-y,...; every pair that is
// not antipodal is an edge, and each cell picks one vertex per axis pair.
func buildCell16(depFunc) *Polytope {
	vs := axisVerts()
	var edges []Edge
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			// antipodal pairs sit at distance 2, adjacent ones at √2
			if Dist4(vs[i], vs[j]) < 1.5 {
				edges = append(edges, Edge{i, j})
			}
		}
	}
	cells := make([]Cell, 0, 16)
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				for d := 0; d < 2; d++ {
					cells = append(cells, Cell{Vertices: []int{a, 2 + b, 4 + c, 6 + d}, Type: CellTetrahedron})
				}
			}
		}
	}
	return &Polytope{
		Kind:     Cell16,
		Vertices: vs,
		Edges:    edges,
		Cells:    cells,
		HasCells: true,
	}
}
