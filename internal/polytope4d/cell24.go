package polytope4d

import "math"

// cell24Index is the vertex index of (…si…sj…) on axis pair p.
func cell24Index(p int, si, sj Real) int {
	idx := p * 4
	if si < 0 {
		idx += 2
	}
	if sj < 0 {
		idx++
	}
	return idx
}

// buildCell24: all (±1,±1,0,0) permutations indexed pair*4+signs, √2 edges,
// 8 axis-fixed octahedra plus 16 sign-vector octahedra.
func buildCell24(depFunc) *Polytope {
	pairs := axisPairs()
	vs := make([]Vector4, 0, 24)
	for _, pr := range pairs {
		for _, si := range []Real{1, -1} {
			for _, sj := range []Real{1, -1} {
				var v Vector4
				v[pr[0]], v[pr[1]] = si, sj
				vs = append(vs, v)
			}
		}
	}
	edges := bandEdges(vs, math.Sqrt2, EdgeRelTolerance)

	cells := make([]Cell, 0, 24)
	for axis := 0; axis < 4; axis++ {
		for _, sign := range []Real{1, -1} {
			cv := make([]int, 0, 6)
			for k, v := range vs {
				if math.Abs(v[axis]-sign) < CellCoordEps {
					cv = append(cv, k)
				}
			}
			cells = append(cells, Cell{Vertices: cv, Type: CellOctahedron})
		}
	}
	for _, s := range halfCubeVerts(1) {
		cv := make([]int, 0, 6)
		for p, pr := range pairs {
			cv = append(cv, cell24Index(p, s[pr[0]], s[pr[1]]))
		}
		cells = append(cells, Cell{Vertices: cv, Type: CellOctahedron})
	}
	return &Polytope{
		Kind:     Cell24,
		Vertices: vs,
		Edges:    edges,
		Cells:    cells,
		HasCells: true,
	}
}
