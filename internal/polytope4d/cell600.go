package polytope4d

import "math"

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// verts600Unit returns the 120 vertices of the unit-radius 600-cell:
// 8 of ±eᵢ, 16 of (±½,±½,±½,±½) and 96 even permutations of
// (0, ±1/(2φ), ±½, ±φ/2). Duplicates are dropped after rounding.
func verts600Unit() []Vector4 {
	u := newUniqueSet(120)
	for _, v := range axisVerts() {
		u.push(v)
	}
	for _, v := range halfCubeVerts(0.5) {
		u.push(v)
	}
	tmpl := [4]Real{0, 1 / (2 * Phi), 0.5, Phi / 2}
	for _, perm := range evenPerms4() {
		var vals Vector4
		for i, src := range perm {
			vals[i] = tmpl[src]
		}
		for _, v := range signVariants(vals) {
			u.push(v)
		}
	}
	return u.out
}

// buildCell600: minimal-distance edges (1/φ) and 600 tetrahedra closed over
// the edge skeleton.
func buildCell600(depFunc) *Polytope {
	vs := verts600Unit()
	edges, l := minDistanceEdges(vs)
	DebugLog("600-cell: %d vertices, edge length %.9f, %d edges", len(vs), l, len(edges))
	sk := newSkeleton(len(vs), edges)
	tets := sk.tetrahedra(edges)
	cells := make([]Cell, len(tets))
	for i, t := range tets {
		cells[i] = Cell{Vertices: []int{t[0], t[1], t[2], t[3]}, Type: CellTetrahedron}
	}
	return &Polytope{
		Kind:     Cell600,
		Vertices: vs,
		Edges:    edges,
		Cells:    cells,
		HasCells: true,
	}
}
