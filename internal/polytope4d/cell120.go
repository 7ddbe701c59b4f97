package polytope4d

// buildCell120 takes the 600-cell's cell centroids, rescaled to unit radius,
// as vertices (the dual construction). Edges join centroids at the minimal
// distance. Dodecahedral cells are not derived.
func buildCell120(dep depFunc) *Polytope {
	src := dep(Cell600)
	vs := make([]Vector4, len(src.Cells))
	for i, c := range src.Cells {
		vs[i] = Normalize4(Centroid4(src.Vertices, c.Vertices))
	}
	edges, l := minDistanceEdges(vs)
	DebugLog("120-cell: %d vertices, edge length %.9f, %d edges", len(vs), l, len(edges))
	return &Polytope{
		Kind:     Cell120,
		Vertices: vs,
		Edges:    edges,
		HasCells: false,
	}
}
