package polytope4d

// CellMesh is one cell rotated and projected to 3D: Positions are indexed
// like the cell's vertex list, Edges and Triangles index into Positions.
type CellMesh struct {
	Index     int
	Type      CellType
	Positions []Vector3
	Edges     [][2]int
	Triangles [][3]int
}

// Centroid is the mean of the mesh positions.
func (m *CellMesh) Centroid() Vector3 { return Centroid3(m.Positions) }

// Translate shifts every position by d.
func (m *CellMesh) Translate(d Vector3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(d)
	}
}

func (p *Polytope) cellMesh(i int, proj []Vector3) CellMesh {
	c := p.Cells[i]
	pos := make([]Vector3, len(c.Vertices))
	for k, v := range c.Vertices {
		pos[k] = proj[v]
	}
	m := CellMesh{
		Index:     i,
		Type:      c.Type,
		Positions: pos,
		Edges:     p.cellEdges(c),
	}
	if len(pos) <= HullMaxPoints {
		m.Triangles = Hull(pos)
	}
	return m
}

// CellMesh rotates and projects cell i and triangulates its surface.
func (p *Polytope) CellMesh(i int, r Rot4, viewDistance Real, mode ProjectionMode) (*CellMesh, error) {
	c, err := p.Cell(i)
	if err != nil {
		return nil, err
	}
	proj := make([]Vector3, len(p.Vertices))
	for _, v := range c.Vertices {
		proj[v] = Project(Rotate(p.Vertices[v], r), viewDistance, mode)
	}
	m := p.cellMesh(i, proj)
	return &m, nil
}

// ExplodedCells returns every cell mesh pushed away from the origin by
// explode times its projected centroid. explode 0 gives the assembled view.
func (p *Polytope) ExplodedCells(r Rot4, viewDistance Real, mode ProjectionMode, explode Real) ([]CellMesh, error) {
	if !p.HasCells {
		return nil, ErrNoCells
	}
	proj := ProjectAll(RotateAll(p.Vertices, r), viewDistance, mode)
	out := make([]CellMesh, len(p.Cells))
	for i := range p.Cells {
		m := p.cellMesh(i, proj)
		if explode != 0 {
			m.Translate(m.Centroid().Mul(explode))
		}
		out[i] = m
	}
	return out, nil
}
