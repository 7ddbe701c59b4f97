package polytope4d

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoCells   = errors.New("polytope has no cell data")
	ErrCellIndex = errors.New("cell index out of range")
)

// Edge is an unordered vertex pair stored as {lo, hi}.
type Edge [2]int

func newEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{i, j}
}

// Cell is a 3D facet given by its vertex indices.
type Cell struct {
	Vertices []int
	Type     CellType
}

// Polytope is the built geometry of a Kind. Vertices sit at unit scale
// (circumradius 1, the tesseract at {±½}⁴). It is shared read-only once built.
type Polytope struct {
	Kind     Kind
	Vertices []Vector4
	Edges    []Edge
	Cells    []Cell
	HasCells bool
}

// Validate checks the build output against the registry: vertex, edge and
// (when present) cell counts, edge well-formedness, a connected skeleton and a
// uniform vertex degree.
func (p *Polytope) Validate() error {
	m := p.Kind.Metadata()
	if len(p.Vertices) != m.V {
		return fmt.Errorf("%s: %d vertices, want %d", m.Key, len(p.Vertices), m.V)
	}
	if len(p.Edges) != m.E {
		return fmt.Errorf("%s: %d edges, want %d", m.Key, len(p.Edges), m.E)
	}
	if p.HasCells && len(p.Cells) != m.C {
		return fmt.Errorf("%s: %d cells, want %d", m.Key, len(p.Cells), m.C)
	}
	if !p.HasCells && len(p.Cells) != 0 {
		return fmt.Errorf("%s: cells present but HasCells is false", m.Key)
	}
	seen := make(map[Edge]struct{}, len(p.Edges))
	for _, e := range p.Edges {
		if e[0] < 0 || e[1] >= len(p.Vertices) || e[0] >= e[1] {
			return fmt.Errorf("%s: malformed edge %v", m.Key, e)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%s: duplicate edge %v", m.Key, e)
		}
		seen[e] = struct{}{}
	}
	for i, c := range p.Cells {
		for _, v := range c.Vertices {
			if v < 0 || v >= len(p.Vertices) {
				return fmt.Errorf("%s: cell %d references vertex %d", m.Key, i, v)
			}
		}
	}
	sk := p.Skeleton()
	if !sk.Connected() {
		return fmt.Errorf("%s: edge skeleton is not connected", m.Key)
	}
	if lo, hi := sk.DegreeRange(); lo != hi {
		return fmt.Errorf("%s: vertex degree varies in [%d, %d]", m.Key, lo, hi)
	}
	return nil
}

// Faces derives the 2-faces as the vertex sets shared by two cells, when that
// set spans a polygon (three or more vertices). Index lists are sorted.
func (p *Polytope) Faces() ([][]int, error) {
	if !p.HasCells {
		return nil, ErrNoCells
	}
	member := make([]map[int]struct{}, len(p.Cells))
	for i, c := range p.Cells {
		member[i] = make(map[int]struct{}, len(c.Vertices))
		for _, v := range c.Vertices {
			member[i][v] = struct{}{}
		}
	}
	var faces [][]int
	for a := 0; a < len(p.Cells); a++ {
		for b := a + 1; b < len(p.Cells); b++ {
			var shared []int
			for _, v := range p.Cells[a].Vertices {
				if _, ok := member[b][v]; ok {
					shared = append(shared, v)
				}
			}
			if len(shared) >= 3 {
				sort.Ints(shared)
				faces = append(faces, shared)
			}
		}
	}
	return faces, nil
}

// Euler returns V - E + F - C computed from the built geometry.
func (p *Polytope) Euler() (int, error) {
	faces, err := p.Faces()
	if err != nil {
		return 0, err
	}
	return len(p.Vertices) - len(p.Edges) + len(faces) - len(p.Cells), nil
}

// Cell returns the i-th cell.
func (p *Polytope) Cell(i int) (Cell, error) {
	if !p.HasCells {
		return Cell{}, ErrNoCells
	}
	if i < 0 || i >= len(p.Cells) {
		return Cell{}, fmt.Errorf("%w: %d not in [0, %d)", ErrCellIndex, i, len(p.Cells))
	}
	return p.Cells[i], nil
}

// cellEdges lists the polytope edges with both endpoints in the cell, as
// pairs of positions within c.Vertices.
func (p *Polytope) cellEdges(c Cell) [][2]int {
	pos := make(map[int]int, len(c.Vertices))
	for i, v := range c.Vertices {
		pos[v] = i
	}
	var out [][2]int
	for _, e := range p.Edges {
		a, okA := pos[e[0]]
		b, okB := pos[e[1]]
		if okA && okB {
			out = append(out, [2]int{a, b})
		}
	}
	return out
}
