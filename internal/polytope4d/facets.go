package polytope4d

import "math"

// Facet is the supporting hyperplane of a cell: N·x <= D inside, N outward
// and unit length.
type Facet struct {
	N Vector4
	D Real
}

// facetOf spans the cell's hyperplane with the first three independent edge
// vectors from its first vertex and orients the normal away from the origin
// side of the cell (the polytope is centred at the origin).
func facetOf(vs []Vector4, c Cell) (Facet, bool) {
	if len(c.Vertices) < 4 {
		return Facet{}, false
	}
	p0 := vs[c.Vertices[0]]
	rest := c.Vertices[1:]
	for a := 0; a < len(rest); a++ {
		for b := a + 1; b < len(rest); b++ {
			for d := b + 1; d < len(rest); d++ {
				n := cross3_4D(vs[rest[a]].Sub(p0), vs[rest[b]].Sub(p0), vs[rest[d]].Sub(p0))
				l := n.Len()
				if l < 1e-9 {
					continue
				}
				n = n.Mul(1 / l)
				if n.Dot(Centroid4(vs, c.Vertices)) < 0 {
					n = n.Mul(-1)
				}
				return Facet{N: n, D: n.Dot(p0)}, true
			}
		}
	}
	return Facet{}, false
}

// Facets returns one hyperplane per cell, in cell order.
func (p *Polytope) Facets() ([]Facet, error) {
	if !p.HasCells {
		return nil, ErrNoCells
	}
	out := make([]Facet, 0, len(p.Cells))
	for _, c := range p.Cells {
		f, ok := facetOf(p.Vertices, c)
		if !ok {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// Contains reports whether x lies inside every facet, up to eps.
func (p *Polytope) Contains(x Vector4, eps Real) (bool, error) {
	fs, err := p.Facets()
	if err != nil {
		return false, err
	}
	for _, f := range fs {
		if f.N.Dot(x) > f.D+eps {
			return false, nil
		}
	}
	return true, nil
}

// Inradius is the smallest facet distance from the origin.
func (p *Polytope) Inradius() (Real, error) {
	fs, err := p.Facets()
	if err != nil {
		return 0, err
	}
	r := math.Inf(1)
	for _, f := range fs {
		r = math.Min(r, f.D)
	}
	return r, nil
}
