package polytope4d

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SliceResult is the intersection of a polytope's edge skeleton with the
// hyperplane {x : Normal·x = Offset}.
type SliceResult struct {
	Points []Vector4
	Normal Vector4
	Offset Real
}

// CutType names a preset slicing direction.
type CutType uint8

const (
	CutW        CutType = iota // along the w axis
	CutVertex                  // towards the first vertex
	CutEdge                    // towards the midpoint of the first edge
	CutDiagonal                // along (1,1,1,1)
)

var ErrUnknownCut = errors.New("unknown cut type")

var cutNames = [...]string{CutW: "w", CutVertex: "vertex", CutEdge: "edge", CutDiagonal: "diagonal"}

func (c CutType) String() string {
	if int(c) < len(cutNames) {
		return cutNames[c]
	}
	return fmt.Sprintf("CutType(%d)", c)
}

// ParseCutType accepts "w" (or ""), "vertex", "edge" and "diagonal".
func ParseCutType(s string) (CutType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CutW, nil
	}
	for i, n := range cutNames {
		if n == s {
			return CutType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCut, s)
}

// SliceNormal returns the unit normal of a preset cut for p.
func SliceNormal(p *Polytope, cut CutType) (Vector4, error) {
	switch cut {
	case CutW:
		return Vector4{0, 0, 0, 1}, nil
	case CutVertex:
		if len(p.Vertices) == 0 {
			return Vector4{}, fmt.Errorf("%s cut on %s: no vertices", cut, p.Kind)
		}
		return Normalize4(p.Vertices[0]), nil
	case CutEdge:
		if len(p.Edges) == 0 {
			return Vector4{}, fmt.Errorf("%s cut on %s: no edges", cut, p.Kind)
		}
		e := p.Edges[0]
		return Normalize4(Lerp4(p.Vertices[e[0]], p.Vertices[e[1]], 0.5)), nil
	case CutDiagonal:
		return Normalize4(Vector4{1, 1, 1, 1}), nil
	}
	return Vector4{}, fmt.Errorf("%w: %d", ErrUnknownCut, cut)
}

// SliceRange returns the extent of p along normal: offsets outside
// [lo, hi] miss the polytope.
func SliceRange(p *Polytope, normal Vector4) (lo, hi Real) {
	if len(p.Vertices) == 0 {
		return 0, 0
	}
	ds := make([]Real, len(p.Vertices))
	for i, v := range p.Vertices {
		ds[i] = v.Dot(normal)
	}
	return floats.Min(ds), floats.Max(ds)
}

// HyperplaneBasis returns three orthonormal vectors orthogonal to the unit
// vector normal, by Gram-Schmidt over the coordinate axes.
func HyperplaneBasis(normal Vector4) [3]Vector4 {
	var basis [3]Vector4
	n := 0
	for a := 0; a < 4 && n < 3; a++ {
		var c Vector4
		c[a] = 1
		v := c.Sub(normal.Mul(c.Dot(normal)))
		for k := 0; k < n; k++ {
			v = v.Sub(basis[k].Mul(v.Dot(basis[k])))
		}
		if l := v.Len(); l > 0.01 {
			basis[n] = v.Mul(1 / l)
			n++
		}
	}
	return basis
}

// ComputeSlice intersects every edge of p with the hyperplane Normal·x =
// offset. Endpoints within SliceVertexEps of the hyperplane contribute
// themselves; an edge contributes an interpolated point only when both
// endpoints are off the hyperplane and on opposite sides. Points are
// deduplicated at SlicePrecision digits. Fewer than three points is no
// intersection, reported as (nil, false).
func ComputeSlice(p *Polytope, normal Vector4, offset Real) (*SliceResult, bool) {
	dist := make([]Real, len(p.Vertices))
	for i, v := range p.Vertices {
		dist[i] = v.Dot(normal) - offset
	}
	seen := make(map[[4]Real]struct{})
	var pts []Vector4
	add := func(v Vector4) {
		k := quantKey(v, SlicePrecision)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		pts = append(pts, v)
	}
	for _, e := range p.Edges {
		di, dj := dist[e[0]], dist[e[1]]
		onI, onJ := math.Abs(di) < SliceVertexEps, math.Abs(dj) < SliceVertexEps
		if onI {
			add(p.Vertices[e[0]])
		}
		if onJ {
			add(p.Vertices[e[1]])
		}
		if !onI && !onJ && di*dj < 0 {
			add(Lerp4(p.Vertices[e[0]], p.Vertices[e[1]], di/(di-dj)))
		}
	}
	if len(pts) < 3 {
		return nil, false
	}
	DebugLog("Slice %s n=%v d=%.4f: %d points", p.Kind, normal, offset, len(pts))
	return &SliceResult{Points: pts, Normal: normal, Offset: offset}, true
}

// foot is the point of the hyperplane closest to the origin.
func (s *SliceResult) foot() Vector4 { return s.Normal.Mul(s.Offset) }

// Section3D expresses the slice points in the hyperplane's own 3D
// coordinates (HyperplaneBasis, origin at the foot point). The result is the
// vertex set of the convex cross-section solid and can be fed to Hull.
func (s *SliceResult) Section3D() []Vector3 {
	b := HyperplaneBasis(s.Normal)
	f := s.foot()
	out := make([]Vector3, len(s.Points))
	for i, p := range s.Points {
		rel := p.Sub(f)
		out[i] = Vector3{rel.Dot(b[0]), rel.Dot(b[1]), rel.Dot(b[2])}
	}
	return out
}

// Rotated returns the slice points rotated by r, for display next to the
// rotated polytope.
func (s *SliceResult) Rotated(r Rot4) []Vector4 { return RotateAll(s.Points, r) }
