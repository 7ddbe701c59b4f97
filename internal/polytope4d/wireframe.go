package polytope4d

import "github.com/go-gl/mathgl/mgl64"

// Segment3 is a projected edge. WA and WB are depth weights in [0, 1]
// derived from the rotated w of each endpoint (0 near, 1 far).
type Segment3 struct {
	A, B   Vector3
	WA, WB Real
}

// DepthWeight maps a rotated w coordinate to [0, 1].
func DepthWeight(w Real) Real {
	return mgl64.Clamp((w+DepthWeightOffset)/DepthWeightSpan, 0, 1)
}

// DepthColor returns the RGB (0..1) of a depth weight, violet towards
// cyan.
func DepthColor(wt Real) (r, g, b Real) {
	return 0.55 + 0.45*wt, 0.2 + 0.3*(1-wt), 0.6 + 0.4*(1-wt)
}

// ProjectedEdges rotates and projects every edge of p.
func (p *Polytope) ProjectedEdges(r Rot4, viewDistance Real, mode ProjectionMode) []Segment3 {
	rot := RotateAll(p.Vertices, r)
	proj := ProjectAll(rot, viewDistance, mode)
	out := make([]Segment3, 0, len(p.Edges))
	for _, e := range p.Edges {
		a, b := e[0], e[1]
		if !isFinite3(proj[a]) || !isFinite3(proj[b]) {
			DebugLogOnce("Skipping edge %v of %s: projection is not finite at d=%.3f", e, p.Kind, viewDistance)
			continue
		}
		out = append(out, Segment3{
			A: proj[a], B: proj[b],
			WA: DepthWeight(rot[a][3]), WB: DepthWeight(rot[b][3]),
		})
	}
	return out
}

// ProjectedVertices rotates and projects every vertex of p.
func (p *Polytope) ProjectedVertices(r Rot4, viewDistance Real, mode ProjectionMode) []Vector3 {
	return ProjectAll(RotateAll(p.Vertices, r), viewDistance, mode)
}
