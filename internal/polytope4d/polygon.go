package polytope4d

import (
	"fmt"
	"math"
	"sort"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// PolygonMetrics describes the convex outline of a slice seen in the first
// two hyperplane basis directions.
type PolygonMetrics struct {
	VertexCount int
	Area        Real
	Perimeter   Real
	ShapeName   string
	IsRegular   bool
	// Degenerate is set when fewer than three non-collinear boundary points
	// remain; Area is then 0.
	Degenerate bool
	// Boundary lists the outline counter-clockwise.
	Boundary []r2.Vec
	Sides    []Real
	// Angles are the interior angles in radians, Angles[i] at Boundary[i].
	Angles []Real
}

var polygonNames = map[int]string{
	3:  "triangle",
	4:  "quadrilateral",
	5:  "pentagon",
	6:  "hexagon",
	7:  "heptagon",
	8:  "octagon",
	9:  "nonagon",
	10: "decagon",
	12: "dodecagon",
}

func shapeName(n int, regular bool) string {
	name, ok := polygonNames[n]
	if !ok {
		name = fmt.Sprintf("%d-gon", n)
	}
	if regular {
		return "regular " + name
	}
	return name
}

// project2D maps the slice points to (b0, b1) coordinates relative to the
// foot point and drops points that coincide at SlicePrecision digits.
func (s *SliceResult) project2D() []r2.Vec {
	b := HyperplaneBasis(s.Normal)
	f := s.foot()
	seen := make(map[[2]Real]struct{}, len(s.Points))
	out := make([]r2.Vec, 0, len(s.Points))
	for _, p := range s.Points {
		rel := p.Sub(f)
		q := r2.Vec{X: rel.Dot(b[0]), Y: rel.Dot(b[1])}
		k := [2]Real{scalar.Round(q.X, SlicePrecision), scalar.Round(q.Y, SlicePrecision)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, q)
	}
	return out
}

// convexOutline orders pts by polar angle around their centroid and drops
// every vertex that does not make a strict left turn, which leaves the
// convex boundary counter-clockwise.
func convexOutline(pts []r2.Vec) []r2.Vec {
	if len(pts) < 3 {
		return pts
	}
	var c r2.Vec
	for _, p := range pts {
		c = r2.Add(c, p)
	}
	c = r2.Scale(1/Real(len(pts)), c)

	type polar struct {
		p        r2.Vec
		ang, rad Real
	}
	ps := make([]polar, len(pts))
	far := 0
	for i, p := range pts {
		d := r2.Sub(p, c)
		ps[i] = polar{p: p, ang: math.Atan2(d.Y, d.X), rad: r2.Norm(d)}
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].ang != ps[j].ang {
			return ps[i].ang < ps[j].ang
		}
		return ps[i].rad < ps[j].rad
	})
	for i := range ps {
		if ps[i].rad > ps[far].rad {
			far = i
		}
	}
	if ps[far].rad == 0 {
		return nil
	}
	// the farthest point is on the hull; start the scan there
	eps := BoundaryTurnEps * ps[far].rad * ps[far].rad
	turn := func(a, b, q r2.Vec) Real { return r2.Cross(r2.Sub(b, a), r2.Sub(q, b)) }
	stack := make([]r2.Vec, 0, len(ps))
	for k := 0; k < len(ps); k++ {
		q := ps[(far+k)%len(ps)].p
		for len(stack) >= 2 && turn(stack[len(stack)-2], stack[len(stack)-1], q) <= eps {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, q)
	}
	for len(stack) >= 3 && turn(stack[len(stack)-2], stack[len(stack)-1], stack[0]) <= eps {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// AnalyzeSlice measures the convex outline of a slice. It returns (nil,
// false) for a nil or under-populated slice, and a Degenerate metric when the
// projected points collapse to a point or a segment.
func AnalyzeSlice(s *SliceResult) (*PolygonMetrics, bool) {
	if s == nil || len(s.Points) < 3 {
		return nil, false
	}
	pts := s.project2D()
	b := convexOutline(pts)
	n := len(b)
	m := &PolygonMetrics{VertexCount: n, Boundary: b}
	if n < 3 {
		m.Degenerate = true
		m.ShapeName = "degenerate"
		if n == 2 {
			// collinear: the outline is the segment between the extremes
			b = farthestPair(pts)
			m.Boundary = b
			l := r2.Norm(r2.Sub(b[1], b[0]))
			m.Sides = []Real{l, l}
			m.Perimeter = 2 * l
		}
		return m, true
	}

	m.Sides = make([]Real, n)
	var area Real
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r2.Cross(b[i], b[j])
		m.Sides[i] = r2.Norm(r2.Sub(b[j], b[i]))
	}
	m.Area = math.Abs(area) / 2
	m.Perimeter = floats.Sum(m.Sides)

	m.Angles = interiorAngles(b)

	// regular means equal sides only; angles are reported, not judged
	mean := m.Perimeter / Real(n)
	m.IsRegular = true
	for _, l := range m.Sides {
		if !scalar.EqualWithinAbs(l, mean, mean*RegularityTolerance) {
			m.IsRegular = false
			break
		}
	}
	m.ShapeName = shapeName(n, m.IsRegular)
	return m, true
}

func interiorAngles(b []r2.Vec) []Real {
	n := len(b)
	out := make([]Real, n)
	for i := range b {
		prev, cur, next := b[(i+n-1)%n], b[i], b[(i+1)%n]
		a := math.Abs(geom.VertexAngle(
			geom.Coord{X: prev.X, Y: prev.Y},
			geom.Coord{X: cur.X, Y: cur.Y},
			geom.Coord{X: next.X, Y: next.Y},
		))
		if a > math.Pi {
			a = 2*math.Pi - a
		}
		out[i] = a
	}
	return out
}

func farthestPair(pts []r2.Vec) []r2.Vec {
	var best Real
	pair := []r2.Vec{pts[0], pts[0]}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := r2.Norm(r2.Sub(pts[j], pts[i])); d > best {
				best = d
				pair[0], pair[1] = pts[i], pts[j]
			}
		}
	}
	return pair
}

// SideRange returns the shortest and longest side.
func (m *PolygonMetrics) SideRange() (lo, hi Real) {
	if len(m.Sides) == 0 {
		return 0, 0
	}
	return floats.Min(m.Sides), floats.Max(m.Sides)
}
