package polytope4d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestConvexOutlineDropsInteriorPoints(t *testing.T) {
	pts := []r2.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
		{X: 1, Y: 1}, {X: 0.5, Y: 1.5}, {X: 1, Y: 0}, // interior and mid-edge
	}
	b := convexOutline(pts)
	require.Len(t, b, 4)
	var area Real
	for i := range b {
		area += r2.Cross(b[i], b[(i+1)%len(b)])
	}
	// counter-clockwise
	assert.InDelta(t, 8, area, 1e-12)
	for _, want := range pts[:4] {
		assert.Contains(t, b, want)
	}
}

func TestConvexOutlineCollinear(t *testing.T) {
	b := convexOutline([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	assert.Len(t, b, 2)
	assert.Nil(t, convexOutline([]r2.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}))
}

func TestShapeName(t *testing.T) {
	assert.Equal(t, "triangle", shapeName(3, false))
	assert.Equal(t, "regular hexagon", shapeName(6, true))
	assert.Equal(t, "11-gon", shapeName(11, false))
	assert.Equal(t, "regular 14-gon", shapeName(14, true))
}

func TestAnalyzeDegenerateSlice(t *testing.T) {
	// all points on one line of the hyperplane
	s := &SliceResult{
		Points: []Vector4{{0, 0, 0, 0}, {1, 0, 0, 0}, {2, 0, 0, 0}},
		Normal: Vector4{0, 0, 0, 1},
	}
	m, ok := AnalyzeSlice(s)
	require.True(t, ok)
	assert.True(t, m.Degenerate)
	assert.Equal(t, "degenerate", m.ShapeName)
	assert.Equal(t, 0.0, m.Area)
	assert.InDelta(t, 4, m.Perimeter, 1e-12)

	// distinct in 4D but stacked along the third basis direction
	s.Points = []Vector4{{0, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 2, 0}}
	m, ok = AnalyzeSlice(s)
	require.True(t, ok)
	assert.True(t, m.Degenerate)
	assert.Equal(t, 1, m.VertexCount)
	assert.Equal(t, 0.0, m.Perimeter)

	_, ok = AnalyzeSlice(&SliceResult{Points: s.Points[:2], Normal: s.Normal})
	assert.False(t, ok)
}

func TestAnalyzeIrregularSlice(t *testing.T) {
	s := &SliceResult{
		Points: []Vector4{{0, 0, 0, 0}, {2, 0, 0, 0}, {2, 1, 0, 0}, {0, 1, 0, 0}},
		Normal: Vector4{0, 0, 0, 1},
	}
	m, ok := AnalyzeSlice(s)
	require.True(t, ok)
	assert.Equal(t, "quadrilateral", m.ShapeName)
	assert.False(t, m.IsRegular)
	assert.InDelta(t, 2, m.Area, 1e-12)
	assert.InDelta(t, 6, m.Perimeter, 1e-12)
	lo, hi := m.SideRange()
	assert.InDelta(t, 1, lo, 1e-12)
	assert.InDelta(t, 2, hi, 1e-12)
}

func TestAnalyzeRhombusIsRegularBySides(t *testing.T) {
	s := &SliceResult{
		Points: []Vector4{{1, 0, 0, 0}, {0, 0.6, 0, 0}, {-1, 0, 0, 0}, {0, -0.6, 0, 0}},
		Normal: Vector4{0, 0, 0, 1},
	}
	m, ok := AnalyzeSlice(s)
	require.True(t, ok)
	lo, hi := m.SideRange()
	assert.InDelta(t, math.Sqrt(1.36), lo, 1e-12)
	assert.InDelta(t, lo, hi, 1e-12)
	assert.True(t, m.IsRegular)
	assert.Equal(t, "regular quadrilateral", m.ShapeName)
	// angles are reported even though regularity ignores them
	require.Len(t, m.Angles, 4)
	assert.InDelta(t, 2*math.Pi, sum(m.Angles), 1e-9)
	a, b := m.Angles[0], m.Angles[1]
	assert.InDelta(t, math.Pi, a+b, 1e-9)
	assert.Greater(t, math.Abs(a-b), 0.1)
}

func TestAnalyzeHexagonalSlice(t *testing.T) {
	// the central cut perpendicular to (1,1,1,0) is a hexagonal prism
	p := testCache.Get(Tesseract)
	n := Normalize4(Vector4{1, 1, 1, 0})
	s, ok := ComputeSlice(p, n, 0)
	require.True(t, ok)
	assert.Len(t, s.Points, 12)
	m, ok := AnalyzeSlice(s)
	require.True(t, ok)
	assert.Equal(t, 6, m.VertexCount)
	assert.Equal(t, "regular hexagon", m.ShapeName)
	lo, hi := m.SideRange()
	assert.InDelta(t, math.Sqrt2/2, lo, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, hi, 1e-9)
	assert.InDelta(t, m.Perimeter, sum(m.Sides), 1e-12)
	assert.InDelta(t, 3*math.Sqrt(3)/4, m.Area, 1e-9)
	for _, a := range m.Angles {
		assert.InDelta(t, 2*math.Pi/3, a, 1e-9)
	}
}

func sum(xs []Real) Real {
	var s Real
	for _, x := range xs {
		s += x
	}
	return s
}
