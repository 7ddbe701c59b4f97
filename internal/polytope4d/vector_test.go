package polytope4d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near4(a, b Vector4, tol Real) bool {
	for i := 0; i < 4; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func near3(a, b Vector3, tol Real) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestNormalizeZeroSafe(t *testing.T) {
	assert.Equal(t, Vector4{}, Normalize4(Vector4{}))
	assert.Equal(t, Vector3{}, Normalize3(Vector3{}))
	assert.InDelta(t, 1, Normalize4(Vector4{3, 0, 4, 0}).Len(), 1e-15)
	assert.InDelta(t, 1, Normalize3(Vector3{1, 2, 2}).Len(), 1e-15)
}

func TestCentroid4(t *testing.T) {
	pts := []Vector4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	assert.True(t, near4(Centroid4(pts, nil), Vector4{0.25, 0.25, 0.25, 0.25}, 1e-15))
	assert.True(t, near4(Centroid4(pts, []int{0, 1}), Vector4{0.5, 0.5, 0, 0}, 1e-15))
	assert.Equal(t, Vector4{}, Centroid4(nil, nil))
	assert.Equal(t, Vector4{}, Centroid4(pts, []int{}))
}

func TestDedup4(t *testing.T) {
	pts := []Vector4{
		{0.5, 0, 0, 0},
		{0.5 + 1e-12, 0, 0, 0},
		{0, -0.0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	}
	out := Dedup4(pts, DedupPrecision)
	assert.Len(t, out, 3)
	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[4], out[2])
}

func TestLerp4(t *testing.T) {
	a, b := Vector4{0, 0, 0, -1}, Vector4{2, 2, 2, 1}
	assert.Equal(t, a, Lerp4(a, b, 0))
	assert.Equal(t, b, Lerp4(a, b, 1))
	assert.Equal(t, Vector4{1, 1, 1, 0}, Lerp4(a, b, 0.5))
}

func TestCross3_4DIsOrthogonal(t *testing.T) {
	u := Vector4{1, 2, 0, -1}
	v := Vector4{0, 1, 3, 1}
	w := Vector4{2, -1, 1, 0.5}
	n := cross3_4D(u, v, w)
	assert.InDelta(t, 0, n.Dot(u), 1e-12)
	assert.InDelta(t, 0, n.Dot(v), 1e-12)
	assert.InDelta(t, 0, n.Dot(w), 1e-12)
	assert.Greater(t, n.Len(), 0.0)
	// e1, e2, e3 span w = 0
	e := cross3_4D(Vector4{1, 0, 0, 0}, Vector4{0, 1, 0, 0}, Vector4{0, 0, 1, 0})
	assert.InDelta(t, 1, math.Abs(e[3]), 1e-15)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, isFinite(1))
	assert.False(t, isFinite(math.Inf(-1)))
	assert.False(t, isFinite(math.NaN()))
	assert.False(t, isFinite3(Vector3{0, math.NaN(), 0}))
}

func TestEvenPerms4(t *testing.T) {
	perms := evenPerms4()
	assert.Len(t, perms, 12)
	seen := map[[4]int]bool{}
	for _, p := range perms {
		inv := 0
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if p[i] > p[j] {
					inv++
				}
			}
		}
		assert.Equal(t, 0, inv%2, "%v is odd", p)
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestSignVariants(t *testing.T) {
	assert.Len(t, signVariants(Vector4{0, 1, 2, 3}), 8)
	assert.Len(t, signVariants(Vector4{1, 1, 1, 1}), 16)
	assert.Equal(t, []Vector4{{}}, signVariants(Vector4{}))
	for _, v := range signVariants(Vector4{0, 1, 2, 3}) {
		assert.Equal(t, 0.0, v[0])
	}
}

func TestVerts600Unit(t *testing.T) {
	vs := verts600Unit()
	assert.Len(t, vs, 120)
	for _, v := range vs {
		assert.InDelta(t, 1, v.Len(), 1e-12)
	}
	assert.Len(t, Dedup4(vs, DedupPrecision), 120)
}

func TestHalfCubeOrder(t *testing.T) {
	vs := halfCubeVerts(0.5)
	assert.Len(t, vs, 16)
	assert.Equal(t, Vector4{-0.5, -0.5, -0.5, -0.5}, vs[0])
	assert.Equal(t, Vector4{0.5, -0.5, -0.5, -0.5}, vs[1])
	assert.Equal(t, Vector4{0.5, 0.5, 0.5, 0.5}, vs[15])
}
