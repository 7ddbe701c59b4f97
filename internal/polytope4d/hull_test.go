package polytope4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOutward checks every face normal points away from the centroid.
func assertOutward(t *testing.T, pts []Vector3, faces [][3]int) {
	t.Helper()
	c := Centroid3(pts)
	for _, f := range faces {
		n := faceNormal(pts, f)
		assert.Greater(t, n.Dot(pts[f[0]].Sub(c)), 0.0, "face %v", f)
	}
}

func TestHullRegularTetrahedronAtAnyScale(t *testing.T) {
	tet := []Vector3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	for _, s := range []Real{1e-3, 0.02, 1, 1e3} {
		pts := make([]Vector3, len(tet))
		for i, p := range tet {
			pts[i] = p.Mul(s)
		}
		faces := Hull(pts)
		require.Len(t, faces, 4, "scale %g", s)
		assertOutward(t, pts, faces)
	}
}

func TestHullCoincidentPoints(t *testing.T) {
	assert.Nil(t, Hull([]Vector3{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}, {1, 2, 3}}))
}

func TestHullCube(t *testing.T) {
	faces := Hull(CubeVertices)
	assert.Len(t, faces, 24)
	assertOutward(t, CubeVertices, faces)
}

func TestHullInteriorPointIgnored(t *testing.T) {
	pts := []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.1, 0.1, 0.1}}
	faces := Hull(pts)
	require.Len(t, faces, 4)
	for _, f := range faces {
		assert.NotContains(t, f[:], 4)
	}
}

func TestHullDegenerate(t *testing.T) {
	assert.Nil(t, Hull(nil))
	assert.Nil(t, Hull([]Vector3{{0, 0, 0}, {1, 0, 0}}))
	assert.Nil(t, Hull([]Vector3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}))
	assert.Empty(t, Hull([]Vector3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}}))
	assert.Equal(t, [][3]int{{0, 1, 2}}, Hull([]Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}))
}

func TestHullOfSliceSections(t *testing.T) {
	for _, k := range []Kind{Cell5, Tesseract, Cell16} {
		p := testCache.Get(k)
		lo, hi := SliceRange(p, Vector4{0, 0, 0, 1})
		s, ok := ComputeSlice(p, Vector4{0, 0, 0, 1}, lo+0.37*(hi-lo))
		require.True(t, ok, k.String())
		pts := s.Section3D()
		require.LessOrEqual(t, len(pts), HullMaxPoints)
		faces := Hull(pts)
		assert.GreaterOrEqual(t, len(faces), 4, k.String())
		assertOutward(t, pts, faces)
	}
}
