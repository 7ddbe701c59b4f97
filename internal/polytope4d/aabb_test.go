package polytope4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOf4(t *testing.T) {
	b := BoundsOf4(testCache.Get(Cell16).Vertices)
	assert.Equal(t, Vector4{-1, -1, -1, -1}, b.Min)
	assert.Equal(t, Vector4{1, 1, 1, 1}, b.Max)
	assert.False(t, b.Empty())
	assert.True(t, b.Contains(Vector4{0.5, -0.5, 1, 0}, 0))
	assert.False(t, b.Contains(Vector4{1.1, 0, 0, 0}, 0.05))
	assert.True(t, BoundsOf4(nil).Empty())
}

func TestAABBEnclosesVertices(t *testing.T) {
	for _, k := range Kinds() {
		vs := RotateAll(testCache.Get(k).Vertices, testRot)
		b := BoundsOf4(vs)
		for i, v := range vs {
			if !b.Contains(v, 1e-12) {
				t.Fatalf("%s: vertex %d outside AABB", k, i)
			}
		}
	}
}

func TestBoundsOf3(t *testing.T) {
	b := BoundsOf3([]Vector3{{-1, 0, 2}, {3, -2, 0}})
	assert.Equal(t, Vector3{-1, -2, 0}, b.Min)
	assert.Equal(t, Vector3{3, 0, 2}, b.Max)
	assert.Equal(t, Vector3{1, -1, 1}, b.Center())
	assert.Equal(t, 4.0, b.Extent())
	assert.Equal(t, 0.0, BoundsOf3(nil).Extent())
}
