package polytope4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkeletonDegree(t *testing.T) {
	want := map[Kind]int{Cell5: 4, Tesseract: 4, Cell16: 6, Cell24: 8, Cell120: 4, Cell600: 12}
	for k, d := range want {
		sk := testCache.Get(k).Skeleton()
		lo, hi := sk.DegreeRange()
		assert.Equal(t, d, lo, k.String())
		assert.Equal(t, d, hi, k.String())
		assert.True(t, sk.Connected(), k.String())
	}
}

func TestSkeletonDisconnected(t *testing.T) {
	sk := newSkeleton(4, []Edge{{0, 1}, {2, 3}})
	assert.False(t, sk.Connected())
	assert.ElementsMatch(t, []int{1}, sk.Neighbours(0))
	assert.True(t, sk.Adjacent(1, 0))
	assert.False(t, sk.Adjacent(1, 2))
}

func TestCommonNeighbours(t *testing.T) {
	// square with one diagonal: 0-1-2-3-0 and 0-2
	sk := newSkeleton(4, []Edge{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {0, 2}})
	assert.ElementsMatch(t, []int{1, 3}, sk.CommonNeighbours(0, 2))
	assert.ElementsMatch(t, []int{0, 2}, sk.CommonNeighbours(1, 3))
}

func TestTetrahedraOfCompleteGraph(t *testing.T) {
	edges := completeEdges(5)
	tets := newSkeleton(5, edges).tetrahedra(edges)
	assert.Len(t, tets, 5)
	for _, c := range tets {
		assert.True(t, c[0] < c[1] && c[1] < c[2] && c[2] < c[3])
	}
}

func TestSort4(t *testing.T) {
	assert.Equal(t, [4]int{1, 2, 3, 4}, sort4([4]int{4, 2, 3, 1}))
	assert.Equal(t, [4]int{0, 0, 5, 9}, sort4([4]int{9, 0, 5, 0}))
}
