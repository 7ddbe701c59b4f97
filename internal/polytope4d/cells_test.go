package polytope4d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTesseractCellMesh(t *testing.T) {
	p := testCache.Get(Tesseract)
	m, err := p.CellMesh(0, Rot4{}, ViewDistance, Perspective)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index)
	assert.Equal(t, CellCube, m.Type)
	assert.Len(t, m.Positions, 8)
	assert.Len(t, m.Edges, 12)
	// central projection keeps the square faces planar
	assert.Len(t, m.Triangles, 24)
	for _, q := range m.Positions {
		assert.Greater(t, q[0], 0.0)
	}
}

func TestCellMeshEdgesAreCellLocal(t *testing.T) {
	for _, k := range []Kind{Cell5, Cell16, Cell24, Cell600} {
		p := testCache.Get(k)
		m, err := p.CellMesh(len(p.Cells)-1, testRot, ViewDistance, Stereographic)
		require.NoError(t, err)
		want := map[CellType]int{CellTetrahedron: 6, CellOctahedron: 12}[m.Type]
		assert.Len(t, m.Edges, want, k.String())
		for _, e := range m.Edges {
			assert.Less(t, e[0], len(m.Positions))
			assert.Less(t, e[1], len(m.Positions))
		}
		assert.NotEmpty(t, m.Triangles)
	}
}

func TestCellMeshErrors(t *testing.T) {
	p := testCache.Get(Tesseract)
	_, err := p.CellMesh(8, Rot4{}, ViewDistance, Perspective)
	assert.ErrorIs(t, err, ErrCellIndex)
	_, err = p.CellMesh(-1, Rot4{}, ViewDistance, Perspective)
	assert.ErrorIs(t, err, ErrCellIndex)

	q := testCache.Get(Cell120)
	_, err = q.CellMesh(0, Rot4{}, ViewDistance, Perspective)
	assert.ErrorIs(t, err, ErrNoCells)
	_, err = q.ExplodedCells(Rot4{}, ViewDistance, Perspective, 0)
	assert.ErrorIs(t, err, ErrNoCells)
}

func TestExplodedCells(t *testing.T) {
	p := testCache.Get(Cell16)
	flat, err := p.ExplodedCells(testRot, ViewDistance, Perspective, 0)
	require.NoError(t, err)
	require.Len(t, flat, len(p.Cells))
	for i, m := range flat {
		single, err := p.CellMesh(i, testRot, ViewDistance, Perspective)
		require.NoError(t, err)
		for k := range m.Positions {
			assert.True(t, near3(m.Positions[k], single.Positions[k], 1e-12))
		}
	}

	exploded, err := p.ExplodedCells(testRot, ViewDistance, Perspective, 1)
	require.NoError(t, err)
	for i := range exploded {
		assert.True(t, near3(exploded[i].Centroid(), flat[i].Centroid().Mul(2), 1e-12))
	}
}
