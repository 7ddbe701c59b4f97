package polytope4d

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReturnsSharedInstance(t *testing.T) {
	c := NewCache()
	const n = 16
	got := make([]*Polytope, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			got[i] = c.Get(Kinds()[i%len(Kinds())])
		}()
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		assert.Same(t, c.Get(Kinds()[i%len(Kinds())]), got[i])
	}
	// one build per kind, however many callers raced
	assert.Len(t, c.Stats(), int(numKinds))
}

func TestCacheDerivedBuildUsesDependency(t *testing.T) {
	c := NewCache()
	p120 := c.Get(Cell120)
	require.NotNil(t, p120)
	st := c.Stats()
	require.Len(t, st, 2)
	assert.Equal(t, Cell600, st[0].Kind)
	assert.Equal(t, Cell120, st[1].Kind)
	assert.Equal(t, 600, st[1].Vertices)
	assert.Equal(t, 1200, st[1].Edges)
	assert.Equal(t, 0, st[1].Cells)

	// the 600-cell is now cached too
	c.Get(Cell600)
	assert.Len(t, c.Stats(), 2)
}

func TestCacheGetKey(t *testing.T) {
	c := NewCache()
	p, err := c.GetKey("24cell")
	require.NoError(t, err)
	assert.Equal(t, Cell24, p.Kind)
	assert.Same(t, p, c.Get(Cell24))

	_, err = c.GetKey("hypercube")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCacheInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { NewCache().Get(numKinds) })
}

func TestCacheZeroValue(t *testing.T) {
	var c Cache
	p := c.Get(Tesseract)
	require.NotNil(t, p)
	assert.Same(t, p, c.Get(Tesseract))
	assert.Len(t, c.Stats(), 1)
}

func TestCacheFailedBuildStaysUnavailable(t *testing.T) {
	c := NewCache()
	// a build that never stored its result
	c.once[Cell5].Do(func() {})
	assert.Panics(t, func() { c.Get(Cell5) })
	assert.NotNil(t, c.Get(Cell16))
}
