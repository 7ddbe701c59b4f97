package polytope4d

import (
	"fmt"
	"sync"
	"time"
)

// BuildStat records one polytope construction.
type BuildStat struct {
	Kind     Kind
	Vertices int
	Edges    int
	Cells    int
	Elapsed  time.Duration
}

// Cache builds each Kind at most once and hands out the shared result.
// Kinds are initialised independently: building the 600-cell does not block
// a concurrent request for the tesseract. The zero value is ready to use.
// A build that panicked leaves its kind permanently unavailable, and later
// Gets for it panic too.
type Cache struct {
	once  [numKinds]sync.Once
	polys [numKinds]*Polytope

	mu    sync.Mutex
	stats []BuildStat
}

func NewCache() *Cache { return &Cache{} }

// Get returns the polytope of kind k, building it on first use. A build that
// fails validation is a programming error and panics.
func (c *Cache) Get(k Kind) *Polytope {
	if !k.Valid() {
		panic(fmt.Sprintf("invalid polytope kind %d", k))
	}
	c.once[k].Do(func() {
		start := time.Now()
		p := k.build(c.Get)
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("polytope build failed validation: %v", err))
		}
		c.polys[k] = p
		c.logBuild(BuildStat{
			Kind:     k,
			Vertices: len(p.Vertices),
			Edges:    len(p.Edges),
			Cells:    len(p.Cells),
			Elapsed:  time.Since(start),
		})
	})
	p := c.polys[k]
	if p == nil {
		panic(fmt.Sprintf("polytope %s is unavailable: its build failed", k))
	}
	return p
}

// GetKey is Get by type key.
func (c *Cache) GetKey(key string) (*Polytope, error) {
	k, err := ParseKind(key)
	if err != nil {
		return nil, err
	}
	return c.Get(k), nil
}

func (c *Cache) logBuild(s BuildStat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = append(c.stats, s)
	DebugLog("Built %s: V=%d E=%d C=%d in %s", s.Kind, s.Vertices, s.Edges, s.Cells, s.Elapsed)
}

// Stats returns a copy of the builds done so far, in completion order.
func (c *Cache) Stats() []BuildStat {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]BuildStat, len(c.stats))
	copy(out, c.stats)
	return out
}

func (c *Cache) printStats() {
	for _, s := range c.Stats() {
		fmt.Printf("Build %-9s V=%-4d E=%-5d C=%-4d %s\n", s.Kind, s.Vertices, s.Edges, s.Cells, s.Elapsed)
	}
}
