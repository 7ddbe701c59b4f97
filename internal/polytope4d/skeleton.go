package polytope4d

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Skeleton is the edge graph of a polytope: node IDs are vertex indices.
type Skeleton struct {
	g *simple.UndirectedGraph
	n int
}

func newSkeleton(n int, edges []Edge) *Skeleton {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		g.SetEdge(g.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	return &Skeleton{g: g, n: n}
}

// Skeleton builds the edge graph of p.
func (p *Polytope) Skeleton() *Skeleton { return newSkeleton(len(p.Vertices), p.Edges) }

// Graph exposes the underlying gonum graph.
func (s *Skeleton) Graph() graph.Undirected { return s.g }

func (s *Skeleton) Adjacent(i, j int) bool { return s.g.HasEdgeBetween(int64(i), int64(j)) }

// Neighbours returns the vertices adjacent to i.
func (s *Skeleton) Neighbours(i int) []int {
	ns := graph.NodesOf(s.g.From(int64(i)))
	out := make([]int, len(ns))
	for k, n := range ns {
		out[k] = int(n.ID())
	}
	return out
}

func (s *Skeleton) Degree(i int) int { return len(graph.NodesOf(s.g.From(int64(i)))) }

// DegreeRange returns the minimal and maximal vertex degree.
func (s *Skeleton) DegreeRange() (lo, hi int) {
	if s.n == 0 {
		return 0, 0
	}
	lo, hi = s.Degree(0), s.Degree(0)
	for i := 1; i < s.n; i++ {
		d := s.Degree(i)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// Connected reports whether the skeleton has a single component.
func (s *Skeleton) Connected() bool {
	if s.n == 0 {
		return true
	}
	return len(topo.ConnectedComponents(s.g)) == 1
}

// CommonNeighbours returns the vertices adjacent to both i and j.
func (s *Skeleton) CommonNeighbours(i, j int) []int {
	var out []int
	for _, k := range s.Neighbours(i) {
		if k != j && s.Adjacent(k, j) {
			out = append(out, k)
		}
	}
	return out
}

// tetrahedra closes triangles over the skeleton: for every edge, each pair of
// adjacent common neighbours yields a 4-clique. Cliques are deduplicated by
// their sorted index tuple and returned in discovery order.
func (s *Skeleton) tetrahedra(edges []Edge) [][4]int {
	seen := make(map[[4]int]struct{})
	var out [][4]int
	for _, e := range edges {
		common := s.CommonNeighbours(e[0], e[1])
		for a := 0; a < len(common); a++ {
			for b := a + 1; b < len(common); b++ {
				if !s.Adjacent(common[a], common[b]) {
					continue
				}
				key := sort4([4]int{e[0], e[1], common[a], common[b]})
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, key)
			}
		}
	}
	return out
}

func sort4(a [4]int) [4]int {
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
	return a
}
