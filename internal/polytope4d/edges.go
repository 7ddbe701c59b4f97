package polytope4d

import (
	"math"
)

// Edge detection policies. None compares floats for exact equality.

// completeEdges connects every vertex pair.
func completeEdges(n int) []Edge {
	out := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Edge{i, j})
		}
	}
	return out
}

// hammingEdges connects vertices that differ in exactly one coordinate,
// where coordinates closer than eps count as equal.
func hammingEdges(vs []Vector4, eps Real) []Edge {
	var out []Edge
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			diff := 0
			for a := 0; a < 4; a++ {
				if math.Abs(vs[i][a]-vs[j][a]) > eps {
					diff++
				}
			}
			if diff == 1 {
				out = append(out, Edge{i, j})
			}
		}
	}
	return out
}

// minPairDistance returns the smallest distance above MinPairDistance between
// any of the first rows vertices and all others. For a vertex-transitive set
// every vertex has a neighbour at edge length, so one row is exact.
func minPairDistance(vs []Vector4, rows int) Real {
	if rows > len(vs) {
		rows = len(vs)
	}
	best := math.Inf(1)
	for i := 0; i < rows; i++ {
		for j := range vs {
			if i == j {
				continue
			}
			if d := Dist4(vs[i], vs[j]); d > MinPairDistance && d < best {
				best = d
			}
		}
	}
	return best
}

// bandEdges connects pairs whose distance lies within relTol of length.
func bandEdges(vs []Vector4, length, relTol Real) []Edge {
	lo, hi := length*(1-relTol), length*(1+relTol)
	lo2, hi2 := lo*lo, hi*hi
	var out []Edge
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			d2 := vs[i].Sub(vs[j]).LenSqr()
			if d2 >= lo2 && d2 <= hi2 {
				out = append(out, Edge{i, j})
			}
		}
	}
	return out
}

// minDistanceEdges measures the edge length on a sample of rows and applies
// it globally with the relative EdgeRelTolerance band.
func minDistanceEdges(vs []Vector4) ([]Edge, Real) {
	l := minPairDistance(vs, EdgeSampleRows)
	if math.IsInf(l, 1) {
		return nil, 0
	}
	return bandEdges(vs, l, EdgeRelTolerance), l
}
