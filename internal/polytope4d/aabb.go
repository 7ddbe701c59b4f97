package polytope4d

import "math"

// AABB4 is an axis aligned box in 4-space.
type AABB4 struct {
	Min, Max Vector4
}

// AABB3 is an axis aligned box of projected points.
type AABB3 struct {
	Min, Max Vector3
}

func emptyAABB4() AABB4 {
	inf := math.Inf(1)
	return AABB4{Min: Vector4{inf, inf, inf, inf}, Max: Vector4{-inf, -inf, -inf, -inf}}
}

// BoundsOf4 returns the bounding box of vs. An empty input yields an
// inverted (empty) box.
func BoundsOf4(vs []Vector4) AABB4 {
	b := emptyAABB4()
	for _, v := range vs {
		b.Extend(v)
	}
	return b
}

func (b *AABB4) Extend(v Vector4) {
	for a := 0; a < 4; a++ {
		b.Min[a] = math.Min(b.Min[a], v[a])
		b.Max[a] = math.Max(b.Max[a], v[a])
	}
}

func (b AABB4) Empty() bool { return b.Min[0] > b.Max[0] }

func (b AABB4) Contains(v Vector4, eps Real) bool {
	for a := 0; a < 4; a++ {
		if v[a] < b.Min[a]-eps || v[a] > b.Max[a]+eps {
			return false
		}
	}
	return true
}

// BoundsOf3 returns the bounding box of projected points.
func BoundsOf3(ps []Vector3) AABB3 {
	inf := math.Inf(1)
	b := AABB3{Min: Vector3{inf, inf, inf}, Max: Vector3{-inf, -inf, -inf}}
	for _, p := range ps {
		b.Extend(p)
	}
	return b
}

func (b *AABB3) Extend(p Vector3) {
	for a := 0; a < 3; a++ {
		b.Min[a] = math.Min(b.Min[a], p[a])
		b.Max[a] = math.Max(b.Max[a], p[a])
	}
}

func (b AABB3) Empty() bool { return b.Min[0] > b.Max[0] }

func (b AABB3) Center() Vector3 { return b.Min.Add(b.Max).Mul(0.5) }

// Extent is the largest side of the box.
func (b AABB3) Extent() Real {
	if b.Empty() {
		return 0
	}
	d := b.Max.Sub(b.Min)
	return math.Max(d[0], math.Max(d[1], d[2]))
}
