package polytope4d

// evenPerms4 lists the 12 even permutations of (0,1,2,3).
func evenPerms4() [][4]int {
	return [][4]int{
		{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
		{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
		{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
		{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
	}
}

// axisPairs lists the 6 unordered pairs of the four axes, in lexicographic order.
func axisPairs() [6][2]int {
	return [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
}

// signVariants flips the signs of the nonzero entries in every combination.
// Zero entries are never flipped, so no ±0 duplicates are produced.
func signVariants(vals Vector4) []Vector4 {
	nz := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		if vals[i] != 0 {
			nz = append(nz, i)
		}
	}
	out := make([]Vector4, 0, 1<<len(nz))
	for s := 0; s < 1<<len(nz); s++ {
		v := vals
		for k, i := range nz {
			if (s>>k)&1 == 1 {
				v[i] = -v[i]
			}
		}
		out = append(out, v)
	}
	return out
}

// axisVerts returns the 8 unit vectors ±e_i, ordered +x,-x,+y,-y,+z,-z,+w,-w.
func axisVerts() []Vector4 {
	out := make([]Vector4, 0, 8)
	for a := 0; a < 4; a++ {
		for _, s := range []Real{1, -1} {
			var v Vector4
			v[a] = s
			out = append(out, v)
		}
	}
	return out
}

// halfCubeVerts returns the 16 points (±h,±h,±h,±h), x varying fastest.
func halfCubeVerts(h Real) []Vector4 {
	out := make([]Vector4, 0, 16)
	for sw := -1; sw <= 1; sw += 2 {
		for sz := -1; sz <= 1; sz += 2 {
			for sy := -1; sy <= 1; sy += 2 {
				for sx := -1; sx <= 1; sx += 2 {
					out = append(out, Vector4{h * Real(sx), h * Real(sy), h * Real(sz), h * Real(sw)})
				}
			}
		}
	}
	return out
}

// uniqueSet accumulates points, dropping coordinate duplicates at
// DedupPrecision.
type uniqueSet struct {
	seen map[[4]Real]struct{}
	out  []Vector4
}

func newUniqueSet(capacity int) *uniqueSet {
	return &uniqueSet{
		seen: make(map[[4]Real]struct{}, capacity),
		out:  make([]Vector4, 0, capacity),
	}
}

func (u *uniqueSet) push(v Vector4) {
	k := quantKey(v, DedupPrecision)
	if _, ok := u.seen[k]; ok {
		return
	}
	u.seen[k] = struct{}{}
	u.out = append(u.out, v)
}
