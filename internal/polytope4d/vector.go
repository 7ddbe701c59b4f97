package polytope4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Real = float64

// Vector4 is a point or direction in 4D space (x, y, z, w).
type Vector4 = mgl64.Vec4

// Vector3 is a projected point in 3D space.
type Vector3 = mgl64.Vec3

// Dist4 returns the Euclidean distance between two 4D points.
func Dist4(a, b Vector4) Real { return a.Sub(b).Len() }

// Normalize4 returns a unit-length copy of v, or v itself when it is zero.
// mgl64's Normalize divides by zero on the null vector.
func Normalize4(v Vector4) Vector4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Normalize3 is Normalize4 for 3D vectors.
func Normalize3(v Vector3) Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Lerp4 interpolates between a (t=0) and b (t=1).
func Lerp4(a, b Vector4, t Real) Vector4 { return a.Add(b.Sub(a).Mul(t)) }

// Centroid4 returns the arithmetic mean of the indexed points (all points
// when idx is nil).
func Centroid4(pts []Vector4, idx []int) Vector4 {
	var c Vector4
	if idx == nil {
		if len(pts) == 0 {
			return c
		}
		for _, p := range pts {
			c = c.Add(p)
		}
		return c.Mul(1 / Real(len(pts)))
	}
	if len(idx) == 0 {
		return c
	}
	for _, i := range idx {
		c = c.Add(pts[i])
	}
	return c.Mul(1 / Real(len(idx)))
}

// Centroid3 returns the arithmetic mean of 3D points.
func Centroid3(pts []Vector3) Vector3 {
	var c Vector3
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / Real(len(pts)))
}

// quantKey rounds every coordinate to the given number of decimal digits.
// -0 and +0 compare equal, so they share a key.
func quantKey(v Vector4, precision int) [4]Real {
	return [4]Real{
		mgl64.Round(v[0], precision),
		mgl64.Round(v[1], precision),
		mgl64.Round(v[2], precision),
		mgl64.Round(v[3], precision),
	}
}

// Dedup4 drops points whose coordinates coincide after rounding to
// precision digits. Order of first occurrence is kept.
func Dedup4(pts []Vector4, precision int) []Vector4 {
	seen := make(map[[4]Real]struct{}, len(pts))
	out := make([]Vector4, 0, len(pts))
	for _, p := range pts {
		k := quantKey(p, precision)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// cross3_4D is the 4D normal to the 3-space spanned by u, v, w: the
// generalised cross product by cofactor expansion.
func cross3_4D(u, v, w Vector4) Vector4 {
	det3 := func(a1, a2, a3, b1, b2, b3, c1, c2, c3 Real) Real {
		return a1*(b2*c3-b3*c2) - a2*(b1*c3-b3*c1) + a3*(b1*c2-b2*c1)
	}
	nx := det3(u[1], u[2], u[3], v[1], v[2], v[3], w[1], w[2], w[3])
	ny := -det3(u[0], u[2], u[3], v[0], v[2], v[3], w[0], w[2], w[3])
	nz := det3(u[0], u[1], u[3], v[0], v[1], v[3], w[0], w[1], w[3])
	nw := -det3(u[0], u[1], u[2], v[0], v[1], v[2], w[0], w[1], w[2])
	return Vector4{nx, ny, nz, nw}
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func isFinite3(v Vector3) bool { return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2]) }
