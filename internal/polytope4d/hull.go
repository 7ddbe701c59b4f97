package polytope4d

import "math"

// Hull triangulates the convex hull of a small point set by the direct cubic
// method: a triple is a face when no other point lies strictly on both sides
// of its plane. Tolerances scale with the extent L of the point set: triples
// with |ab x ac| below HullDegenerateEps·L² are collinear and skipped, and
// points closer than HullCoplanarEps·L to a candidate plane are ignored for
// the side test. Faces are wound so their normal points away from the other
// points.
//
// Coplanar point groups (e.g. a cube's square faces) yield every triangle of
// the group, so the surface may overlap itself there. Callers keep len(pts)
// at or below HullMaxPoints; fewer than three points, or all points collinear,
// give no faces.
func Hull(pts []Vector3) [][3]int {
	n := len(pts)
	if n < 3 {
		return nil
	}
	size := BoundsOf3(pts).Extent()
	if size == 0 {
		return nil
	}
	degenerate := HullDegenerateEps * size * size
	coplanar := HullCoplanarEps * size
	if n == 3 {
		ab, ac := pts[1].Sub(pts[0]), pts[2].Sub(pts[0])
		if ab.Cross(ac).Len() < degenerate {
			return nil
		}
		return [][3]int{{0, 1, 2}}
	}
	var faces [][3]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				ab, ac := pts[j].Sub(pts[i]), pts[k].Sub(pts[i])
				nrm := ab.Cross(ac)
				l := nrm.Len()
				if l < degenerate {
					continue
				}
				nrm = nrm.Mul(1 / l)
				side := 0
				valid := true
				for m := 0; m < n; m++ {
					if m == i || m == j || m == k {
						continue
					}
					d := nrm.Dot(pts[m].Sub(pts[i]))
					if math.Abs(d) < coplanar {
						continue
					}
					s := 1
					if d < 0 {
						s = -1
					}
					if side == 0 {
						side = s
					} else if side != s {
						valid = false
						break
					}
				}
				if !valid || side == 0 {
					continue
				}
				if side > 0 {
					faces = append(faces, [3]int{i, k, j})
				} else {
					faces = append(faces, [3]int{i, j, k})
				}
			}
		}
	}
	return faces
}

// faceNormal returns the unnormalised normal of a wound triangle.
func faceNormal(pts []Vector3, f [3]int) Vector3 {
	return pts[f[1]].Sub(pts[f[0]]).Cross(pts[f[2]].Sub(pts[f[0]]))
}
