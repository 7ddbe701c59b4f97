package polytope4d

import (
	"errors"
	"fmt"
	"strings"
)

// ProjectionMode selects the central projection onto w = 0.
type ProjectionMode uint8

const (
	// Perspective scales x, y, z by d/(d+w).
	Perspective ProjectionMode = iota
	// Stereographic scales x, y, z by d/(d-w).
	Stereographic
)

var ErrUnknownProjection = errors.New("unknown projection mode")

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Stereographic:
		return "stereographic"
	}
	return fmt.Sprintf("ProjectionMode(%d)", m)
}

// ParseProjectionMode accepts "perspective" (or "") and "stereographic".
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perspective":
		return Perspective, nil
	case "stereographic":
		return Stereographic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProjection, s)
}

// Project maps v to 3D. The result is not finite when d+w (perspective) or
// d-w (stereographic) is zero; callers pick d beyond the w extent, see
// MinSafeViewDistance.
func Project(v Vector4, viewDistance Real, mode ProjectionMode) Vector3 {
	den := viewDistance + v[3]
	if mode == Stereographic {
		den = viewDistance - v[3]
	}
	return v.Vec3().Mul(viewDistance / den)
}

// ProjectAll projects every vertex of vs.
func ProjectAll(vs []Vector4, viewDistance Real, mode ProjectionMode) []Vector3 {
	out := make([]Vector3, len(vs))
	for i, v := range vs {
		out[i] = Project(v, viewDistance, mode)
	}
	return out
}

// MinSafeViewDistance returns the largest |w| over vs. Any view distance
// above it keeps both projections of vs finite.
func MinSafeViewDistance(vs []Vector4) Real {
	b := BoundsOf4(vs)
	if b.Empty() {
		return 0
	}
	return max(-b.Min[3], b.Max[3])
}

// Circumradius is the largest vertex norm, which bounds |w| under any
// rotation.
func Circumradius(vs []Vector4) Real {
	r := 0.0
	for _, v := range vs {
		r = max(r, v.Len())
	}
	return r
}
