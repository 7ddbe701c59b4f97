package polytope4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is one of the six coordinate planes of 4-space.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
	numPlanes
)

var planeAxes = [numPlanes][2]int{
	PlaneXY: {0, 1},
	PlaneXZ: {0, 2},
	PlaneXW: {0, 3},
	PlaneYZ: {1, 2},
	PlaneYW: {1, 3},
	PlaneZW: {2, 3},
}

var planeNames = [numPlanes]string{"xy", "xz", "xw", "yz", "yw", "zw"}

func (p Plane) String() string { return planeNames[p] }

// Axes returns the two coordinate indices spanning the plane.
func (p Plane) Axes() (int, int) { return planeAxes[p][0], planeAxes[p][1] }

// Planes lists the planes in application order: xy, xz, xw, yz, yw, zw.
// Rotations in different planes do not commute, so this order is part of
// the result.
func Planes() []Plane {
	return []Plane{PlaneXY, PlaneXZ, PlaneXW, PlaneYZ, PlaneYW, PlaneZW}
}

// Rot4 holds rotation angles in radians for the six coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// Angle returns the angle of plane p.
func (r Rot4) Angle(p Plane) Real {
	switch p {
	case PlaneXY:
		return r.XY
	case PlaneXZ:
		return r.XZ
	case PlaneXW:
		return r.XW
	case PlaneYZ:
		return r.YZ
	case PlaneYW:
		return r.YW
	case PlaneZW:
		return r.ZW
	}
	return 0
}

func (r Rot4) Add(o Rot4) Rot4 {
	return Rot4{r.XY + o.XY, r.XZ + o.XZ, r.XW + o.XW, r.YZ + o.YZ, r.YW + o.YW, r.ZW + o.ZW}
}

func (r Rot4) Scale(s Real) Rot4 {
	return Rot4{r.XY * s, r.XZ * s, r.XW * s, r.YZ * s, r.YW * s, r.ZW * s}
}

func (r Rot4) IsZero() bool { return r == Rot4{} }

// Rot4Deg is Rot4 in degrees, as written in config files.
type Rot4Deg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	XW Real `json:"xw"`
	YZ Real `json:"yz"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

func (d Rot4Deg) Radians() Rot4 {
	return Rot4{
		XY: mgl64.DegToRad(d.XY),
		XZ: mgl64.DegToRad(d.XZ),
		XW: mgl64.DegToRad(d.XW),
		YZ: mgl64.DegToRad(d.YZ),
		YW: mgl64.DegToRad(d.YW),
		ZW: mgl64.DegToRad(d.ZW),
	}
}

// rotatePlane turns v by a in plane p: x' = x·c - y·s, y' = x·s + y·c.
func rotatePlane(v Vector4, p Plane, a Real) Vector4 {
	if a == 0 {
		return v
	}
	i, j := p.Axes()
	c, s := math.Cos(a), math.Sin(a)
	x, y := v[i], v[j]
	v[i] = x*c - y*s
	v[j] = x*s + y*c
	return v
}

// Rotate applies the six plane rotations to v in Planes order. A zero angle
// leaves v untouched for that step.
func Rotate(v Vector4, r Rot4) Vector4 {
	v = rotatePlane(v, PlaneXY, r.XY)
	v = rotatePlane(v, PlaneXZ, r.XZ)
	v = rotatePlane(v, PlaneXW, r.XW)
	v = rotatePlane(v, PlaneYZ, r.YZ)
	v = rotatePlane(v, PlaneYW, r.YW)
	v = rotatePlane(v, PlaneZW, r.ZW)
	return v
}

// Unrotate inverts Rotate: negated angles in reverse plane order.
func Unrotate(v Vector4, r Rot4) Vector4 {
	v = rotatePlane(v, PlaneZW, -r.ZW)
	v = rotatePlane(v, PlaneYW, -r.YW)
	v = rotatePlane(v, PlaneYZ, -r.YZ)
	v = rotatePlane(v, PlaneXW, -r.XW)
	v = rotatePlane(v, PlaneXZ, -r.XZ)
	v = rotatePlane(v, PlaneXY, -r.XY)
	return v
}

// RotateAll rotates a vertex list into a new slice.
func RotateAll(vs []Vector4, r Rot4) []Vector4 {
	out := make([]Vector4, len(vs))
	if r.IsZero() {
		copy(out, vs)
		return out
	}
	m := r.Matrix()
	for i, v := range vs {
		out[i] = m.Mul4x1(v)
	}
	return out
}

func planeMatrix(p Plane, a Real) mgl64.Mat4 {
	m := mgl64.Ident4()
	if a == 0 {
		return m
	}
	i, j := p.Axes()
	c, s := math.Cos(a), math.Sin(a)
	m.Set(i, i, c)
	m.Set(i, j, -s)
	m.Set(j, i, s)
	m.Set(j, j, c)
	return m
}

// Matrix composes the rotation as a single matrix, R = ZW·YW·YZ·XW·XZ·XY, so
// that R·v equals Rotate(v, r).
func (r Rot4) Matrix() mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, p := range Planes() {
		m = planeMatrix(p, r.Angle(p)).Mul4(m)
	}
	return m
}
