package math3d

import "math"

// Plane represents a plane via the equation Ax + By + Cz + D = 0, where
// (A, B, C) is the normal. Points on the normal's side of the plane are
// "in front"; the boundary itself is not.
type Plane struct {
	Normal Vec3
	D      float64
}

// PlaneFromNormalAndPoint returns the plane through point with the given
// normal: D = -normal·point.
func PlaneFromNormalAndPoint(normal, point Vec3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// Normalize rescales the plane equation so the normal has unit length.
// The plane itself (and the sign of SignedDistance) is unchanged.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// SignedDistance evaluates the plane equation at point. The sign is stable
// for a given plane value: positive in front, negative behind, zero on the
// plane. The magnitude is a true distance only for unit normals.
func (p Plane) SignedDistance(point Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// InFront reports whether point lies strictly on the normal's side.
func (p Plane) InFront(point Vec3) bool {
	return p.SignedDistance(point) > 0
}

// IntersectLine returns the intersection of l with the plane. The second
// return is false when the line is parallel to the plane, including a line
// contained in it.
func (p Plane) IntersectLine(l Line) (Vec3, bool) {
	den := p.Normal.Dot(l.Dir)
	if den == 0 {
		return Vec3{}, false
	}
	t := -p.SignedDistance(l.Point) / den
	return l.At(t), true
}

// SolveST solves point = s*v1 + t*v2 for s and t. It picks the coordinate
// pair with the largest 2x2 determinant so a zero component in v1 or v2
// does not break the solve. ok is false when v1 and v2 are colinear.
func SolveST(v1, v2, point Vec3) (s, t float64, ok bool) {
	// Determinants of the three axis-pair systems.
	dxy := v1.X*v2.Y - v1.Y*v2.X
	dxz := v1.X*v2.Z - v1.Z*v2.X
	dyz := v1.Y*v2.Z - v1.Z*v2.Y

	ax, ay := math.Abs(dxy), math.Abs(dxz)
	az := math.Abs(dyz)

	switch {
	case ax >= ay && ax >= az && ax > 0:
		return (point.X*v2.Y - point.Y*v2.X) / dxy, (v1.X*point.Y - v1.Y*point.X) / dxy, true
	case ay >= az && ay > 0:
		return (point.X*v2.Z - point.Z*v2.X) / dxz, (v1.X*point.Z - v1.Z*point.X) / dxz, true
	case az > 0:
		return (point.Y*v2.Z - point.Z*v2.Y) / dyz, (v1.Y*point.Z - v1.Z*point.Y) / dyz, true
	}
	return 0, 0, false
}
