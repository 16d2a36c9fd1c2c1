package math3d

import "math"

// Degrees are the external unit for all rotation angles; conversion to
// radians happens here and nowhere else.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// rotZ rotates the X/Y components by the given angle in radians, leaving Z
// untouched (rotation about the vertical axis).
func rotZ(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// rotX rotates the Y/Z components by the given angle in radians, leaving X
// untouched (rotation about the screen-horizontal axis).
func rotX(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// Rotate rotates v about the vertical axis by rz degrees, then about the
// screen-horizontal axis by rx degrees. Vec3 is a value type so the caller's
// vector is never mutated.
func Rotate(v Vec3, rxDeg, rzDeg float64) Vec3 {
	return rotX(rotZ(v, radians(rzDeg)), radians(rxDeg))
}

// RotateInverse undoes Rotate with the same angles: it rotates about the
// horizontal axis by -rx degrees, then about the vertical axis by -rz.
// RotateInverse(Rotate(v, rx, rz), rx, rz) == v up to floating point.
func RotateInverse(v Vec3, rxDeg, rzDeg float64) Vec3 {
	return rotZ(rotX(v, -radians(rxDeg)), -radians(rzDeg))
}
