package geom

import "github.com/chewxy/math32"

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * (math32.Pi / 180) }

// Mat3 is a row-major 3x3 rotation matrix. No translation component.
type Mat3 [3][3]float32

// AxisAngle builds the rotation of angle radians about axis using
// Rodrigues' formula. axis should be unit length. A zero axis still
// produces a well-defined matrix (cos(angle) times the identity), which
// scales rather than rotates; callers accept that as a degenerate case.
func AxisAngle(axis Vec3, angle float32) Mat3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z
	return Mat3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// MulVec applies the rotation to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
