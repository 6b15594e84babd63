package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D point or direction (X = east, Y = up, Z = north).
type Vec3 struct{ X, Y, Z float32 }

func (a Vec3) Add(b Vec3) Vec3    { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3    { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len2() float32      { return a.Dot(a) }
func (a Vec3) Len() float32       { return math32.Sqrt(a.Len2()) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns a unit vector. A (near-)zero vector is returned
// unchanged: a vanished cross product must stay the zero vector so that
// callers can carry it through as a degenerate rotation axis.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l < 1e-12 {
		return a
	}
	return a.Mul(1 / l)
}
