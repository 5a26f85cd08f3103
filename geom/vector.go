package geom

import "math"

// Vec2 is a 2D double-precision vector (or point).
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns u + v.
func (u Vec2) Add(v Vec2) Vec2 { return Vec2{u.X + v.X, u.Y + v.Y} }

// Sub returns u − v.
func (u Vec2) Sub(v Vec2) Vec2 { return Vec2{u.X - v.X, u.Y - v.Y} }

// Neg returns −u.
func (u Vec2) Neg() Vec2 { return Vec2{-u.X, -u.Y} }

// Scale returns u scaled by s.
func (u Vec2) Scale(s float64) Vec2 { return Vec2{u.X * s, u.Y * s} }

// Dot returns the scalar product u·v.
func (u Vec2) Dot(v Vec2) float64 { return u.X*v.X + u.Y*v.Y }

// Cross returns the 2D cross product u.X·v.Y − u.Y·v.X.
func (u Vec2) Cross(v Vec2) float64 { return u.X*v.Y - u.Y*v.X }

// LenSquared returns |u|².
func (u Vec2) LenSquared() float64 { return u.X*u.X + u.Y*u.Y }

// Len returns |u|.
func (u Vec2) Len() float64 { return math.Sqrt(u.LenSquared()) }

// Dist returns the distance between points a and b.
func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 { return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// IsClockwise reports whether v lies clockwise of u, i.e. whether the
// cross product u×v is negative.
func IsClockwise(u, v Vec2) bool { return u.Cross(v) < 0 }

// Vec3 is a 3D double-precision vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 constructs a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns u + v.
func (u Vec3) Add(v Vec3) Vec3 { return Vec3{u.X + v.X, u.Y + v.Y, u.Z + v.Z} }

// Sub returns u − v.
func (u Vec3) Sub(v Vec3) Vec3 { return Vec3{u.X - v.X, u.Y - v.Y, u.Z - v.Z} }

// Scale returns u scaled by s.
func (u Vec3) Scale(s float64) Vec3 { return Vec3{u.X * s, u.Y * s, u.Z * s} }

// Dot returns the scalar product u·v.
func (u Vec3) Dot(v Vec3) float64 { return u.X*v.X + u.Y*v.Y + u.Z*v.Z }

// Len returns |u|.
func (u Vec3) Len() float64 { return math.Sqrt(u.Dot(u)) }
