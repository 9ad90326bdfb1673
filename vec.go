package geom

import "math"

// Vec2 represents a 2D displacement vector.
// Unlike Point which represents a position, Vec2 represents a direction and
// magnitude. Polygon edges and edge normals are Vec2s.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the vector scaled component-wise by another vector.
func (v Vec2) MulVec(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Useful for determining the sign of the angle between vectors.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns the left-hand perpendicular vector (rotated 90 degrees
// counter-clockwise in a y-up frame).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// RPerp returns the right-hand perpendicular vector, the negation of Perp.
// For a clockwise-wound polygon in screen coordinates (y down), RPerp of an
// edge points out of the polygon interior.
func (v Vec2) RPerp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// ToPoint converts Vec2 to Point.
// Useful when a displacement from the origin must be treated as a position.
func (v Vec2) ToPoint() Point {
	return Point(v)
}
