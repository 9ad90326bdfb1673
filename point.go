package geom

import "math"

// Point represents a 2D position.
// Unlike Vec2 which represents a displacement, Point represents a location.
// Shape vertices and centers are Points; edges and normals are Vec2s.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point moved by another point treated as an offset.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddVec returns the point displaced by a vector.
func (p Point) AddVec(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference of two points as a displacement vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point with its coordinates scaled component-wise.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// ScaleVec returns the point scaled component-wise by a vector.
func (p Point) ScaleVec(v Vec2) Point {
	return Point{X: p.X * v.X, Y: p.Y * v.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAround returns the point rotated by angle radians around pivot.
func (p Point) RotateAround(angle float64, pivot Point) Point {
	return pivot.AddVec(p.Sub(pivot).Rotate(angle))
}

// Transform returns the point with an affine transform applied.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// ToVec2 converts Point to Vec2.
// Useful when a position must be treated as a displacement from the origin.
func (p Point) ToVec2() Vec2 {
	return Vec2(p)
}

// PointsFromFlat converts a flat interleaved coordinate sequence
// [x0, y0, x1, y1, ...] into a point slice. A trailing odd coordinate is
// ignored.
func PointsFromFlat(coords []float64) []Point {
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, Pt(coords[i], coords[i+1]))
	}
	return points
}

// FlattenPoints converts a point slice into a flat interleaved coordinate
// sequence [x0, y0, x1, y1, ...], the form consumed by the triangulator.
func FlattenPoints(points []Point) []float64 {
	coords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}
