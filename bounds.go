package geom

import "math"

// Bounds is an axis-aligned bounding box in world space, the smallest
// rectangle parallel to the coordinate axes that fully contains a shape.
//
// Shapes keep their Bounds in sync incrementally: structural edits recompute
// it from scratch while translations shift it by the same offset. Bounds
// instances are pooled; shapes pull one lazily on first access and own it
// exclusively until released (see [BoundsPool]).
type Bounds struct {
	Min, Max Point
}

// NewBounds creates an empty bounding box.
// An empty box contains no points and expands to fit the first one added.
func NewBounds() *Bounds {
	b := &Bounds{}
	b.Reset()
	return b
}

// Reset empties the box so the next Update or ExpandPoint starts fresh.
func (b *Bounds) Reset() {
	b.Min = Pt(math.Inf(1), math.Inf(1))
	b.Max = Pt(math.Inf(-1), math.Inf(-1))
}

// IsEmpty returns true if the box contains no area.
func (b *Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// SetMinMax sets the box corners directly.
func (b *Bounds) SetMinMax(minX, minY, maxX, maxY float64) {
	b.Min = Pt(minX, minY)
	b.Max = Pt(maxX, maxY)
}

// ExpandPoint grows the box to include a point.
func (b *Bounds) ExpandPoint(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Update recomputes the box from scratch so it exactly encloses points.
// An empty slice leaves the box empty.
func (b *Bounds) Update(points []Point) {
	b.Reset()
	for _, p := range points {
		b.ExpandPoint(p)
	}
}

// Translate moves the box by the given offset.
func (b *Bounds) Translate(dx, dy float64) {
	b.Min.X += dx
	b.Min.Y += dy
	b.Max.X += dx
	b.Max.Y += dy
}

// TranslateVec moves the box by a vector offset.
func (b *Bounds) TranslateVec(v Vec2) {
	b.Translate(v.X, v.Y)
}

// Shift repositions the box so its min corner is at p, keeping its size.
func (b *Bounds) Shift(p Point) {
	w, h := b.Width(), b.Height()
	b.Min = p
	b.Max = Pt(p.X+w, p.Y+h)
}

// Width returns the horizontal extent of the box.
func (b *Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b *Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the box.
func (b *Bounds) Center() Point {
	return Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

// Contains reports whether the point (x, y) lies inside the box.
// Points on the boundary count as contained.
func (b *Bounds) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// ContainsPoint reports whether p lies inside the box.
func (b *Bounds) ContainsPoint(p Point) bool {
	return b.Contains(p.X, p.Y)
}

// ContainsBounds reports whether other lies entirely inside the box.
func (b *Bounds) ContainsBounds(other *Bounds) bool {
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y
}

// Intersects reports whether the two boxes overlap.
// Boxes that merely touch at an edge count as intersecting.
func (b *Bounds) Intersects(other *Bounds) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

// Clone returns an independent copy of the box.
// The copy is heap-allocated, not pooled.
func (b *Bounds) Clone() *Bounds {
	c := *b
	return &c
}
