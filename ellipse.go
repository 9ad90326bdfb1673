package geom

import "math"

// Ellipse is an axis-aligned ellipse shape for collision detection, with a
// circle as the uniform special case.
//
// The shape's position is its center, not a corner. From the defining width
// and height the ellipse derives its maximum radius, a per-axis ratio
// encoding anisotropy (the larger axis has ratio 1) and the squared-radius
// vector consumed by the implicit-equation containment test.
type Ellipse struct {
	center Point

	// maxRadius is the larger of the two semi-axes.
	maxRadius float64

	// ratio is (halfWidth, halfHeight) divided by maxRadius.
	// Both components are in (0, 1]; a circle has ratio (1, 1).
	ratio Vec2

	// radius is the semi-axis vector (halfWidth, halfHeight).
	radius Vec2

	// radiusSq is (maxRadius^2, maxRadius^2) scaled component-wise by
	// ratio, the divisors of the implicit containment equation.
	radiusSq Vec2

	bounds *Bounds
}

// NewEllipse creates an ellipse centered at (x, y) with the given total
// width and height. Equal width and height give a circle.
func NewEllipse(x, y, w, h float64) *Ellipse {
	e := &Ellipse{}
	e.SetShape(x, y, w, h)
	return e
}

// NewCircle creates a circle centered at (x, y) with the given radius.
func NewCircle(x, y, radius float64) *Ellipse {
	return NewEllipse(x, y, radius*2, radius*2)
}

// SetShape replaces the ellipse's center and dimensions, recomputing every
// derived field and the bounding box from scratch.
func (e *Ellipse) SetShape(x, y, w, h float64) {
	hw := w / 2
	hh := h / 2
	e.center = Pt(x, y)
	e.maxRadius = math.Max(hw, hh)
	if e.maxRadius > 0 {
		e.ratio = V2(hw/e.maxRadius, hh/e.maxRadius)
	} else {
		e.ratio = V2(1, 1)
	}
	e.radius = V2(e.maxRadius, e.maxRadius).MulVec(e.ratio)
	rSq := e.maxRadius * e.maxRadius
	e.radiusSq = V2(rSq, rSq).MulVec(e.ratio)
	e.updateBounds()
}

// Rotate rotates the center about the world origin.
//
// Limitation: the radii are not rotated, so this is geometrically correct
// only for circles. A non-uniform ellipse keeps its axis-aligned radii.
// This mirrors the long-standing behavior callers depend on rather than a
// true ellipse rotation.
func (e *Ellipse) Rotate(angle float64) {
	e.RotateAround(angle, Pt(0, 0))
}

// RotateAround rotates the center about pivot. The circle-only limitation
// of Rotate applies here as well.
func (e *Ellipse) RotateAround(angle float64, pivot Point) {
	e.center = e.center.RotateAround(angle, pivot)
	if e.bounds != nil {
		// The box keeps its size: shift it to the new center, then
		// re-apply the corner offset.
		e.bounds.Shift(e.center)
		e.bounds.Translate(-e.radius.X, -e.radius.Y)
	}
}

// Scale scales the ellipse uniformly. Scaling is multiplicative against the
// current radii, not the original dimensions.
func (e *Ellipse) Scale(s float64) {
	e.ScaleXY(s, s)
}

// ScaleXY scales the ellipse component-wise, re-deriving every field from
// the scaled dimensions.
func (e *Ellipse) ScaleXY(sx, sy float64) {
	e.SetShape(e.center.X, e.center.Y, e.radius.X*2*sx, e.radius.Y*2*sy)
}

// ScaleVec scales the ellipse component-wise by a vector.
func (e *Ellipse) ScaleVec(v Vec2) {
	e.ScaleXY(v.X, v.Y)
}

// Transform is a no-op: arbitrary affine transforms of ellipses are not
// supported. Callers needing shear or rotation of a non-uniform ellipse
// should approximate it with a polygon.
func (e *Ellipse) Transform(Matrix) {}

// Translate moves the center by the given offset and shifts the cached
// bounds box by the same delta. No radius recompute is needed.
func (e *Ellipse) Translate(dx, dy float64) {
	e.center = e.center.Add(Pt(dx, dy))
	if e.bounds != nil {
		e.bounds.Translate(dx, dy)
	}
}

// TranslateVec moves the center by a vector offset.
func (e *Ellipse) TranslateVec(v Vec2) {
	e.Translate(v.X, v.Y)
}

// Contains reports whether the world-space point (x, y) lies inside the
// ellipse, by evaluating the implicit equation
// dx^2/radiusSq.x + dy^2/radiusSq.y <= 1 with the point translated to be
// center-relative. A point exactly on the boundary counts as contained.
func (e *Ellipse) Contains(x, y float64) bool {
	dx := x - e.center.X
	dy := y - e.center.Y
	return dx*dx/e.radiusSq.X+dy*dy/e.radiusSq.Y <= 1.0
}

// ContainsPoint reports whether p lies inside the ellipse.
func (e *Ellipse) ContainsPoint(p Point) bool {
	return e.Contains(p.X, p.Y)
}

// Bounds returns the ellipse's world-space bounding box, pulling one from
// DefaultBoundsPool on first call. The ellipse owns the box exclusively and
// keeps it in sync across edits.
func (e *Ellipse) Bounds() *Bounds {
	if e.bounds == nil {
		e.bounds = DefaultBoundsPool.Get()
		e.updateBounds()
	}
	return e.bounds
}

// updateBounds recomputes the box from the enclosing rectangle of the
// ellipse, translated by the negated radius vector because the box is
// corner-referenced while the shape's position is its center.
func (e *Ellipse) updateBounds() {
	b := e.Bounds()
	b.SetMinMax(e.center.X, e.center.Y,
		e.center.X+e.radius.X*2, e.center.Y+e.radius.Y*2)
	b.Translate(-e.radius.X, -e.radius.Y)
}

// Release returns the pooled bounds box to DefaultBoundsPool.
// The ellipse remains usable; the next Bounds call pulls a fresh box.
func (e *Ellipse) Release() {
	if e.bounds != nil {
		DefaultBoundsPool.Put(e.bounds)
		e.bounds = nil
	}
}

// Clone returns a deep copy of the ellipse with fully independent derived
// state.
func (e *Ellipse) Clone() Shape {
	return NewEllipse(e.center.X, e.center.Y, e.radius.X*2, e.radius.Y*2)
}

// Center returns the ellipse's world position.
func (e *Ellipse) Center() Point {
	return e.center
}

// MaxRadius returns the larger semi-axis.
func (e *Ellipse) MaxRadius() float64 {
	return e.maxRadius
}

// Ratio returns the per-axis anisotropy ratio. Both components are at most
// 1; the larger axis has ratio 1 and a circle is (1, 1).
func (e *Ellipse) Ratio() Vec2 {
	return e.ratio
}

// Radius returns the semi-axis vector (halfWidth, halfHeight), raw geometry
// for callers such as a physics solver.
func (e *Ellipse) Radius() Vec2 {
	return e.radius
}

// RadiusSq returns the squared-radius vector used by the containment test.
func (e *Ellipse) RadiusSq() Vec2 {
	return e.radiusSq
}
