package geom

import "math"

// Separating-axis collision tests over the package's shapes.
//
// The polygon tests consume the cached per-edge normals maintained by
// Polygon.Recalc, so they inherit the same correctness contract: convex,
// clockwise-wound vertex lists. Every test pre-filters with the shapes'
// bounding boxes, which are cached and kept in sync incrementally.

// Intersects reports whether two shapes overlap. Shape pairs are dispatched
// to the specialized tests below; the ellipse cases are exact for circles
// and conservative approximations for non-uniform ellipses.
func Intersects(a, b Shape) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	switch s := a.(type) {
	case *Polygon:
		switch t := b.(type) {
		case *Polygon:
			return polygonsOverlap(s, t)
		case *Ellipse:
			return polygonEllipseOverlap(s, t)
		}
	case *Ellipse:
		switch t := b.(type) {
		case *Polygon:
			return polygonEllipseOverlap(t, s)
		case *Ellipse:
			return ellipsesOverlap(s, t)
		}
	}
	// Unknown shape pairing: the bounds overlap is the best answer.
	return true
}

// PolygonsIntersect reports whether two convex clockwise polygons overlap,
// using the separating-axis theorem over both polygons' cached edge normals.
func PolygonsIntersect(a, b *Polygon) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	return polygonsOverlap(a, b)
}

func polygonsOverlap(a, b *Polygon) bool {
	for _, axis := range a.normals {
		if !overlapOnAxis(a, b, axis) {
			return false
		}
	}
	for _, axis := range b.normals {
		if !overlapOnAxis(a, b, axis) {
			return false
		}
	}
	return true
}

// MinimumTranslation returns the smallest vector that moves polygon a out of
// polygon b, and whether the polygons overlap at all. The vector points from
// b toward a, so a.TranslateVec(mtv) separates the pair.
func MinimumTranslation(a, b *Polygon) (Vec2, bool) {
	if !a.Bounds().Intersects(b.Bounds()) {
		return Vec2{}, false
	}

	minOverlap := math.Inf(1)
	var mtvAxis Vec2
	centerDelta := a.worldCenter().Sub(b.worldCenter())

	for _, p := range [2]*Polygon{a, b} {
		for _, axis := range p.normals {
			minA, maxA := a.projectOnto(axis)
			minB, maxB := b.projectOnto(axis)
			if maxA < minB || maxB < minA {
				return Vec2{}, false
			}

			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap < minOverlap {
				minOverlap = overlap
				mtvAxis = axis
				if centerDelta.Dot(mtvAxis) < 0 {
					mtvAxis = mtvAxis.Neg()
				}
			}
		}
	}
	return mtvAxis.Mul(minOverlap), true
}

// PolygonEllipseIntersect reports whether a convex clockwise polygon and an
// ellipse overlap. The polygon's cached normals are tested along with the
// axis toward the polygon vertex nearest the ellipse center. Exact for
// circles; for non-uniform ellipses the per-axis support radius makes the
// test a close conservative approximation.
func PolygonEllipseIntersect(p *Polygon, e *Ellipse) bool {
	if !p.Bounds().Intersects(e.Bounds()) {
		return false
	}
	return polygonEllipseOverlap(p, e)
}

func polygonEllipseOverlap(p *Polygon, e *Ellipse) bool {
	for _, axis := range p.normals {
		if !overlapWithEllipse(p, e, axis) {
			return false
		}
	}
	// The vertex-to-center axis catches the corner cases the edge normals
	// miss when the ellipse sits off a polygon corner.
	axis := e.center.Sub(p.nearestWorldVertex(e.center)).Normalize()
	if axis.IsZero() {
		return true
	}
	return overlapWithEllipse(p, e, axis)
}

// EllipsesIntersect reports whether two ellipses overlap by comparing the
// center distance against the summed support radii along the center axis.
// Exact for circles, a conservative approximation for non-uniform ellipses.
func EllipsesIntersect(a, b *Ellipse) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	return ellipsesOverlap(a, b)
}

func ellipsesOverlap(a, b *Ellipse) bool {
	delta := b.center.Sub(a.center)
	dist := delta.Length()
	if dist == 0 {
		return true
	}
	axis := delta.Mul(1 / dist)
	return dist <= a.supportRadius(axis)+b.supportRadius(axis)
}

// overlapOnAxis reports whether the projections of two polygons onto a unit
// axis overlap.
func overlapOnAxis(a, b *Polygon, axis Vec2) bool {
	minA, maxA := a.projectOnto(axis)
	minB, maxB := b.projectOnto(axis)
	return maxA >= minB && maxB >= minA
}

// overlapWithEllipse reports whether the projections of a polygon and an
// ellipse onto a unit axis overlap.
func overlapWithEllipse(p *Polygon, e *Ellipse, axis Vec2) bool {
	minP, maxP := p.projectOnto(axis)
	c := e.center.ToVec2().Dot(axis)
	r := e.supportRadius(axis)
	return maxP >= c-r && c+r >= minP
}

// projectOnto returns the minimum and maximum extent of the polygon's
// world-space vertices along a unit axis.
func (p *Polygon) projectOnto(axis Vec2) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range p.vertices {
		d := (p.origin.X+v.X)*axis.X + (p.origin.Y+v.Y)*axis.Y
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// worldCenter returns the mean of the polygon's world-space vertices.
func (p *Polygon) worldCenter() Point {
	var sum Vec2
	for _, v := range p.vertices {
		sum = sum.Add(v.ToVec2())
	}
	return p.origin.AddVec(sum.Mul(1 / float64(len(p.vertices))))
}

// nearestWorldVertex returns the world-space vertex closest to pt.
func (p *Polygon) nearestWorldVertex(pt Point) Point {
	best := p.origin.Add(p.vertices[0])
	bestSq := best.Sub(pt).LengthSq()
	for _, v := range p.vertices[1:] {
		w := p.origin.Add(v)
		if dSq := w.Sub(pt).LengthSq(); dSq < bestSq {
			best, bestSq = w, dSq
		}
	}
	return best
}

// supportRadius returns the extent of the ellipse along a unit axis: the
// support function of an axis-aligned ellipse.
func (e *Ellipse) supportRadius(axis Vec2) float64 {
	rx := e.radius.X * axis.X
	ry := e.radius.Y * axis.Y
	return math.Sqrt(rx*rx + ry*ry)
}
