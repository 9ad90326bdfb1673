// Package geom provides 2D geometric shapes for collision detection and
// spatial queries.
//
// # Overview
//
// geom is a pure Go geometry library for interactive applications. Two peer
// shape types share a common protocol (pose, bounds, containment, transform)
// while differing internally: [Polygon] owns an ordered vertex list with
// derived per-edge vectors and outward normals, and [Ellipse] owns a center
// and radius vector with the derived fields of the implicit containment
// equation. Both maintain a pooled axis-aligned bounding box that is updated
// incrementally on every edit.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// A 10x10 square at world position (0, 0).
//	square, err := geom.NewPolygon(geom.Pt(0, 0), []geom.Point{
//	    geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10),
//	})
//	if err != nil {
//	    // fewer than three vertices
//	}
//
//	square.Contains(5, 5)        // true
//	square.Translate(100, 0)     // cheap: shifts origin and bounds only
//
//	circle := geom.NewCircle(105, 5, 3)
//	geom.Intersects(square, circle)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive counter-clockwise by mathematical
//     convention
//
// # Winding
//
// Polygon vertices must be listed clockwise (in the y-down frame) and
// describe a convex polygon. This contract is not verified: it determines
// the outward direction of the cached edge normals, which the
// separating-axis collision tests depend on. Non-convex or
// counter-clockwise input gives undefined collision behavior, not an
// error. The point-containment test alone tolerates any simple polygon.
//
// # Derived State
//
// Structural and affine edits (SetVertices, Transform, Rotate, Scale)
// eagerly recompute edges, normals and bounds. Triangulation is the
// exception: [Polygon.Indices] computes it on first request and caches it
// until the vertex set next changes. Translation touches only the shape's
// position and shifts the cached bounds, the cheapest edit.
//
// # Performance
//
// Bounding boxes are pulled from a shared [BoundsPool]; a shape owns its
// box exclusively until its Release method hands it back. All operations
// are synchronous and allocation-light; lazy recomputes (bounds,
// triangulation) are idempotent and side-effect-free to repeat.
package geom
