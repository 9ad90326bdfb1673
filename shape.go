package geom

// Shape is the protocol shared by the 2D collision shapes.
// It is implemented by [Polygon] and [Ellipse] via plain interface dispatch;
// the two variants differ internally (vertex list with derived edges and
// normals versus center and radius vector) but expose the same pose,
// containment and bounds surface.
//
// All mutations are synchronous and run to completion on the calling
// goroutine. A shape instance is owned by a single entity and is not safe
// for concurrent mutation.
type Shape interface {
	// Translate moves the shape by the given offset. Only the shape's
	// position and its cached bounds are touched; derived geometry stays
	// valid, making this the cheapest edit.
	Translate(dx, dy float64)

	// TranslateVec moves the shape by a vector offset.
	TranslateVec(v Vec2)

	// Rotate rotates the shape by angle radians (counter-clockwise by
	// mathematical convention) about the local origin.
	Rotate(angle float64)

	// RotateAround rotates the shape by angle radians about pivot.
	RotateAround(angle float64, pivot Point)

	// Scale scales the shape uniformly.
	Scale(s float64)

	// ScaleXY scales the shape component-wise.
	ScaleXY(sx, sy float64)

	// ScaleVec scales the shape component-wise by a vector.
	ScaleVec(v Vec2)

	// Contains reports whether the world-space point (x, y) lies inside
	// the shape. Callers testing many points are advised to pre-filter
	// with Bounds().Contains, which is O(1).
	Contains(x, y float64) bool

	// ContainsPoint reports whether p lies inside the shape.
	ContainsPoint(p Point) bool

	// Bounds returns the shape's axis-aligned bounding box, pulling one
	// from DefaultBoundsPool on first call. The shape owns the returned
	// box exclusively; it stays valid and in sync across edits until
	// Release is called.
	Bounds() *Bounds

	// Clone returns a deep copy of the shape. All derived state is
	// rebuilt fresh, so no geometry is aliased between clone and
	// original.
	Clone() Shape

	// Release returns the pooled bounds box, if any, to the pool.
	// Call it when discarding the shape. The shape remains usable
	// afterwards; the next Bounds call pulls a fresh box.
	Release()
}

var (
	_ Shape = (*Polygon)(nil)
	_ Shape = (*Ellipse)(nil)
)
