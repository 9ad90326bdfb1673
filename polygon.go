package geom

import (
	"fmt"
	"math"

	"github.com/gogpu/geom/triangulate"
)

// Polygon is a convex polygon shape for collision detection.
//
// Vertices are stored relative to the polygon's origin: the shape's world
// position is origin, and the world position of vertex i is
// origin + vertices[i]. Alongside the vertex list the polygon maintains
// per-edge vectors, per-edge outward unit normals (consumed by the
// separating-axis tests in this package) and a lazily computed, cached
// triangulation.
//
// Correctness contract: vertices must describe a convex polygon wound
// clockwise (in screen coordinates, y down). The package does not verify
// this; non-convex or counter-clockwise input gives undefined collision
// behavior, not an error. Contains alone tolerates any simple polygon.
type Polygon struct {
	origin   Point
	vertices []Point
	edges    []Vec2
	normals  []Vec2

	// indices caches the triangulation of the current vertex set.
	// Empty means not yet computed since the last structural edit.
	indices []int

	// bounds is pulled lazily from DefaultBoundsPool and owned
	// exclusively by this shape until Release.
	bounds *Bounds
}

// NewPolygon creates a polygon from an origin and a vertex list.
// The vertices are copied. Returns ErrInvalidGeometry if fewer than three
// vertices are given.
func NewPolygon(origin Point, vertices []Point) (*Polygon, error) {
	p := &Polygon{}
	if err := p.SetShape(origin, vertices); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPolygonFlat creates a polygon from an origin and a flat interleaved
// coordinate sequence [x0, y0, x1, y1, ...].
func NewPolygonFlat(origin Point, coords []float64) (*Polygon, error) {
	return NewPolygon(origin, PointsFromFlat(coords))
}

// SetShape replaces the polygon's origin and vertex list, then recomputes
// all derived state. A nil vertex list leaves the polygon unchanged (see
// SetVertices); fewer than three vertices is an error.
func (p *Polygon) SetShape(origin Point, vertices []Point) error {
	if vertices == nil {
		Logger().Debug("geom: polygon SetShape ignoring nil vertex list")
		return nil
	}
	p.origin = origin
	return p.SetVertices(vertices)
}

// SetVertices replaces the vertex list (copying the input), then recomputes
// edges, normals and bounds. The cached triangulation is invalidated.
//
// A nil slice is silently ignored and the polygon left unchanged; a non-nil
// slice with fewer than three points returns ErrInvalidGeometry. The two
// validation layers are deliberate: unrecognized input is tolerated while
// degenerate geometry is fatal.
func (p *Polygon) SetVertices(vertices []Point) error {
	if vertices == nil {
		Logger().Debug("geom: polygon SetVertices ignoring nil vertex list")
		return nil
	}
	p.vertices = append(p.vertices[:0], vertices...)
	if err := p.Recalc(); err != nil {
		return err
	}
	p.updateBounds()
	return nil
}

// SetVerticesFlat replaces the vertex list from a flat interleaved
// coordinate sequence [x0, y0, x1, y1, ...]. A trailing odd coordinate is
// ignored. Nil input is silently ignored, like SetVertices.
func (p *Polygon) SetVerticesFlat(coords []float64) error {
	if coords == nil {
		Logger().Debug("geom: polygon SetVerticesFlat ignoring nil coordinate list")
		return nil
	}
	return p.SetVertices(PointsFromFlat(coords))
}

// Recalc recomputes the per-edge vectors and outward unit normals from the
// current vertex list and invalidates the cached triangulation. It is called
// automatically after every structural or affine edit; callers only need it
// after mutating the slice returned by Vertices directly.
//
// Returns ErrInvalidGeometry if fewer than three vertices are present.
func (p *Polygon) Recalc() error {
	if len(p.vertices) < 3 {
		return fmt.Errorf("%w (have %d)", ErrInvalidGeometry, len(p.vertices))
	}
	p.recalc()
	return nil
}

// recalc rebuilds edges and normals without revalidating the vertex count.
// Edge and normal storage is reused across recomputes to avoid churn.
func (p *Polygon) recalc() {
	n := len(p.vertices)
	p.edges = p.edges[:0]
	p.normals = p.normals[:0]
	for i := 0; i < n; i++ {
		edge := p.vertices[(i+1)%n].Sub(p.vertices[i])
		p.edges = append(p.edges, edge)
		// Clockwise winding: the right-hand perpendicular points outward.
		p.normals = append(p.normals, edge.RPerp().Normalize())
	}
	p.indices = nil
}

// Indices returns a triangulation of the polygon as a flat list of vertex
// indices, three per triangle. The triangulation is computed on first call
// and cached until the next change to the vertex set; repeated calls return
// the same slice.
func (p *Polygon) Indices() []int {
	if len(p.indices) == 0 {
		p.indices = triangulate.Triangulate(FlattenPoints(p.vertices))
		Logger().Debug("geom: polygon triangulated",
			"vertices", len(p.vertices), "triangles", len(p.indices)/3)
	}
	return p.indices
}

// Transform applies an arbitrary affine transform to every vertex in place,
// then recomputes edges, normals and bounds. No convexity or winding check
// is performed; the caller must supply transforms that preserve convex,
// clockwise geometry if collision correctness matters.
func (p *Polygon) Transform(m Matrix) {
	for i := range p.vertices {
		p.vertices[i] = m.TransformPoint(p.vertices[i])
	}
	p.recalc()
	p.updateBounds()
}

// Rotate rotates every vertex by angle radians about the local origin, then
// recomputes derived state. A zero angle is a no-op.
func (p *Polygon) Rotate(angle float64) {
	if angle == 0 {
		return
	}
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Rotate(angle)
	}
	p.recalc()
	p.updateBounds()
}

// RotateAround rotates every vertex by angle radians about pivot (in local,
// origin-relative coordinates), then recomputes derived state. A zero angle
// is a no-op.
func (p *Polygon) RotateAround(angle float64, pivot Point) {
	if angle == 0 {
		return
	}
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].RotateAround(angle, pivot)
	}
	p.recalc()
	p.updateBounds()
}

// Scale scales every vertex uniformly, then recomputes derived state.
func (p *Polygon) Scale(s float64) {
	p.ScaleXY(s, s)
}

// ScaleXY scales every vertex component-wise, then recomputes derived state.
func (p *Polygon) ScaleXY(sx, sy float64) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Scale(sx, sy)
	}
	p.recalc()
	p.updateBounds()
}

// ScaleVec scales every vertex component-wise by a vector.
func (p *Polygon) ScaleVec(v Vec2) {
	p.ScaleXY(v.X, v.Y)
}

// ToIso projects the polygon into isometric view: a 45 degree rotation
// followed by an anisotropic scale. To2D is its exact inverse.
func (p *Polygon) ToIso() {
	p.Rotate(math.Pi / 4)
	p.ScaleXY(math.Sqrt2, math.Sqrt2/2)
}

// To2D undoes ToIso, restoring the orthogonal projection.
func (p *Polygon) To2D() {
	p.ScaleXY(math.Sqrt2/2, math.Sqrt2)
	p.Rotate(-math.Pi / 4)
}

// Translate moves the polygon's origin by the given offset. The vertices
// stay origin-relative and are not touched; the cached bounds box is shifted
// by the same offset instead of being recomputed.
func (p *Polygon) Translate(dx, dy float64) {
	p.origin = p.origin.Add(Pt(dx, dy))
	if p.bounds != nil {
		p.bounds.Translate(dx, dy)
	}
}

// TranslateVec moves the polygon's origin by a vector offset.
func (p *Polygon) TranslateVec(v Vec2) {
	p.Translate(v.X, v.Y)
}

// Contains reports whether the world-space point (x, y) lies inside the
// polygon, using the standard ray-crossing (even-odd) test over the vertex
// list offset by the origin. The test works for any simple polygon, convex
// or not, but is O(n); pre-filter with Bounds().Contains when testing many
// points. A point exactly on an edge has undefined parity.
func (p *Polygon) Contains(x, y float64) bool {
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi := p.vertices[i].X + p.origin.X
		yi := p.vertices[i].Y + p.origin.Y
		xj := p.vertices[j].X + p.origin.X
		yj := p.vertices[j].Y + p.origin.Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// ContainsPoint reports whether pt lies inside the polygon.
func (p *Polygon) ContainsPoint(pt Point) bool {
	return p.Contains(pt.X, pt.Y)
}

// Bounds returns the polygon's world-space bounding box, pulling one from
// DefaultBoundsPool on first call. The polygon owns the box exclusively and
// keeps it in sync across edits.
func (p *Polygon) Bounds() *Bounds {
	if p.bounds == nil {
		p.bounds = DefaultBoundsPool.Get()
		p.updateBounds()
	}
	return p.bounds
}

// updateBounds recomputes the bounding box from the origin-relative vertex
// set, then shifts it into world space by the origin.
func (p *Polygon) updateBounds() {
	b := p.Bounds()
	b.Update(p.vertices)
	b.Translate(p.origin.X, p.origin.Y)
}

// Release returns the pooled bounds box to DefaultBoundsPool.
// The polygon remains usable; the next Bounds call pulls a fresh box.
func (p *Polygon) Release() {
	if p.bounds != nil {
		DefaultBoundsPool.Put(p.bounds)
		p.bounds = nil
	}
}

// Clone returns a deep copy of the polygon. The vertex list is copied and
// all derived state (edges, normals, bounds, triangulation) is rebuilt
// fresh, so mutating the clone never affects the original.
func (p *Polygon) Clone() Shape {
	vertices := make([]Point, len(p.vertices))
	copy(vertices, p.vertices)
	clone := &Polygon{origin: p.origin, vertices: vertices}
	clone.recalc()
	clone.updateBounds()
	return clone
}

// Origin returns the polygon's world position. Vertex coordinates are
// relative to this point.
func (p *Polygon) Origin() Point {
	return p.origin
}

// Vertices returns the polygon's origin-relative vertex list.
// The slice is the polygon's internal storage: treat it as read-only, or
// call Recalc after mutating it in place.
func (p *Polygon) Vertices() []Point {
	return p.vertices
}

// Edges returns the per-edge vectors, edge i running from vertex i to
// vertex (i+1) mod n. Read-only view of internal storage.
func (p *Polygon) Edges() []Vec2 {
	return p.edges
}

// Normals returns the outward unit normal of each edge, indexed like Edges.
// Read-only view of internal storage.
func (p *Polygon) Normals() []Vec2 {
	return p.normals
}
