package geom

const (
	// quadTreeMaxItems is the number of shapes a node holds before it
	// splits into quadrants.
	quadTreeMaxItems = 8

	// quadTreeMaxDepth bounds subdivision so pathological inputs (many
	// coincident shapes) cannot recurse indefinitely.
	quadTreeMaxDepth = 5
)

// QuadTree is a spatial index over shape bounds for broad-phase queries:
// region and point lookups return candidate shapes whose bounding boxes
// match, to be narrowed with Contains or the separating-axis tests.
//
// The tree indexes a shape's bounds at insertion time. After moving or
// editing an indexed shape, call Update to re-index it.
//
// Like the shapes themselves, a QuadTree is single-owner: it is not safe
// for concurrent mutation.
type QuadTree struct {
	root *quadNode
	size int
}

// quadNode is one cell of the tree. Children are nil until the node splits;
// shapes straddling a child boundary stay at the parent.
type quadNode struct {
	bounds   Bounds
	items    []Shape
	children [4]*quadNode
	depth    int
}

// NewQuadTree creates a quadtree covering the given world region.
// Shapes whose bounds extend outside the region are kept at the root, so
// queries stay correct, just less selective.
func NewQuadTree(bounds Bounds) *QuadTree {
	return &QuadTree{root: &quadNode{bounds: bounds}}
}

// Insert adds a shape to the index. Inserting the same shape twice leaves
// two entries; use Update to re-index a moved shape.
func (t *QuadTree) Insert(s Shape) {
	t.root.insert(s)
	t.size++
}

// Remove deletes a shape from the index, reporting whether it was present.
// Shapes are matched by identity, not geometry.
func (t *QuadTree) Remove(s Shape) bool {
	if t.root.remove(s) {
		t.size--
		return true
	}
	return false
}

// Update re-indexes a shape after its bounds changed. The shape is inserted
// whether or not it was previously present.
func (t *QuadTree) Update(s Shape) {
	t.Remove(s)
	t.Insert(s)
}

// Query returns the shapes whose bounds intersect the given region.
func (t *QuadTree) Query(region *Bounds) []Shape {
	var out []Shape
	t.root.query(region, &out)
	return out
}

// QueryPoint returns the shapes whose bounds contain the point (x, y).
// Narrow the candidates with Shape.Contains for exact hits.
func (t *QuadTree) QueryPoint(x, y float64) []Shape {
	region := Bounds{Min: Pt(x, y), Max: Pt(x, y)}
	var out []Shape
	t.root.query(&region, &out)
	return out
}

// Len returns the number of indexed shapes.
func (t *QuadTree) Len() int {
	return t.size
}

func (n *quadNode) insert(s Shape) {
	b := s.Bounds()
	if n.children[0] != nil {
		if c := n.childFor(b); c != nil {
			c.insert(s)
			return
		}
		n.items = append(n.items, s)
		return
	}

	n.items = append(n.items, s)
	if len(n.items) > quadTreeMaxItems && n.depth < quadTreeMaxDepth {
		n.split()
	}
}

// split creates the four quadrants and pushes down every item that fits
// entirely inside one of them.
func (n *quadNode) split() {
	mid := n.bounds.Center()
	quads := [4]Bounds{
		{Min: n.bounds.Min, Max: mid},
		{Min: Pt(mid.X, n.bounds.Min.Y), Max: Pt(n.bounds.Max.X, mid.Y)},
		{Min: Pt(n.bounds.Min.X, mid.Y), Max: Pt(mid.X, n.bounds.Max.Y)},
		{Min: mid, Max: n.bounds.Max},
	}
	for i := range n.children {
		n.children[i] = &quadNode{bounds: quads[i], depth: n.depth + 1}
	}

	kept := n.items[:0]
	for _, s := range n.items {
		if c := n.childFor(s.Bounds()); c != nil {
			c.insert(s)
		} else {
			kept = append(kept, s)
		}
	}
	n.items = kept
}

// childFor returns the child node that fully contains b, or nil if b
// straddles a boundary.
func (n *quadNode) childFor(b *Bounds) *quadNode {
	for _, c := range n.children {
		if c.bounds.ContainsBounds(b) {
			return c
		}
	}
	return nil
}

func (n *quadNode) remove(s Shape) bool {
	for i, item := range n.items {
		if item == s {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	if n.children[0] != nil {
		for _, c := range n.children {
			if c.remove(s) {
				return true
			}
		}
	}
	return false
}

func (n *quadNode) query(region *Bounds, out *[]Shape) {
	// Node items are always checked individually: the root may hold
	// shapes outside its nominal region.
	for _, s := range n.items {
		if s.Bounds().Intersects(region) {
			*out = append(*out, s)
		}
	}
	if n.children[0] != nil {
		for _, c := range n.children {
			if c.bounds.Intersects(region) {
				c.query(region, out)
			}
		}
	}
}
