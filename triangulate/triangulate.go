// Package triangulate decomposes simple polygons into triangles.
//
// The input is a flat interleaved coordinate sequence [x0, y0, x1, y1, ...]
// and the output is a flat list of indices into that vertex sequence, three
// per triangle. Triangulation is a pure function: stateless, deterministic,
// and free of side effects, so repeating it is always safe.
package triangulate

// epsilon is the area threshold below which a candidate ear is treated as
// degenerate and skipped.
const epsilon = 1e-12

// Triangulate triangulates a simple polygon by ear clipping.
//
// Either winding is accepted. The result references the original vertex
// order regardless of winding, and a valid simple polygon with n vertices
// produces exactly 3*(n-2) indices. Fewer than three vertices yield nil.
//
// Self-intersecting input is not supported; a degenerate remainder (for
// example collinear runs) falls back to fan triangulation rather than
// failing.
func Triangulate(coords []float64) []int {
	n := len(coords) / 2
	if n < 3 {
		return nil
	}

	// Work on an index list ordered counter-clockwise so the ear test has
	// a fixed orientation; emitted triples keep the original indices.
	idx := make([]int, n)
	if signedArea(coords) >= 0 {
		for i := range idx {
			idx[i] = i
		}
	} else {
		for i := range idx {
			idx[i] = n - 1 - i
		}
	}

	out := make([]int, 0, 3*(n-2))
	for len(idx) > 3 {
		ear := findEar(coords, idx)
		if ear < 0 {
			// No ear found: the remainder is degenerate. Fan from the
			// first remaining vertex instead of failing.
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, idx[0], idx[i], idx[i+1])
			}
			return out
		}
		m := len(idx)
		out = append(out, idx[(ear+m-1)%m], idx[ear], idx[(ear+1)%m])
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	return append(out, idx[0], idx[1], idx[2])
}

// findEar returns the position in idx of a clippable ear, or -1 if none
// exists.
func findEar(coords []float64, idx []int) int {
	m := len(idx)
	for i := 0; i < m; i++ {
		a := idx[(i+m-1)%m]
		b := idx[i]
		c := idx[(i+1)%m]
		if !isConvex(coords, a, b, c) {
			continue
		}
		if containsOther(coords, idx, a, b, c) {
			continue
		}
		return i
	}
	return -1
}

// isConvex reports whether vertex b forms a strictly convex corner in the
// counter-clockwise working order. Zero-area corners are rejected so
// degenerate slivers are never emitted.
func isConvex(coords []float64, a, b, c int) bool {
	cross := (coords[2*b]-coords[2*a])*(coords[2*c+1]-coords[2*b+1]) -
		(coords[2*b+1]-coords[2*a+1])*(coords[2*c]-coords[2*b])
	return cross > epsilon
}

// containsOther reports whether any remaining vertex other than a, b, c
// lies inside the candidate ear triangle.
func containsOther(coords []float64, idx []int, a, b, c int) bool {
	for _, v := range idx {
		if v == a || v == b || v == c {
			continue
		}
		if inTriangle(coords, a, b, c, coords[2*v], coords[2*v+1]) {
			return true
		}
	}
	return false
}

// inTriangle reports whether (px, py) lies inside or on the triangle
// (a, b, c), which is in counter-clockwise order.
func inTriangle(coords []float64, a, b, c int, px, py float64) bool {
	return edgeSide(coords, a, b, px, py) >= 0 &&
		edgeSide(coords, b, c, px, py) >= 0 &&
		edgeSide(coords, c, a, px, py) >= 0
}

// edgeSide returns the cross product placing (px, py) relative to the
// directed edge from i to j: positive is left of the edge.
func edgeSide(coords []float64, i, j int, px, py float64) float64 {
	return (coords[2*j]-coords[2*i])*(py-coords[2*i+1]) -
		(coords[2*j+1]-coords[2*i+1])*(px-coords[2*i])
}

// signedArea returns twice the shoelace area of the polygon: positive for
// counter-clockwise winding in a y-up frame.
func signedArea(coords []float64) float64 {
	n := len(coords) / 2
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += coords[2*i]*coords[2*j+1] - coords[2*j]*coords[2*i+1]
	}
	return area
}
