package geom

import "errors"

// ErrInvalidGeometry indicates a polygon recompute was attempted with fewer
// than three vertices. This is the only hard failure in the package: shapes
// reject degenerate vertex sets at construction and on structural edits, and
// the error propagates to the caller rather than being recovered internally.
var ErrInvalidGeometry = errors.New("geom: polygon requires at least 3 vertices")
