package cutmatching

import "errors"

// Sentinel errors for Solver construction. All are precondition
// violations per spec — callers should treat them as caller bugs, not
// recoverable runtime conditions, and branch with errors.Is.
var (
	// ErrEmptySubset indicates the graph G has no alive vertices.
	ErrEmptySubset = errors.New("cutmatching: empty vertex subset")

	// ErrInvalidPhi indicates phi is outside (0,1].
	ErrInvalidPhi = errors.New("cutmatching: phi must be in (0,1]")

	// ErrSizeMismatch indicates the subdivision graph's original-vertex
	// count does not match the graph it claims to subdivide.
	ErrSizeMismatch = errors.New("cutmatching: subdivision graph size mismatch")
)
