package surface

import "errors"

// InvalidGeometryError reports malformed surface input: non-finite
// coordinates, a ragged triple list, or out-of-range vertex indices.
// Degenerate but well-formed input (too few points, flat meshes) is
// not an error; it just yields empty derived data.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.Reason
}

// ErrOutsideSurface is returned by elevation queries for locations not
// covered by any filtered triangle.
var ErrOutsideSurface = errors.New("location is outside the surface")
