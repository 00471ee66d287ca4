package surface

import (
	"math"

	"github.com/trailscad/trails/pkg/geometry"
)

// ElevationAt interpolates the surface elevation at an XY location
// using barycentric coordinates over the filtered triangles. Returns
// ErrOutsideSurface when no triangle covers the location.
func (s *Surface) ElevationAt(x, y float64) (float64, error) {
	for _, tri := range geometry.Unpack(s.Triangles) {
		a, b, c := tri.Vertices(s.Points)

		u, v, w, ok := barycentric(x, y, a, b, c)
		if !ok {
			continue
		}

		if u >= 0 && v >= 0 && w >= 0 {
			return u*a.Z + v*b.Z + w*c.Z, nil
		}
	}

	return 0, ErrOutsideSurface
}

// barycentric returns the barycentric coordinates of (x, y) with
// respect to the XY projection of a triangle. ok is false for
// degenerate triangles.
func barycentric(x, y float64, a, b, c geometry.Vector3) (u, v, w float64, ok bool) {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if math.Abs(denom) < 1e-10 {
		return 0, 0, 0, false
	}

	u = ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / denom
	v = ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / denom
	w = 1 - u - v

	return u, v, w, true
}
