package geometry

import "math"

// Bowyer-Watson incremental Delaunay triangulation over the XY
// projection of a 3D point set. Elevations ride along untouched; only
// X and Y decide connectivity.

type delaunayTri struct {
	a, b, c int
}

type delaunayEdge struct {
	p1, p2 int
}

// Triangulate computes the Delaunay triangulation of the XY projection
// of points and returns it as a flat vertex index triple list.
// Fewer than 3 points or fully collinear input yields an empty result.
func Triangulate(points []Vector3) []int {
	if len(points) < 3 {
		return nil
	}

	// Working copy with the three super-triangle vertices appended;
	// they get indices len(points)..len(points)+2.
	super := superTriangle(points)
	work := make([]Vector3, len(points), len(points)+3)
	copy(work, points)
	work = append(work, super[0], super[1], super[2])

	n := len(points)
	triangles := []delaunayTri{{n, n + 1, n + 2}}

	for i := range points {
		var bad []int

		for j, tri := range triangles {
			if inCircumcircle(work, tri, points[i]) {
				bad = append(bad, j)
			}
		}

		// Boundary of the cavity: edges not shared by two bad triangles
		var polygon []delaunayEdge

		for _, j := range bad {
			for _, edge := range triEdges(triangles[j]) {
				shared := false

				for _, k := range bad {
					if k == j {
						continue
					}
					if triHasEdge(triangles[k], edge) {
						shared = true
						break
					}
				}

				if !shared {
					polygon = append(polygon, edge)
				}
			}
		}

		triangles = removeIndices(triangles, bad)

		for _, edge := range polygon {
			triangles = append(triangles, delaunayTri{edge.p1, edge.p2, i})
		}
	}

	var result []int

	for _, tri := range triangles {
		// Drop triangles touching the super-triangle and degenerate
		// slivers from collinear input.
		if tri.a >= n || tri.b >= n || tri.c >= n {
			continue
		}
		if math.Abs(NewTriangle(tri.a, tri.b, tri.c).AreaXY(points)) < 1e-12 {
			continue
		}
		result = append(result, tri.a, tri.b, tri.c)
	}

	return result
}

// superTriangle returns three vertices enclosing all input points in XY
func superTriangle(points []Vector3) [3]Vector3 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	delta := math.Max(maxX-minX, maxY-minY)
	if delta == 0 {
		delta = 1
	}

	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	return [3]Vector3{
		{X: midX - 20*delta, Y: midY - delta},
		{X: midX, Y: midY + 20*delta},
		{X: midX + 20*delta, Y: midY - delta},
	}
}

// circumcircle returns the center and radius of the circle through the
// XY projections of three points. Degenerate triangles report an
// infinite radius.
func circumcircle(a, b, c Vector3) (cx, cy, r float64) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-10 {
		return 0, 0, math.Inf(1)
	}

	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y

	cx = (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d
	cy = (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d
	r = math.Hypot(cx-a.X, cy-a.Y)

	return cx, cy, r
}

func inCircumcircle(work []Vector3, tri delaunayTri, p Vector3) bool {
	cx, cy, r := circumcircle(work[tri.a], work[tri.b], work[tri.c])
	if math.IsInf(r, 1) {
		return false
	}

	return math.Hypot(p.X-cx, p.Y-cy) < r
}

func triEdges(t delaunayTri) [3]delaunayEdge {
	return [3]delaunayEdge{
		{t.a, t.b},
		{t.b, t.c},
		{t.c, t.a},
	}
}

func triHasEdge(t delaunayTri, e delaunayEdge) bool {
	for _, other := range triEdges(t) {
		if (e.p1 == other.p1 && e.p2 == other.p2) ||
			(e.p1 == other.p2 && e.p2 == other.p1) {
			return true
		}
	}
	return false
}

func removeIndices(triangles []delaunayTri, drop []int) []delaunayTri {
	if len(drop) == 0 {
		return triangles
	}

	dropSet := make(map[int]bool, len(drop))
	for _, j := range drop {
		dropSet[j] = true
	}

	kept := triangles[:0]
	for j, tri := range triangles {
		if !dropSet[j] {
			kept = append(kept, tri)
		}
	}

	return kept
}
