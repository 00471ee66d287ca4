package geometry

import "math"

// Triangle references three vertices of a point list by index.
// Triangulation results are flat index triple lists; Triangle is the
// unpacked form used for per-triangle math.
type Triangle struct {
	A, B, C int
}

// NewTriangle creates a triangle from three vertex indices
func NewTriangle(a, b, c int) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the three corner points of the triangle
func (t Triangle) Vertices(points []Vector3) (Vector3, Vector3, Vector3) {
	return points[t.A], points[t.B], points[t.C]
}

// EdgeLengths returns the lengths of the three edges AB, BC, CA
func (t Triangle) EdgeLengths(points []Vector3) [3]float64 {
	a, b, c := t.Vertices(points)
	return [3]float64{
		a.Distance(b),
		b.Distance(c),
		c.Distance(a),
	}
}

// Angles returns the three interior angles in degrees, at vertices A, B, C.
// Computed via the law of cosines from the 3D edge lengths.
func (t Triangle) Angles(points []Vector3) [3]float64 {
	e := t.EdgeLengths(points)
	ab, bc, ca := e[0], e[1], e[2]

	return [3]float64{
		angleDeg(ab, ca, bc),
		angleDeg(ab, bc, ca),
		angleDeg(bc, ca, ab),
	}
}

// angleDeg returns the angle opposite edge c in a triangle with
// adjacent edges a and b, in degrees
func angleDeg(a, b, c float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	cos := (a*a + b*b - c*c) / (2 * a * b)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// Area returns the 3D surface area of the triangle
func (t Triangle) Area(points []Vector3) float64 {
	a, b, c := t.Vertices(points)
	return b.Sub(a).Cross(c.Sub(a)).Length() / 2
}

// AreaXY returns the signed area of the triangle projected onto the XY plane
func (t Triangle) AreaXY(points []Vector3) float64 {
	a, b, c := t.Vertices(points)
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// Normal returns the unit normal of the triangle
func (t Triangle) Normal(points []Vector3) Vector3 {
	a, b, c := t.Vertices(points)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// ZRange returns the minimum and maximum elevation of the triangle
func (t Triangle) ZRange(points []Vector3) (float64, float64) {
	a, b, c := t.Vertices(points)

	min := math.Min(a.Z, math.Min(b.Z, c.Z))
	max := math.Max(a.Z, math.Max(b.Z, c.Z))

	return min, max
}

// Unpack converts a flat index triple list into triangles
func Unpack(triples []int) []Triangle {
	triangles := make([]Triangle, 0, len(triples)/3)
	for i := 0; i+2 < len(triples); i += 3 {
		triangles = append(triangles, NewTriangle(triples[i], triples[i+1], triples[i+2]))
	}
	return triangles
}
