package geometry

// FilterTriangles removes triangles with an edge longer than maxEdge or
// an interior angle greater than maxAngleDeg from a flat index triple
// list. Long sliver triangles along the convex hull are topologically
// valid Delaunay output but not representative of the surface; this is
// the quality gate between the raw triangulation and the mesh.
//
// The result is always a subset of the input triples, in input order.
func FilterTriangles(points []Vector3, triples []int, maxEdge, maxAngleDeg float64) []int {
	var result []int

	for _, tri := range Unpack(triples) {
		if tri.A >= len(points) || tri.B >= len(points) || tri.C >= len(points) {
			continue
		}

		keep := true

		for _, length := range tri.EdgeLengths(points) {
			if length > maxEdge {
				keep = false
				break
			}
		}

		if keep {
			for _, angle := range tri.Angles(points) {
				if angle > maxAngleDeg {
					keep = false
					break
				}
			}
		}

		if keep {
			result = append(result, tri.A, tri.B, tri.C)
		}
	}

	return result
}
