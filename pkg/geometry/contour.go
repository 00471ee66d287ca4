package geometry

import "math"

// ExtractContours intersects the triangles with horizontal planes at
// every multiple of interval within the mesh elevation range. Each
// triangle crossed by a plane contributes one 2-point segment,
// interpolated along the two crossing edges.
//
// The return values mirror a line-set scene node: a flat coordinate
// list plus a parallel list of how many consecutive points form one
// polyline. Segments are grouped by elevation so lines at different
// levels are never joined.
func ExtractContours(points []Vector3, triples []int, interval float64) ([]Vector3, []int32) {
	if interval <= 0 || len(points) == 0 || len(triples) < 3 {
		return nil, nil
	}

	triangles := Unpack(triples)

	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, tri := range triangles {
		lo, hi := tri.ZRange(points)
		minZ = math.Min(minZ, lo)
		maxZ = math.Max(maxZ, hi)
	}

	if maxZ <= minZ {
		return nil, nil
	}

	var contourPoints []Vector3
	var vertexCounts []int32

	first := math.Ceil(minZ/interval) * interval

	for level := first; level <= maxZ; level += interval {
		for _, tri := range triangles {
			lo, hi := tri.ZRange(points)
			if level <= lo || level >= hi {
				continue
			}

			segment := crossTriangle(points, tri, level)
			if len(segment) != 2 {
				continue
			}

			contourPoints = append(contourPoints, segment...)
			vertexCounts = append(vertexCounts, 2)
		}
	}

	return contourPoints, vertexCounts
}

// crossTriangle interpolates the intersection of a triangle with the
// plane z = level along the crossing edges
func crossTriangle(points []Vector3, tri Triangle, level float64) []Vector3 {
	corners := [3]Vector3{points[tri.A], points[tri.B], points[tri.C]}

	var segment []Vector3

	for i := 0; i < 3; i++ {
		p1 := corners[i]
		p2 := corners[(i+1)%3]

		if (p1.Z-level)*(p2.Z-level) >= 0 {
			continue
		}

		t := (level - p1.Z) / (p2.Z - p1.Z)
		segment = append(segment, p1.Lerp(p2, t))
	}

	return segment
}
