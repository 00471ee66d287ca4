package geometry

import "testing"

// Three near points plus one far outlier: the outlier's triangles all
// carry an edge longer than the threshold.
func filterMesh() ([]Vector3, []int) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(10, 0, 0),
		NewVector3(0, 10, 0),
		NewVector3(100, 100, 0),
	}
	return points, Triangulate(points)
}

func TestFilterTrianglesRemovesLongEdges(t *testing.T) {
	points, triples := filterMesh()

	filtered := FilterTriangles(points, triples, 20, 180)

	if len(filtered) != 3 {
		t.Fatalf("FilterTriangles failed: expected 1 triangle (3 indices), got %d indices", len(filtered))
	}

	for _, idx := range filtered {
		if idx == 3 {
			t.Errorf("FilterTriangles failed: outlier vertex survived the edge filter")
		}
	}
}

func TestFilterTrianglesIdempotent(t *testing.T) {
	points, triples := filterMesh()

	once := FilterTriangles(points, triples, 20, 180)
	twice := FilterTriangles(points, once, 20, 180)

	if len(twice) != len(once) {
		t.Fatalf("Idempotency failed: expected %d indices, got %d", len(once), len(twice))
	}
	for i := range once {
		if twice[i] != once[i] {
			t.Errorf("Idempotency failed at index %d: expected %d, got %d", i, once[i], twice[i])
		}
	}
}
