package geometry

import (
	"math"
	"testing"
)

func contourMesh() ([]Vector3, []int) {
	// Single triangle rising from z=0 to z=10.
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(10, 0, 0),
		NewVector3(0, 10, 10),
	}
	return points, []int{0, 1, 2}
}

func TestExtractContoursSegments(t *testing.T) {
	points, triples := contourMesh()

	contourPoints, counts := ExtractContours(points, triples, 2.5)

	// Levels 2.5, 5.0, 7.5 cross the triangle (0 and 10 sit on vertices).
	if len(counts) != 3 {
		t.Fatalf("ExtractContours failed: expected 3 segments, got %d", len(counts))
	}

	if len(contourPoints)%2 != 0 {
		t.Errorf("Contour point count must be even, got %d", len(contourPoints))
	}

	for i, count := range counts {
		if count != 2 {
			t.Errorf("Segment %d vertex count failed: expected 2, got %d", i, count)
		}
	}

	// Every emitted point lies exactly on a contour level.
	for _, p := range contourPoints {
		level := math.Round(p.Z/2.5) * 2.5
		if math.Abs(p.Z-level) > 1e-9 {
			t.Errorf("Contour point elevation %v is not on a 2.5 interval", p.Z)
		}
	}
}

func TestExtractContoursInterpolation(t *testing.T) {
	points, triples := contourMesh()

	contourPoints, counts := ExtractContours(points, triples, 5)

	if len(counts) != 1 {
		t.Fatalf("ExtractContours failed: expected 1 segment, got %d", len(counts))
	}

	// The z=5 contour crosses edges (0,2) and (1,2) at their midpoints.
	a, b := contourPoints[0], contourPoints[1]
	expectedA := NewVector3(0, 5, 5)
	expectedB := NewVector3(5, 5, 5)

	if a.Distance(expectedB) < a.Distance(expectedA) {
		a, b = b, a
	}

	if a.Distance(expectedA) > 1e-9 {
		t.Errorf("Contour endpoint failed: expected %v, got %v", expectedA, a)
	}
	if b.Distance(expectedB) > 1e-9 {
		t.Errorf("Contour endpoint failed: expected %v, got %v", expectedB, b)
	}
}

func TestExtractContoursDegenerate(t *testing.T) {
	points, triples := contourMesh()

	if pts, counts := ExtractContours(points, triples, 0); pts != nil || counts != nil {
		t.Errorf("Zero interval failed: expected empty contours, got %d points", len(pts))
	}

	flat := []Vector3{
		NewVector3(0, 0, 3),
		NewVector3(10, 0, 3),
		NewVector3(0, 10, 3),
	}
	if pts, _ := ExtractContours(flat, []int{0, 1, 2}, 1); len(pts) != 0 {
		t.Errorf("Flat mesh failed: expected empty contours, got %d points", len(pts))
	}

	if pts, _ := ExtractContours(nil, nil, 1); len(pts) != 0 {
		t.Errorf("Empty mesh failed: expected empty contours, got %d points", len(pts))
	}
}
