package pointfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trailscad/trails/pkg/geometry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file failed: %v", err)
	}
	return path
}

func TestParseXYZ(t *testing.T) {
	path := writeFile(t, "survey.xyz", `# ground shots
0 0 100.5
10.5 0 101.0

10.5 20 102.25
`)

	f, err := Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := []geometry.Vector3{
		{X: 0, Y: 0, Z: 100.5},
		{X: 10.5, Y: 0, Z: 101.0},
		{X: 10.5, Y: 20, Z: 102.25},
	}
	if diff := cmp.Diff(want, f.Points); diff != "" {
		t.Errorf("parse failed: (-want +got):\n%s", diff)
	}
	if f.Name != "survey" {
		t.Errorf("name failed: expected survey, got %s", f.Name)
	}
}

func TestParseXYZWithIDs(t *testing.T) {
	path := writeFile(t, "shots.txt", `1 0 0 100
2 50 0 101
`)

	f, err := Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := f.PointCount(); got != 2 {
		t.Fatalf("point count failed: expected 2, got %d", got)
	}
	if f.Points[1] != (geometry.Vector3{X: 50, Y: 0, Z: 101}) {
		t.Errorf("id column failed: got %v", f.Points[1])
	}
}

func TestParsePNEZD(t *testing.T) {
	path := writeFile(t, "shots.csv", `P,N,E,Z,D
1,2000.0,1000.0,100.5,EP
2,2010.0,1005.0,101.0,CL
`)

	f, err := Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := []geometry.Vector3{
		{X: 1000.0, Y: 2000.0, Z: 100.5},
		{X: 1005.0, Y: 2010.0, Z: 101.0},
	}
	if diff := cmp.Diff(want, f.Points); diff != "" {
		t.Errorf("pnezd parse failed: (-want +got):\n%s", diff)
	}
}

func TestParseCSVCoordinates(t *testing.T) {
	path := writeFile(t, "points.csv", `0,0,100
10,0,101
`)

	f, err := Parse(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := f.PointCount(); got != 2 {
		t.Errorf("point count failed: expected 2, got %d", got)
	}
}

func TestParseInvalid(t *testing.T) {
	path := writeFile(t, "bad.xyz", `0 0 100
10 abc 101
`)

	if _, err := Parse(path); err == nil {
		t.Error("parse failed: expected error for invalid coordinate")
	}
}

func TestBounds(t *testing.T) {
	f := NewFile("test")
	f.AddPoint(geometry.Vector3{X: -5, Y: 2, Z: 100})
	f.AddPoint(geometry.Vector3{X: 10, Y: -3, Z: 105})

	min, max := f.Bounds()

	if min != (geometry.Vector3{X: -5, Y: -3, Z: 100}) {
		t.Errorf("bounds min failed: got %v", min)
	}
	if max != (geometry.Vector3{X: 10, Y: 2, Z: 105}) {
		t.Errorf("bounds max failed: got %v", max)
	}
}
