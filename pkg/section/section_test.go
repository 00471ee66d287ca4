package section

import (
	"math"
	"testing"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/surface"
)

// Plane tilted along Y: z = y / 10.
func planeSurface(t *testing.T) *surface.Surface {
	t.Helper()

	surf, err := surface.New([]geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 100, Y: 0, Z: 0},
		{X: 0, Y: 100, Z: 10},
		{X: 100, Y: 100, Z: 10},
	})
	if err != nil {
		t.Fatalf("surface failed: %v", err)
	}
	return surf
}

func straightModel() *alignment.Model {
	return &alignment.Model{
		Meta: alignment.Meta{
			Start: geometry.Vector3{X: 10, Y: 50, Z: 0},
			End:   geometry.Vector3{X: 90, Y: 50, Z: 0},
		},
	}
}

func TestPathStraight(t *testing.T) {
	path := Path(straightModel(), 16)

	if len(path) != 2 {
		t.Fatalf("path failed: expected 2 points, got %d", len(path))
	}
	if got := Length(path); math.Abs(got-80) > 1e-9 {
		t.Errorf("length failed: expected 80, got %v", got)
	}
}

func TestPathWithCurve(t *testing.T) {
	m := &alignment.Model{
		Meta: alignment.Meta{
			Start: geometry.Vector3{X: 0, Y: 0, Z: 0},
			End:   geometry.Vector3{X: 100, Y: 100, Z: 0},
		},
		Geometry: []alignment.Segment{
			{Type: alignment.SegmentCurve, PI: geometry.Vector3{X: 100, Y: 0, Z: 0}, Radius: 50},
		},
	}

	path := Path(m, 16)

	if path[0] != m.Meta.Start {
		t.Errorf("path start failed: got %v", path[0])
	}
	if path[len(path)-1] != m.Meta.End {
		t.Errorf("path end failed: got %v", path[len(path)-1])
	}

	// Two 50 unit tangent runs plus a quarter arc of radius 50,
	// sampled chordally.
	got := Length(path)
	want := 100 + 50*math.Pi/2
	if got > want || got < want-1 {
		t.Errorf("length failed: expected about %v, got %v", want, got)
	}
}

func TestExtractSections(t *testing.T) {
	surf := planeSurface(t)

	sections, err := Extract(surf, straightModel(), 40, 20, 10)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(sections) != 3 {
		t.Fatalf("station count failed: expected 3, got %d", len(sections))
	}

	mid := sections[1]
	if math.Abs(mid.Station-40) > 1e-9 {
		t.Errorf("station failed: expected 40, got %v", mid.Station)
	}
	if mid.Origin.DistanceXY(geometry.Vector3{X: 50, Y: 50}) > 1e-9 {
		t.Errorf("origin failed: got %v", mid.Origin)
	}

	if len(mid.Points) != 3 {
		t.Fatalf("sample count failed: expected 3, got %d", len(mid.Points))
	}

	// Offsets run left across the tilted plane, so elevation climbs
	// with the offset: z = y / 10 at y = 40, 50, 60.
	wantElev := []float64{4, 5, 6}
	for i, p := range mid.Points {
		if math.Abs(p.Elevation-wantElev[i]) > 1e-9 {
			t.Errorf("elevation failed at offset %v: expected %v, got %v",
				p.Offset, wantElev[i], p.Elevation)
		}
	}
}

func TestExtractSkipsOutsideSamples(t *testing.T) {
	surf := planeSurface(t)

	// Centreline along the bottom edge; half of each section falls
	// off the surface.
	m := &alignment.Model{
		Meta: alignment.Meta{
			Start: geometry.Vector3{X: 10, Y: 0, Z: 0},
			End:   geometry.Vector3{X: 90, Y: 0, Z: 0},
		},
	}

	sections, err := Extract(surf, m, 40, 20, 10)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	for _, sec := range sections {
		for _, p := range sec.Points {
			if p.Offset < -1e-9 {
				t.Errorf("outside sample failed: offset %v should be off the surface", p.Offset)
			}
		}
	}
}

func TestExtractInvalidParameters(t *testing.T) {
	surf := planeSurface(t)

	if _, err := Extract(surf, straightModel(), 0, 20, 10); err == nil {
		t.Error("extract failed: expected error for zero interval")
	}
	if _, err := Extract(surf, straightModel(), 40, -1, 10); err == nil {
		t.Error("extract failed: expected error for negative width")
	}
}
