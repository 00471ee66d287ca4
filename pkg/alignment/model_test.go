package alignment

import (
	"math"
	"testing"

	"github.com/trailscad/trails/pkg/geometry"
)

// elbowModel is an alignment with one 90 degree curve PI at (100, 0).
func elbowModel() *Model {
	return &Model{
		Meta: Meta{
			Start: geometry.NewVector3(0, 0, 0),
			End:   geometry.NewVector3(100, 100, 0),
		},
		Geometry: []Segment{
			{Type: SegmentCurve, PI: geometry.NewVector3(100, 0, 0), Radius: 50},
		},
	}
}

func TestModelPICoords(t *testing.T) {
	pis := elbowModel().PICoords()

	if len(pis) != 3 {
		t.Fatalf("PICoords failed: expected 3 PIs, got %d", len(pis))
	}

	if pis[1] != geometry.NewVector3(100, 0, 0) {
		t.Errorf("Interior PI failed: expected (100, 0, 0), got %v", pis[1])
	}
}

func TestModelCurves(t *testing.T) {
	curves := elbowModel().Curves()

	if len(curves) != 1 {
		t.Fatalf("Curves failed: expected 1 curve, got %d", len(curves))
	}

	c := curves[0]

	if math.Abs(c.Delta-math.Pi/2) > 1e-9 {
		t.Errorf("Delta failed: expected pi/2, got %v", c.Delta)
	}

	// Tangent of a 90 degree curve equals the radius.
	if math.Abs(c.Tangent-50) > 1e-9 {
		t.Errorf("Tangent failed: expected 50, got %v", c.Tangent)
	}

	expectedStart := geometry.NewVector3(50, 0, 0)
	expectedEnd := geometry.NewVector3(100, 50, 0)

	if c.Start.Distance(expectedStart) > 1e-9 {
		t.Errorf("Curve start failed: expected %v, got %v", expectedStart, c.Start)
	}
	if c.End.Distance(expectedEnd) > 1e-9 {
		t.Errorf("Curve end failed: expected %v, got %v", expectedEnd, c.End)
	}
}

func TestModelUpdatePI(t *testing.T) {
	m := elbowModel()

	moved := geometry.NewVector3(110, 10, 0)
	if err := m.UpdatePI(1, moved); err != nil {
		t.Fatalf("UpdatePI failed: %v", err)
	}
	if m.Geometry[0].PI != moved {
		t.Errorf("UpdatePI failed: expected %v, got %v", moved, m.Geometry[0].PI)
	}

	start := geometry.NewVector3(-5, 0, 0)
	if err := m.UpdatePI(0, start); err != nil {
		t.Fatalf("UpdatePI of start failed: %v", err)
	}
	if m.Meta.Start != start {
		t.Errorf("UpdatePI of start failed: expected %v, got %v", start, m.Meta.Start)
	}

	if err := m.UpdatePI(7, moved); err == nil {
		t.Error("UpdatePI out of range failed: expected error, got nil")
	}
}

func TestCurveFitsAndClamp(t *testing.T) {
	m := elbowModel()
	c := m.Curves()[0]

	prev, next := m.Meta.Start, m.Meta.End

	if !c.Fits(prev, next, 0, 0) {
		t.Error("Fits failed: tangent 50 must fit on 100 unit legs")
	}

	// A neighbouring curve consuming 80 units leaves only 20 for this one.
	if c.Fits(prev, next, 80, 0) {
		t.Error("Fits failed: expected overlap with left tangent 80")
	}

	if ok := c.ClampRadius(prev, next, 80, 0); ok {
		t.Error("ClampRadius failed: expected clamping to report false")
	}

	if math.Abs(c.Tangent-20) > 1e-9 {
		t.Errorf("ClampRadius failed: expected tangent 20, got %v", c.Tangent)
	}

	if !c.Fits(prev, next, 80, 0) {
		t.Error("ClampRadius failed: clamped curve must fit")
	}
}
