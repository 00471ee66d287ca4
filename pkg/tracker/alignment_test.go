package tracker

import (
	"math"
	"testing"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/geometry"
)

// One 90 degree elbow: a single curve PI between the endpoints.
func elbowModel() *alignment.Model {
	return &alignment.Model{
		Meta: alignment.Meta{
			Start: geometry.Vector3{X: 0, Y: 0, Z: 0},
			End:   geometry.Vector3{X: 100, Y: 100, Z: 0},
		},
		Geometry: []alignment.Segment{
			{Type: alignment.SegmentCurve, PI: geometry.Vector3{X: 100, Y: 0, Z: 0}, Radius: 50},
		},
	}
}

// Two curve PIs sharing the middle tangent run.
func zigzagModel() *alignment.Model {
	return &alignment.Model{
		Meta: alignment.Meta{
			Start: geometry.Vector3{X: 0, Y: 0, Z: 0},
			End:   geometry.Vector3{X: 0, Y: 100, Z: 0},
		},
		Geometry: []alignment.Segment{
			{Type: alignment.SegmentCurve, PI: geometry.Vector3{X: 100, Y: 0, Z: 0}, Radius: 30},
			{Type: alignment.SegmentCurve, PI: geometry.Vector3{X: 100, Y: 100, Z: 0}, Radius: 30},
		},
	}
}

func TestAlignmentBuildsTrackers(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", elbowModel())

	if got := len(a.NodeNames()); got != 3 {
		t.Errorf("node count failed: expected 3, got %d", got)
	}
	if got := len(a.WireNames()); got != 2 {
		t.Errorf("wire count failed: expected 2, got %d", got)
	}
	if got := len(a.CurveNames()); got != 1 {
		t.Errorf("curve count failed: expected 1, got %d", got)
	}

	for _, name := range append(append(a.NodeNames(), a.WireNames()...), a.CurveNames()...) {
		if s.Tracker(name) == nil {
			t.Errorf("registration failed: tracker %s not in session", name)
		}
		if s.Scene.Find(name) == nil {
			t.Errorf("scene failed: node %s not in graph", name)
		}
	}

	start := s.NodeTracker(a.NodeNames()[0])
	pi := s.NodeTracker(a.NodeNames()[1])
	end := s.NodeTracker(a.NodeNames()[2])

	if !start.IsEndNode || !end.IsEndNode {
		t.Error("end node flags failed: expected first and last nodes flagged")
	}
	if pi.IsEndNode {
		t.Error("end node flags failed: expected interior node unflagged")
	}
}

func TestCurveSelectionHidesPINode(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", elbowModel())

	curve := a.CurveNames()[0]
	pi := s.NodeTracker(a.NodeNames()[1])

	s.Dispatch(press(curve, v(100, 20, 0), 0))
	s.Dispatch(release(curve, v(100, 20, 0)))

	if got := s.Select.State(curve); got != SelectionFull {
		t.Errorf("curve pick failed: expected %v, got %v", SelectionFull, got)
	}
	if pi.SceneNode().Visible {
		t.Error("condition gating failed: expected PI node hidden while curve selected")
	}

	s.Dispatch(press("", v(0, 50, 0), 0))
	s.Dispatch(release("", v(0, 50, 0)))

	if !pi.SceneNode().Visible {
		t.Error("condition gating failed: expected PI node visible after deselect")
	}
}

func TestAlignmentDragMovesPI(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", elbowModel())
	model := a.Model()

	piName := a.NodeNames()[1]

	s.Dispatch(press(piName, v(100, 0, 0), 0))
	s.Dispatch(MoveEvent("", v(110, 10, 0), 0))

	if got := s.NodeTracker(piName).Get(); got != v(110, 10, 0) {
		t.Errorf("node drag failed: expected %v, got %v", v(110, 10, 0), got)
	}

	// Bound wires follow the dragged node.
	wire := s.Tracker(a.WireNames()[0]).(*WireTracker)
	points := wire.GetPoints(s)
	if points[len(points)-1] != v(110, 10, 0) {
		t.Errorf("wire follow failed: expected %v, got %v", v(110, 10, 0), points[len(points)-1])
	}

	// The model only updates when the gesture ends.
	if model.Geometry[0].PI != v(100, 0, 0) {
		t.Errorf("model write failed: expected PI unchanged during drag, got %v", model.Geometry[0].PI)
	}

	s.Dispatch(release("", v(110, 10, 0)))

	if model.Geometry[0].PI != v(110, 10, 0) {
		t.Errorf("model write failed: expected %v, got %v", v(110, 10, 0), model.Geometry[0].PI)
	}
}

func TestAlignmentDragClampsRadius(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", elbowModel())
	model := a.Model()

	endName := a.NodeNames()[2]
	ct := s.Tracker(a.CurveNames()[0]).(*CurveTracker)

	// Shorten the outgoing leg below the tangent length.
	s.Dispatch(press(endName, v(100, 100, 0), 0))
	s.Dispatch(MoveEvent("", v(100, 40, 0), 0))

	if !ct.Clamped {
		t.Error("clamp failed: expected curve clamped during drag")
	}
	if got := ct.Curve().Radius; math.Abs(got-40) > 1e-9 {
		t.Errorf("clamp failed: expected radius 40, got %v", got)
	}

	s.Dispatch(release("", v(100, 40, 0)))

	if got := model.Geometry[0].Radius; math.Abs(got-40) > 1e-9 {
		t.Errorf("model radius failed: expected 40, got %v", got)
	}
	if model.Meta.End != v(100, 40, 0) {
		t.Errorf("model end failed: expected %v, got %v", v(100, 40, 0), model.Meta.End)
	}
}

func TestSharedTangentValidatesLeftFirst(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", zigzagModel())

	pi2 := a.NodeNames()[2]
	c0 := s.Tracker(a.CurveNames()[0]).(*CurveTracker)
	c1 := s.Tracker(a.CurveNames()[1]).(*CurveTracker)

	// Shrink the shared tangent run to 40; the two 30 unit tangent
	// legs no longer fit together.
	s.Dispatch(press(pi2, v(100, 100, 0), 0))
	s.Dispatch(MoveEvent("", v(100, 40, 0), 0))

	// The left curve yields: it sees the right curve's original
	// tangent and clamps to the 10 units that remain.
	if !c0.Clamped {
		t.Error("shared tangent failed: expected left curve clamped")
	}
	if got := c0.Curve().Tangent; math.Abs(got-10) > 1e-9 {
		t.Errorf("shared tangent failed: expected left tangent 10, got %v", got)
	}
	if c1.Clamped {
		t.Error("shared tangent failed: expected right curve to fit")
	}

	run := c0.Curve().PI.DistanceXY(c1.Curve().PI)
	if c0.Curve().Tangent+c1.Curve().Tangent > run+1e-9 {
		t.Errorf("shared tangent failed: legs %v + %v exceed run %v",
			c0.Curve().Tangent, c1.Curve().Tangent, run)
	}
}

func TestCtrlRangeSelectsDownstream(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", zigzagModel())

	nodes := a.NodeNames()

	s.Dispatch(press(nodes[1], v(100, 0, 0), ModCtrl))
	s.Dispatch(release(nodes[1], v(100, 0, 0)))

	if got := s.Select.State(nodes[1]); got != SelectionFull {
		t.Errorf("range select failed: expected picked node %v, got %v", SelectionFull, got)
	}
	if got := s.Select.State(nodes[2]); got != SelectionFull {
		t.Errorf("range select failed: expected downstream node %v, got %v", SelectionFull, got)
	}
	if got := s.Select.State(nodes[0]); got != SelectionNone {
		t.Errorf("range select failed: expected upstream node %v, got %v", SelectionNone, got)
	}
	if got := s.Select.State(nodes[3]); got != SelectionNone {
		t.Errorf("range select failed: expected end node %v, got %v", SelectionNone, got)
	}
}

func TestCtrlRangeDragNarrowsCurveWindow(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", zigzagModel())

	nodes := a.NodeNames()
	c1 := s.Tracker(a.CurveNames()[1]).(*CurveTracker)

	// Ctrl picks node 1 and everything downstream, then drags the
	// whole range. The validation window under ctrl stops short of
	// the curve at the last dragged PI.
	s.Dispatch(press(nodes[1], v(100, 0, 0), ModCtrl))
	s.Dispatch(MoveEvent("", v(100, 10, 0), 0))

	if got := s.NodeTracker(nodes[2]).Get(); got != v(100, 110, 0) {
		t.Errorf("range drag failed: expected %v, got %v", v(100, 110, 0), got)
	}
	if c1.Curve().PI != v(100, 100, 0) {
		t.Errorf("curve window failed: expected trailing curve untouched, got PI %v", c1.Curve().PI)
	}

	s.Dispatch(release("", v(100, 10, 0)))

	if a.Model().Geometry[1].PI != v(100, 110, 0) {
		t.Errorf("model write failed: expected %v, got %v", v(100, 110, 0), a.Model().Geometry[1].PI)
	}
}

func TestAlignmentFinalizeTearsDownChildren(t *testing.T) {
	s := NewSession()
	a := NewAlignmentTracker(s, "align", elbowModel())

	names := append(append(a.NodeNames(), a.WireNames()...), a.CurveNames()...)

	if err := a.Finalize(s); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	for _, name := range names {
		if s.Tracker(name) != nil {
			t.Errorf("finalize failed: tracker %s still registered", name)
		}
		if s.Scene.Find(name) != nil {
			t.Errorf("finalize failed: scene node %s still in graph", name)
		}
	}

	if err := a.Finalize(s); err == nil {
		t.Error("double finalize failed: expected error")
	}
}
