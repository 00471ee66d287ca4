package tracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trailscad/trails/pkg/geometry"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.Vector3{X: x, Y: y, Z: z}
}

func press(component string, coords geometry.Vector3, mods Modifier) Event {
	return ButtonEvent(Button1, ButtonDown, component, coords, mods)
}

func release(component string, coords geometry.Vector3) Event {
	return ButtonEvent(Button1, ButtonUp, component, coords, 0)
}

func TestSelectStateIdempotent(t *testing.T) {
	s := NewSession()

	s.Select.Select("a")
	s.Select.Select("a")
	if got := s.Select.State("a"); got != SelectionFull {
		t.Errorf("repeated select failed: expected %v, got %v", SelectionFull, got)
	}

	s.Select.PartialSelect("a")
	if got := s.Select.State("a"); got != SelectionPartial {
		t.Errorf("partial select failed: expected %v, got %v", SelectionPartial, got)
	}

	s.Select.Deselect("a")
	s.Select.Deselect("a")
	if got := s.Select.State("a"); got != SelectionNone {
		t.Errorf("repeated deselect failed: expected %v, got %v", SelectionNone, got)
	}
}

func TestDispatchUnknownComponent(t *testing.T) {
	s := NewSession()
	NewNodeTracker(s, "n", v(0, 0, 0), nil)
	s.Select.Select("n")

	if handled := s.Dispatch(press("ghost", v(1, 1, 0), 0)); handled {
		t.Error("unknown component failed: expected event to be dropped")
	}

	if got := s.Select.State("n"); got != SelectionFull {
		t.Errorf("unknown component failed: expected selection kept, got %v", got)
	}
}

func TestEmptyClickClearsSelection(t *testing.T) {
	s := NewSession()
	NewNodeTracker(s, "n", v(0, 0, 0), nil)
	s.Select.Select("n")

	s.Dispatch(press("", v(50, 50, 0), ModCtrl))
	s.Dispatch(release("", v(50, 50, 0)))
	if got := s.Select.State("n"); got != SelectionFull {
		t.Errorf("ctrl empty click failed: expected selection kept, got %v", got)
	}

	s.Dispatch(press("", v(50, 50, 0), 0))
	if got := s.Select.State("n"); got != SelectionNone {
		t.Errorf("empty click failed: expected selection cleared, got %v", got)
	}
}

func TestNodeCtrlSelectAdds(t *testing.T) {
	s := NewSession()
	NewNodeTracker(s, "a", v(0, 0, 0), nil)
	NewNodeTracker(s, "b", v(10, 0, 0), nil)

	s.Dispatch(press("a", v(0, 0, 0), 0))
	s.Dispatch(release("a", v(0, 0, 0)))
	s.Dispatch(press("b", v(10, 0, 0), ModCtrl))
	s.Dispatch(release("b", v(10, 0, 0)))

	if got := s.Select.State("a"); got != SelectionFull {
		t.Errorf("ctrl select failed: expected a kept, got %v", got)
	}
	if got := s.Select.State("b"); got != SelectionFull {
		t.Errorf("ctrl select failed: expected b added, got %v", got)
	}
}

func TestDragProtocol(t *testing.T) {
	s := NewSession()
	n := NewNodeTracker(s, "n", v(0, 0, 0), nil)

	s.Dispatch(press("n", v(0, 0, 0), 0))

	if s.Mouse.Button1.Dragging {
		t.Error("drag protocol failed: expected no drag before first move")
	}

	s.Dispatch(MoveEvent("", v(5, 5, 0), 0))
	if !s.Drag.Active {
		t.Error("drag protocol failed: expected drag active after move")
	}
	if got := n.Get(); got != v(5, 5, 0) {
		t.Errorf("drag move failed: expected %v, got %v", v(5, 5, 0), got)
	}

	s.Dispatch(MoveEvent("", v(7, 3, 0), 0))
	if got := n.Get(); got != v(7, 3, 0) {
		t.Errorf("drag move failed: expected %v, got %v", v(7, 3, 0), got)
	}

	s.Dispatch(release("", v(7, 3, 0)))
	if s.Drag.Active || s.Mouse.Button1.Pressed {
		t.Error("drag protocol failed: expected drag state cleared on release")
	}
	if got := n.Get(); got != v(7, 3, 0) {
		t.Errorf("drag commit failed: expected %v, got %v", v(7, 3, 0), got)
	}
}

func TestWireSelectionPropagation(t *testing.T) {
	s := NewSession()
	NewNodeTracker(s, "a", v(0, 0, 0), nil)
	NewNodeTracker(s, "b", v(10, 0, 0), nil)

	w := NewWireTracker(s, "w", nil)
	w.SetPoints(s, nil, []string{"a", "b"}, nil)

	want := []geometry.Vector3{v(0, 0, 0), v(10, 0, 0)}
	if diff := cmp.Diff(want, w.GetPoints(s)); diff != "" {
		t.Errorf("wire points failed: (-want +got):\n%s", diff)
	}

	// A fully selected wire pulls its bound nodes into the selection.
	s.Select.Select("w")
	s.Dispatch(press("w", v(5, 0, 0), 0))
	s.Dispatch(release("w", v(5, 0, 0)))

	if got := s.Select.State("a"); got != SelectionFull {
		t.Errorf("wire propagation failed: expected a %v, got %v", SelectionFull, got)
	}
	if got := s.Select.State("b"); got != SelectionFull {
		t.Errorf("wire propagation failed: expected b %v, got %v", SelectionFull, got)
	}

	// One selected node leaves the wire partially selected.
	s.Select.Clear()
	s.Dispatch(press("a", v(0, 0, 0), 0))
	s.Dispatch(release("a", v(0, 0, 0)))

	if got := s.Select.State("w"); got != SelectionPartial {
		t.Errorf("wire classification failed: expected %v, got %v", SelectionPartial, got)
	}

	// Both nodes selected promotes the wire to full.
	s.Dispatch(press("b", v(10, 0, 0), ModCtrl))
	s.Dispatch(release("b", v(10, 0, 0)))

	if got := s.Select.State("w"); got != SelectionFull {
		t.Errorf("wire classification failed: expected %v, got %v", SelectionFull, got)
	}
}

func TestWireFullDragTranslates(t *testing.T) {
	s := NewSession()

	w := NewWireTracker(s, "w", nil)
	w.SetPoints(s, []geometry.Vector3{v(0, 0, 0), v(10, 0, 0), v(20, 0, 0)}, nil, nil)
	s.Select.Select("w")

	s.Dispatch(press("w", v(10, 0, 0), 0))
	s.Dispatch(MoveEvent("", v(13, 4, 0), 0))
	s.Dispatch(release("", v(13, 4, 0)))

	want := []geometry.Vector3{v(3, 4, 0), v(13, 4, 0), v(23, 4, 0)}
	if diff := cmp.Diff(want, w.GetPoints(s)); diff != "" {
		t.Errorf("wire translate failed: (-want +got):\n%s", diff)
	}
}

func TestFinalizeOnce(t *testing.T) {
	s := NewSession()
	n := NewNodeTracker(s, "n", v(0, 0, 0), nil)
	s.Select.Select("n")

	if err := n.Finalize(s); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !n.Finalized() {
		t.Error("finalize failed: expected tracker finalized")
	}
	if got := s.Select.State("n"); got != SelectionNone {
		t.Errorf("finalize failed: expected selection removed, got %v", got)
	}
	if s.Scene.Find("n") != nil {
		t.Error("finalize failed: expected scene node removed")
	}

	err := n.Finalize(s)
	if err == nil {
		t.Fatal("double finalize failed: expected error")
	}
	if _, ok := err.(*StateConsistencyError); !ok {
		t.Errorf("double finalize failed: expected StateConsistencyError, got %T", err)
	}
}

func TestSessionFinish(t *testing.T) {
	s := NewSession()
	a := NewNodeTracker(s, "a", v(0, 0, 0), nil)
	b := NewNodeTracker(s, "b", v(10, 0, 0), nil)

	if err := s.Finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if !a.Finalized() || !b.Finalized() {
		t.Error("finish failed: expected all trackers finalized")
	}

	if err := s.Finish(); err != nil {
		t.Errorf("repeated finish failed: %v", err)
	}

	if handled := s.Dispatch(press("", v(0, 0, 0), 0)); handled {
		t.Error("finish failed: expected events ignored after finish")
	}
}
