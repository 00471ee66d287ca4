package tracker

import (
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
)

// WireTracker is a polyline handle, optionally bound to node trackers
// at specific point indices. Bound nodes are referenced by name
// through the session table; the wire never owns them.
type WireTracker struct {
	Base

	points []geometry.Vector3

	// selectionNodes[i] controls points[selectionIndices[i]];
	// an index of -1 addresses the last point.
	selectionNodes   []string
	selectionIndices []int

	// Indices recorded when fewer bound nodes are selected than the
	// wire has points.
	partialIdx []int

	dragStart []geometry.Vector3
	dragging  bool
}

// NewWireTracker creates an empty wire tracker attached to the session
// scene under parent (nil for root)
func NewWireTracker(s *EditSession, name string, parent *scene.Node) *WireTracker {
	w := &WireTracker{Base: newBase(name)}
	w.draggable = true

	w.node.Color = scene.Color{R: 0.8, G: 0.8, B: 0.8}

	w.attach(s, w, parent)
	return w
}

// SetPoints sets the wire geometry and its node bindings. With no
// explicit points the bound node positions define the line. With
// exactly two bound nodes and no explicit indices, the nodes bind to
// the first and last point.
func (w *WireTracker) SetPoints(s *EditSession, points []geometry.Vector3, nodes []string, indices []int) {
	if len(points) == 0 {
		if len(nodes) == 0 {
			return
		}

		for _, name := range nodes {
			if node := s.NodeTracker(name); node != nil {
				points = append(points, node.Get())
			}
		}
		indices = make([]int, len(points))
		for i := range indices {
			indices[i] = i
		}
	}

	w.points = points

	if len(nodes) == 2 && indices == nil {
		indices = []int{0, len(w.points) - 1}
	}

	w.selectionNodes = nodes
	w.selectionIndices = indices

	w.Update(s, nil)
}

// GetPoints returns the wire points with bound entries refreshed from
// the live node tracker positions
func (w *WireTracker) GetPoints(s *EditSession) []geometry.Vector3 {
	for i, idx := range w.selectionIndices {
		if i >= len(w.selectionNodes) {
			break
		}
		if idx == -1 {
			idx = len(w.points) - 1
		}
		if idx < 0 || idx >= len(w.points) {
			continue
		}

		if node := s.NodeTracker(w.selectionNodes[i]); node != nil {
			w.points[idx] = node.Get()
		}
	}

	return w.points
}

// Update pushes the wire coordinates into its scene node
func (w *WireTracker) Update(s *EditSession, points []geometry.Vector3) {
	if points == nil {
		points = w.points
	}
	if len(points) == 0 {
		return
	}

	w.points = points
	w.node.Points = points
	w.node.VertexCounts = []int32{int32(len(points))}

	w.Refresh(s)
}

// ButtonEvent validates the wire's selection classification on every
// press
func (w *WireTracker) ButtonEvent(s *EditSession, ev Event) {
	if w.finalized {
		return
	}
	if ev.State != ButtonDown {
		return
	}

	if w.selectable && ev.Component == w.name && ev.Modifiers&ModCtrl == 0 {
		if s.Select.State(w.name) == SelectionNone {
			s.Select.Select(w.name)
		}
	}

	w.validateSelection(s)
	w.Refresh(s)
}

// validateSelection keeps wire and bound node selection consistent: a
// fully selected wire selects its nodes; fully selected nodes promote
// the wire to FULL when they cover every point, otherwise any selected
// node leaves the wire PARTIAL.
func (w *WireTracker) validateSelection(s *EditSession) {
	if len(w.selectionNodes) == 0 {
		return
	}

	if s.Select.State(w.name) == SelectionFull {
		for _, name := range w.selectionNodes {
			if node := s.NodeTracker(name); node != nil && !node.IsSelected(s) {
				s.Select.Select(name)
				node.Refresh(s)
			}
		}
		return
	}

	selected := 0
	for _, name := range w.selectionNodes {
		if node := s.NodeTracker(name); node != nil && node.IsSelected(s) {
			selected++
		}
	}

	switch {
	case selected == len(w.selectionNodes) && len(w.points) == len(w.selectionNodes):
		s.Select.Select(w.name)
	case selected > 0:
		s.Select.PartialSelect(w.name)
	case s.Select.State(w.name) == SelectionPartial:
		s.Select.Deselect(w.name)
	}
}

// StartDrag joins the gesture when the wire is selected or at least
// one bound node is. With fewer selected nodes than wire points the
// drag is partial and the affected indices are recorded.
func (w *WireTracker) StartDrag(s *EditSession) {
	if w.finalized || !w.draggable {
		return
	}

	var sel []int

	if len(w.selectionNodes) == 0 {
		if s.Select.State(w.name) == SelectionNone {
			return
		}
	} else {
		for i, name := range w.selectionNodes {
			node := s.NodeTracker(name)
			if node == nil || !node.IsSelected(s) {
				continue
			}

			idx := i
			if i < len(w.selectionIndices) {
				idx = w.selectionIndices[i]
			}
			if idx == -1 {
				idx = len(w.points) - 1
			}
			sel = append(sel, idx)
		}

		if len(sel) == 0 {
			return
		}
	}

	if len(w.selectionNodes) > 0 && len(sel) != len(w.points) {
		s.Select.PartialSelect(w.name)
		w.partialIdx = sel
	}

	w.dragging = true
	w.dragStart = append([]geometry.Vector3(nil), w.points...)
}

// OnDrag updates the wire geometry during the gesture: a fully
// selected wire translates rigidly, a partial drag follows its bound
// nodes
func (w *WireTracker) OnDrag(s *EditSession) {
	if !w.dragging {
		return
	}

	if s.Select.State(w.name) == SelectionFull {
		moved := make([]geometry.Vector3, len(w.dragStart))
		for i, p := range w.dragStart {
			moved[i] = p.Add(s.Drag.Offset)
		}
		w.Update(s, moved)
		return
	}

	w.Update(s, w.GetPoints(s))
}

// EndDrag commits the dragged coordinates and clears the partial set
func (w *WireTracker) EndDrag(s *EditSession) {
	if !w.dragging {
		return
	}

	w.dragging = false
	w.partialIdx = nil
	w.Update(s, w.GetPoints(s))
}
