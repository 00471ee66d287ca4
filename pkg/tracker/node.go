package tracker

import (
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
)

// NodeTracker is a single draggable point handle bound to one PI or
// alignment endpoint.
type NodeTracker struct {
	Base

	point geometry.Vector3

	// End nodes mark the alignment start/end; they are excluded from
	// multi-select ranges and never free-float away from the model.
	IsEndNode bool

	dragStart geometry.Vector3
	dragging  bool
}

// NewNodeTracker creates a node tracker at a point and attaches it to
// the session scene under parent (nil for root)
func NewNodeTracker(s *EditSession, name string, point geometry.Vector3, parent *scene.Node) *NodeTracker {
	n := &NodeTracker{
		Base:  newBase(name),
		point: point,
	}
	n.selectable = true
	n.draggable = true

	n.node.Marker = true
	n.node.MarkerSize = 9
	n.node.Color = scene.Color{R: 1, G: 0.8, B: 0}
	n.node.Points = []geometry.Vector3{point}

	n.attach(s, n, parent)
	return n
}

// Get returns the node position
func (n *NodeTracker) Get() geometry.Vector3 {
	return n.point
}

// Set moves the node to a position
func (n *NodeTracker) Set(point geometry.Vector3) {
	n.point = point
	n.node.Points = []geometry.Vector3{point}
}

// Move applies a relative offset to the node position
func (n *NodeTracker) Move(delta geometry.Vector3) {
	n.Set(n.point.Add(delta))
}

// IsSelected reports whether the node carries any selection
func (n *NodeTracker) IsSelected(s *EditSession) bool {
	return s.Select.State(n.name) != SelectionNone
}

// ButtonEvent selects the node on a direct pick. Range selection and
// drag-set routing are handled by the owning alignment tracker, which
// runs first; this only covers re-selecting a node while another is
// already active.
func (n *NodeTracker) ButtonEvent(s *EditSession, ev Event) {
	if n.finalized || !n.selectable {
		return
	}
	if ev.State != ButtonDown {
		return
	}

	if ev.Component == n.name {
		if ev.Modifiers&ModCtrl != 0 {
			s.Select.Select(n.name)
		} else if !n.IsSelected(s) {
			s.Select.Clear()
			s.Select.Select(n.name)
		}
	}

	n.Refresh(s)
}

// StartDrag captures the node's anchor position when it participates
// in the gesture
func (n *NodeTracker) StartDrag(s *EditSession) {
	if n.finalized || !n.draggable || !n.IsSelected(s) {
		return
	}

	n.dragging = true
	n.dragStart = n.point
	s.Drag.Anchors = append(s.Drag.Anchors, n.point)
}

// OnDrag moves the node by the current gesture offset
func (n *NodeTracker) OnDrag(s *EditSession) {
	if !n.dragging {
		return
	}

	n.Set(n.dragStart.Add(s.Drag.Offset))
}

// EndDrag leaves the node at its dragged position
func (n *NodeTracker) EndDrag(s *EditSession) {
	n.dragging = false
}
