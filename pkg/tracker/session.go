package tracker

import (
	"fmt"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
)

// Selection classifies how much of a tracker is selected
type Selection int

const (
	SelectionNone Selection = iota
	SelectionPartial
	SelectionFull
)

func (s Selection) String() string {
	switch s {
	case SelectionPartial:
		return "PARTIAL"
	case SelectionFull:
		return "FULL"
	default:
		return "NONE"
	}
}

// ButtonInfo tracks one pointer button across events
type ButtonInfo struct {
	Pressed  bool
	Dragging bool
}

// MouseState is the pointer state shared by every tracker in a session
type MouseState struct {
	Component   string
	Coordinates geometry.Vector3
	Button1     ButtonInfo
	CtrlDown    bool
	ShiftDown   bool
	AltDown     bool
}

// SelectState classifies tracker selection. All mutations are
// idempotent.
type SelectState struct {
	states map[string]Selection
}

// State returns the selection classification for a tracker name
func (s *SelectState) State(name string) Selection {
	return s.states[name]
}

// Select marks a tracker fully selected
func (s *SelectState) Select(name string) {
	s.states[name] = SelectionFull
}

// PartialSelect marks a tracker partially selected
func (s *SelectState) PartialSelect(name string) {
	s.states[name] = SelectionPartial
}

// Deselect removes a tracker from the selection
func (s *SelectState) Deselect(name string) {
	delete(s.states, name)
}

// Clear empties the selection
func (s *SelectState) Clear() {
	s.states = make(map[string]Selection)
}

// DragState is the active drag gesture: where it started, the current
// offset transform, and the anchor points captured at gesture start.
type DragState struct {
	Active  bool
	Start   geometry.Vector3
	Offset  geometry.Vector3
	Anchors []geometry.Vector3
}

// Clear resets the drag state at gesture end
func (d *DragState) Clear() {
	*d = DragState{}
}

// EditSession is the shared state of one interactive editing session:
// mouse, selection and drag state, the scene graph trackers attach to,
// and the name-to-tracker table events route through. One session
// exists per edit task; every tracker operation receives it
// explicitly. All mutation happens synchronously inside Dispatch, so
// the session needs no locking.
type EditSession struct {
	Mouse  MouseState
	Select SelectState
	Drag   DragState
	Scene  *scene.Graph

	trackers map[string]Tracker
	order    []string
	finished bool
}

// NewSession creates an edit session with an empty scene graph
func NewSession() *EditSession {
	return &EditSession{
		Select:   SelectState{states: make(map[string]Selection)},
		Scene:    scene.NewGraph(),
		trackers: make(map[string]Tracker),
	}
}

// Register adds a tracker to the dispatch table. Dispatch order is
// registration order.
func (s *EditSession) Register(t Tracker) {
	name := t.Name()
	if _, exists := s.trackers[name]; !exists {
		s.order = append(s.order, name)
	}
	s.trackers[name] = t
}

// Unregister removes a tracker from the dispatch table
func (s *EditSession) Unregister(name string) {
	if _, exists := s.trackers[name]; !exists {
		return
	}

	delete(s.trackers, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Tracker returns the registered tracker with the given name, or nil
func (s *EditSession) Tracker(name string) Tracker {
	return s.trackers[name]
}

// NodeTracker resolves a registered node tracker by name. The relation
// table replaces direct references between sibling trackers.
func (s *EditSession) NodeTracker(name string) *NodeTracker {
	node, _ := s.trackers[name].(*NodeTracker)
	return node
}

// Dispatch routes one input event through the session. Returns true
// when the event was consumed by the tracker layer. Events that pick
// a component no tracker knows are logged and dropped.
func (s *EditSession) Dispatch(ev Event) bool {
	if s.finished {
		return false
	}

	switch ev.Type {
	case EventButton:
		return s.dispatchButton(ev)
	case EventMove:
		return s.dispatchMove(ev)
	case EventKey:
		// Key handling belongs to the embedding application.
		return false
	}

	return false
}

func (s *EditSession) dispatchButton(ev Event) bool {
	s.updateMouse(ev)

	if ev.Button != Button1 {
		return false
	}

	handled := ev.Component == ""

	if ev.Component != "" && s.Scene.Find(ev.Component) == nil && s.trackers[ev.Component] == nil {
		err := &EventRoutingError{Component: ev.Component}
		fmt.Printf("tracker: dropped event: %v\n", err)
		return false
	}

	if ev.State == ButtonDown {
		s.Mouse.Button1.Pressed = true
		s.Drag.Start = ev.Coordinates

		// Plain click on empty space clears the selection.
		if ev.Component == "" && ev.Modifiers&ModCtrl == 0 {
			s.Select.Clear()
		}

		for _, name := range s.dispatchOrder() {
			s.trackers[name].ButtonEvent(s, ev)
		}
		handled = true
	} else {
		if s.Mouse.Button1.Dragging {
			for _, name := range s.dispatchOrder() {
				s.trackers[name].EndDrag(s)
			}
			s.Drag.Clear()
		}

		s.Mouse.Button1.Pressed = false
		s.Mouse.Button1.Dragging = false
		handled = true
	}

	return handled
}

func (s *EditSession) dispatchMove(ev Event) bool {
	s.updateMouse(ev)

	if !s.Mouse.Button1.Pressed {
		return false
	}

	if !s.Mouse.Button1.Dragging {
		s.Mouse.Button1.Dragging = true
		s.Drag.Active = true

		for _, name := range s.dispatchOrder() {
			s.trackers[name].StartDrag(s)
		}
	}

	s.Drag.Offset = ev.Coordinates.Sub(s.Drag.Start)

	for _, name := range s.dispatchOrder() {
		s.trackers[name].OnDrag(s)
	}

	return true
}

func (s *EditSession) updateMouse(ev Event) {
	s.Mouse.Component = ev.Component
	s.Mouse.Coordinates = ev.Coordinates
	s.Mouse.CtrlDown = ev.Modifiers&ModCtrl != 0
	s.Mouse.ShiftDown = ev.Modifiers&ModShift != 0
	s.Mouse.AltDown = ev.Modifiers&ModAlt != 0
}

// dispatchOrder returns a copy of the registration order; trackers may
// unregister themselves while an event is in flight
func (s *EditSession) dispatchOrder() []string {
	order := make([]string, len(s.order))
	copy(order, s.order)
	return order
}

// Finished reports whether the session has been torn down
func (s *EditSession) Finished() bool {
	return s.finished
}

// Finish tears down the session: every registered tracker is
// finalized and the dispatch table emptied. Safe to call more than
// once; only the first call does work. A finished session ignores all
// further events.
func (s *EditSession) Finish() error {
	if s.finished {
		return nil
	}
	s.finished = true

	var firstErr error

	for _, name := range s.dispatchOrder() {
		t := s.trackers[name]
		if t == nil || t.Finalized() {
			continue
		}
		if err := t.Finalize(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.trackers = make(map[string]Tracker)
	s.order = nil
	s.Select.Clear()
	s.Drag.Clear()

	return firstErr
}
