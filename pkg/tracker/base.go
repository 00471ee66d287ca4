package tracker

import "github.com/trailscad/trails/pkg/scene"

// Tracker is the closed event surface shared by every interactive
// handle. Concrete trackers embed Base and override the callbacks
// they care about.
type Tracker interface {
	Name() string
	ButtonEvent(s *EditSession, ev Event)
	StartDrag(s *EditSession)
	OnDrag(s *EditSession)
	EndDrag(s *EditSession)
	Finalize(s *EditSession) error
	Finalized() bool
}

// Selectable is the capability of carrying a selection state
type Selectable interface {
	Name() string
	IsSelectable() bool
}

// Draggable is the capability of participating in drag gestures
type Draggable interface {
	IsDraggable() bool
}

// Visible is the capability of being toggled in the scene
type Visible interface {
	On()
	Off()
	IsVisible() bool
}

// Base carries the lifecycle every tracker shares: a stable name, an
// owned scene node, selectable/draggable flags, visibility gating
// conditions, and the finalize handshake. Callers must pair every
// Attach with a Finalize; a skipped Finalize leaks the scene
// attachment and the dispatch registration.
type Base struct {
	name       string
	node       *scene.Node
	selectable bool
	draggable  bool
	visible    bool

	// Names of trackers whose selection suppresses this tracker's
	// visuals, used for PI/curve overlap suppression.
	Conditions []string

	finalized bool
}

func newBase(name string) Base {
	return Base{
		name:    name,
		visible: true,
		node:    &scene.Node{ID: name, Visible: true},
	}
}

// Name returns the tracker's stable identifier
func (b *Base) Name() string { return b.name }

// SceneNode returns the tracker's owned visual node
func (b *Base) SceneNode() *scene.Node { return b.node }

// IsSelectable reports whether picks can select this tracker
func (b *Base) IsSelectable() bool { return b.selectable }

// SetSelectability toggles pick selection
func (b *Base) SetSelectability(selectable bool) { b.selectable = selectable }

// IsDraggable reports whether the tracker joins drag gestures
func (b *Base) IsDraggable() bool { return b.draggable }

// SetDraggable toggles drag participation
func (b *Base) SetDraggable(draggable bool) { b.draggable = draggable }

// On makes the tracker's visuals visible
func (b *Base) On() {
	b.visible = true
	b.node.Visible = true
}

// Off hides the tracker's visuals
func (b *Base) Off() {
	b.visible = false
	b.node.Visible = false
}

// IsVisible reports the visibility toggle
func (b *Base) IsVisible() bool { return b.visible }

// Finalized reports whether Finalize has run
func (b *Base) Finalized() bool { return b.finalized }

// Attach registers the tracker and inserts its visuals into the
// session scene graph
func (b *Base) attach(s *EditSession, t Tracker, parent *scene.Node) {
	s.Register(t)
	s.Scene.Insert(parent, b.node)
}

// Refresh re-evaluates condition-gated visibility: a tracker whose
// condition tracker is selected hides its own visuals
func (b *Base) Refresh(s *EditSession) {
	suppressed := false

	for _, name := range b.Conditions {
		if s.Select.State(name) != SelectionNone {
			suppressed = true
			break
		}
	}

	b.node.Visible = b.visible && !suppressed
}

// ensureLive guards operations against use after Finalize
func (b *Base) ensureLive(op string) error {
	if b.finalized {
		return &StateConsistencyError{Tracker: b.name, Op: op}
	}
	return nil
}

// ButtonEvent is a no-op in the base; concrete trackers override it
func (b *Base) ButtonEvent(s *EditSession, ev Event) {}

// StartDrag is a no-op in the base
func (b *Base) StartDrag(s *EditSession) {}

// OnDrag is a no-op in the base
func (b *Base) OnDrag(s *EditSession) {}

// EndDrag is a no-op in the base
func (b *Base) EndDrag(s *EditSession) {}

// Finalize detaches the tracker from the scene and the dispatch
// table. Must be called exactly once; a second call reports a
// StateConsistencyError.
func (b *Base) Finalize(s *EditSession) error {
	if err := b.ensureLive("finalize"); err != nil {
		return err
	}

	b.finalized = true
	s.Unregister(b.name)
	s.Select.Deselect(b.name)
	s.Scene.Remove(b.name)

	return nil
}
