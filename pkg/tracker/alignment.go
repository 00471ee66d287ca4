package tracker

import (
	"fmt"

	"github.com/trailscad/trails/pkg/alignment"
)

// AlignmentTracker is the composite editing handle for one horizontal
// alignment. It builds a node tracker per PI, a wire tracker per
// tangent run and a curve tracker per interior PI, routes range
// selection, and drives curve validation while PIs drag. Children are
// addressed by name through the session table, never by reference.
type AlignmentTracker struct {
	Base

	model *alignment.Model

	nodeNames  []string
	wireNames  []string
	curveNames []string

	// Curves revalidated during the active drag gesture.
	dragCurves []string
	dragging   bool
}

// NewAlignmentTracker creates the composite tracker and builds its
// children from the model. The composite registers before its children
// so its button handling sees the selection state of the previous
// click.
func NewAlignmentTracker(s *EditSession, name string, model *alignment.Model) *AlignmentTracker {
	a := &AlignmentTracker{
		Base:  newBase(name),
		model: model,
	}

	a.attach(s, a, nil)
	a.buildTrackers(s)
	return a
}

// Model returns the alignment model under edit
func (a *AlignmentTracker) Model() *alignment.Model {
	return a.model
}

// NodeNames returns the PI node tracker names in station order
func (a *AlignmentTracker) NodeNames() []string { return a.nodeNames }

// WireNames returns the tangent wire tracker names in station order
func (a *AlignmentTracker) WireNames() []string { return a.wireNames }

// CurveNames returns the curve tracker names in station order
func (a *AlignmentTracker) CurveNames() []string { return a.curveNames }

func (a *AlignmentTracker) buildTrackers(s *EditSession) {
	pis := a.model.PICoords()

	for i, pi := range pis {
		name := fmt.Sprintf("%s.node.%d", a.name, i)
		node := NewNodeTracker(s, name, pi, a.node)
		node.IsEndNode = i == 0 || i == len(pis)-1

		a.nodeNames = append(a.nodeNames, name)
	}

	for i := 0; i < len(pis)-1; i++ {
		name := fmt.Sprintf("%s.wire.%d", a.name, i)
		wire := NewWireTracker(s, name, a.node)
		wire.SetPoints(s, nil, []string{a.nodeNames[i], a.nodeNames[i+1]}, nil)

		a.wireNames = append(a.wireNames, name)
	}

	for i, curve := range a.model.Curves() {
		name := fmt.Sprintf("%s.curve.%d", a.name, i)
		NewCurveTracker(s, name, curve,
			a.nodeNames[i], a.nodeNames[i+1], a.nodeNames[i+2], a.node)

		a.curveNames = append(a.curveNames, name)

		// A selected curve suppresses its PI node's visuals.
		if node := s.NodeTracker(a.nodeNames[i+1]); node != nil {
			node.Conditions = append(node.Conditions, name)
			node.Refresh(s)
		}
	}
}

// ButtonEvent routes range selection and arms the curve validation
// window for the coming drag. A press that lands while nodes are
// already selected keeps the existing selection so the drag can start
// from it.
func (a *AlignmentTracker) ButtonEvent(s *EditSession, ev Event) {
	if a.finalized {
		return
	}
	if ev.State != ButtonDown {
		return
	}

	selected := 0
	for _, name := range a.nodeNames {
		if s.Select.State(name) != SelectionNone {
			selected++
		}
	}

	ctrl := ev.Modifiers&ModCtrl != 0

	if ctrl && selected > 1 {
		return
	}
	if !ctrl && selected > 0 {
		return
	}

	idx := a.nodeIndex(ev.Component)
	if idx < 0 {
		a.dragCurves = nil
		return
	}

	if ctrl {
		// Ctrl picks the node and everything downstream of it. End
		// nodes never anchor or join a range; they only select
		// themselves.
		s.Select.Select(a.nodeNames[idx])

		picked := s.NodeTracker(a.nodeNames[idx])
		if picked == nil || !picked.IsEndNode {
			for _, name := range a.nodeNames[idx+1:] {
				if node := s.NodeTracker(name); node != nil && node.IsEndNode {
					continue
				}
				s.Select.Select(name)
			}
		}
	}

	curveMax := 1
	if ctrl {
		curveMax = 0
	}

	lower := idx - 2
	if lower < 0 {
		lower = 0
	}
	upper := idx + curveMax
	if upper > len(a.curveNames) {
		upper = len(a.curveNames)
	}
	if lower > upper {
		lower = upper
	}

	a.dragCurves = append([]string(nil), a.curveNames[lower:upper]...)
}

func (a *AlignmentTracker) nodeIndex(component string) int {
	for i, name := range a.nodeNames {
		if name == component {
			return i
		}
	}
	return -1
}

// StartDrag joins the gesture when any of the alignment's nodes is
// selected
func (a *AlignmentTracker) StartDrag(s *EditSession) {
	if a.finalized {
		return
	}

	for _, name := range a.nodeNames {
		if s.Select.State(name) != SelectionNone {
			a.dragging = true
			return
		}
	}
}

// OnDrag revalidates the armed curves left to right. Each curve sees
// its neighbours' tangent lengths so clamping never lets adjoining
// legs overlap; a curve's freshly clamped tangent feeds the next
// validation.
func (a *AlignmentTracker) OnDrag(s *EditSession) {
	if !a.dragging || len(a.dragCurves) == 0 {
		return
	}

	// The composite dispatches before its children, so the dragged
	// nodes have not applied the current offset yet. Applying it here
	// is idempotent with their own OnDrag.
	for _, name := range a.nodeNames {
		if node := s.NodeTracker(name); node != nil {
			node.OnDrag(s)
		}
	}

	tans := make([]float64, len(a.curveNames)+2)
	for i, name := range a.curveNames {
		if c, ok := s.Tracker(name).(*CurveTracker); ok {
			tans[i+1] = c.Curve().Tangent
		}
	}

	armed := make(map[string]bool, len(a.dragCurves))
	for _, name := range a.dragCurves {
		armed[name] = true
	}

	for i, name := range a.curveNames {
		if !armed[name] {
			continue
		}

		c, ok := s.Tracker(name).(*CurveTracker)
		if !ok {
			continue
		}

		c.Validate(s, tans[i], tans[i+2])
		tans[i+1] = c.Curve().Tangent
	}
}

// EndDrag writes the dragged geometry back into the model: moved PIs
// through UpdatePI, clamped radii through SetRadius
func (a *AlignmentTracker) EndDrag(s *EditSession) {
	if !a.dragging {
		return
	}

	a.dragging = false
	a.dragCurves = nil

	for i, name := range a.nodeNames {
		if node := s.NodeTracker(name); node != nil {
			a.model.UpdatePI(i, node.Get())
		}
	}

	for i, name := range a.curveNames {
		if c, ok := s.Tracker(name).(*CurveTracker); ok {
			a.model.SetRadius(i, c.Curve().Radius)
		}
	}
}

// Finalize tears down the children before the composite itself
func (a *AlignmentTracker) Finalize(s *EditSession) error {
	if err := a.ensureLive("finalize"); err != nil {
		return err
	}

	var firstErr error

	children := make([]string, 0, len(a.nodeNames)+len(a.wireNames)+len(a.curveNames))
	children = append(children, a.curveNames...)
	children = append(children, a.wireNames...)
	children = append(children, a.nodeNames...)

	for _, name := range children {
		t := s.Tracker(name)
		if t == nil || t.Finalized() {
			continue
		}
		if err := t.Finalize(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := a.Base.Finalize(s); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
