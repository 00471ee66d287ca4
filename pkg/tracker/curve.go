package tracker

import (
	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
)

// Arc sampling density for the curve visuals.
const arcSteps = 32

// CurveTracker renders the circular curve at one interior PI and keeps
// it consistent while the PI nodes move. The three controlling node
// trackers are referenced by name; their live positions drive every
// recompute.
type CurveTracker struct {
	Base

	PrevNode string
	PINode   string
	NextNode string

	curve *alignment.Curve

	// Set while the curve failed the last fit check and was clamped.
	Clamped bool
}

// NewCurveTracker creates a curve tracker over an existing curve,
// controlled by the named node trackers, attached under parent (nil
// for root)
func NewCurveTracker(s *EditSession, name string, curve *alignment.Curve, prevNode, piNode, nextNode string, parent *scene.Node) *CurveTracker {
	c := &CurveTracker{
		Base:     newBase(name),
		PrevNode: prevNode,
		PINode:   piNode,
		NextNode: nextNode,
		curve:    curve,
	}
	c.selectable = true

	c.node.Color = scene.Color{R: 0.2, G: 0.8, B: 0.2}

	c.attach(s, c, parent)
	c.update(s)
	return c
}

// Curve returns the tracked curve
func (c *CurveTracker) Curve() *alignment.Curve {
	return c.curve
}

// ButtonEvent selects the curve on a direct pick
func (c *CurveTracker) ButtonEvent(s *EditSession, ev Event) {
	if c.finalized || !c.selectable {
		return
	}
	if ev.State != ButtonDown || ev.Component != c.name {
		return
	}

	if ev.Modifiers&ModCtrl != 0 {
		s.Select.Select(c.name)
	} else if s.Select.State(c.name) == SelectionNone {
		s.Select.Clear()
		s.Select.Select(c.name)
	}

	c.Refresh(s)

	// The PI node hides while its curve is selected; it may already
	// have refreshed earlier in this dispatch.
	if node := s.NodeTracker(c.PINode); node != nil {
		node.Refresh(s)
	}
}

// Validate recomputes the curve from the live node positions and
// clamps the radius when the tangent legs no longer fit beside the
// neighbouring curves' legs. Returns false when the curve had to be
// clamped.
func (c *CurveTracker) Validate(s *EditSession, leftTangent, rightTangent float64) bool {
	prev, pi, next, ok := c.nodePositions(s)
	if !ok {
		return true
	}

	c.curve.PI = pi
	c.curve.Recompute(prev, next)

	fits := c.curve.ClampRadius(prev, next, leftTangent, rightTangent)
	c.Clamped = !fits

	c.update(s)
	return fits
}

func (c *CurveTracker) nodePositions(s *EditSession) (prev, pi, next geometry.Vector3, ok bool) {
	pn := s.NodeTracker(c.PrevNode)
	cn := s.NodeTracker(c.PINode)
	nn := s.NodeTracker(c.NextNode)

	if pn == nil || cn == nil || nn == nil {
		return prev, pi, next, false
	}

	return pn.Get(), cn.Get(), nn.Get(), true
}

// update refreshes the arc visuals from the current curve geometry
func (c *CurveTracker) update(s *EditSession) {
	points := c.curve.Sample(arcSteps)
	if len(points) == 0 {
		c.node.Points = nil
		c.node.VertexCounts = nil
		c.Refresh(s)
		return
	}

	c.node.Points = points
	c.node.VertexCounts = []int32{int32(len(points))}
	c.Refresh(s)
}
