package alignment

import (
	"fmt"

	"github.com/trailscad/trails/pkg/geometry"
)

// SegmentType discriminates alignment geometry records
type SegmentType string

const (
	SegmentLine  SegmentType = "Line"
	SegmentCurve SegmentType = "Curve"
)

// Segment is one record of an alignment's horizontal geometry: a
// straight tangent run or a circular curve rounding a PI.
type Segment struct {
	Type   SegmentType
	PI     geometry.Vector3
	Radius float64
}

// Meta carries the alignment endpoints
type Meta struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Model is the editable description of one horizontal alignment:
// ordered geometry records between the meta endpoints. Trackers read
// it once at construction and write PI updates back through UpdatePI.
type Model struct {
	Meta     Meta
	Geometry []Segment
}

// PICoords returns the points of intersection bounding the tangent
// runs: the start point, every curve PI in order, and the end point.
func (m *Model) PICoords() []geometry.Vector3 {
	coords := []geometry.Vector3{m.Meta.Start}

	for _, seg := range m.Geometry {
		if seg.Type != SegmentLine {
			coords = append(coords, seg.PI)
		}
	}

	return append(coords, m.Meta.End)
}

// Curves computes the circular curve at every interior PI
func (m *Model) Curves() []*Curve {
	pis := m.PICoords()
	var curves []*Curve

	idx := 0
	for _, seg := range m.Geometry {
		if seg.Type == SegmentLine {
			continue
		}

		// Interior PI idx+1 between neighbours idx and idx+2.
		c := ComputeCurve(pis[idx], pis[idx+1], pis[idx+2], seg.Radius)
		curves = append(curves, c)
		idx++
	}

	return curves
}

// UpdatePI writes a moved PI back into the model. Index 0 is the start
// point, the last index is the end point, interior indices address
// curve records in order.
func (m *Model) UpdatePI(index int, point geometry.Vector3) error {
	count := len(m.PICoords())
	if index < 0 || index >= count {
		return fmt.Errorf("pi index %d out of range [0, %d)", index, count)
	}

	switch index {
	case 0:
		m.Meta.Start = point
	case count - 1:
		m.Meta.End = point
	default:
		interior := 0
		for i := range m.Geometry {
			if m.Geometry[i].Type == SegmentLine {
				continue
			}
			interior++
			if interior == index {
				m.Geometry[i].PI = point
				return nil
			}
		}
		return fmt.Errorf("pi index %d has no geometry record", index)
	}

	return nil
}

// SetRadius writes an updated curve radius back into the model,
// addressing curve records in order
func (m *Model) SetRadius(curveIndex int, radius float64) error {
	interior := 0
	for i := range m.Geometry {
		if m.Geometry[i].Type == SegmentLine {
			continue
		}
		if interior == curveIndex {
			m.Geometry[i].Radius = radius
			return nil
		}
		interior++
	}

	return fmt.Errorf("curve index %d out of range", curveIndex)
}
