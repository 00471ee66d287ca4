package section

import (
	"errors"
	"fmt"
	"math"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/surface"
)

// Arc sampling density when flattening curves into the station path.
const pathArcSteps = 16

// Point is one sampled offset on a cross section, measured from the
// alignment centreline. Positive offsets are left of the direction of
// travel.
type Point struct {
	Offset    float64
	Elevation float64
}

// Section is the ground line perpendicular to the alignment at one
// station
type Section struct {
	Station float64
	Origin  geometry.Vector3
	Points  []Point
}

// Path flattens an alignment into a polyline: tangent runs joined by
// sampled arcs
func Path(m *alignment.Model, steps int) []geometry.Vector3 {
	pis := m.PICoords()
	if len(pis) < 2 {
		return nil
	}

	path := []geometry.Vector3{pis[0]}

	for _, c := range m.Curves() {
		arc := c.Sample(steps)
		if len(arc) == 0 {
			// Straight-through PI, no curve to trace.
			path = append(path, c.PI)
			continue
		}
		path = append(path, arc...)
	}

	return append(path, pis[len(pis)-1])
}

// Length returns the horizontal length of a polyline
func Length(path []geometry.Vector3) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i].DistanceXY(path[i-1])
	}
	return total
}

// Extract cuts cross sections along the alignment every interval,
// sampling surface elevations every step across the given width.
// Offsets that fall outside the surface are left out of the section.
func Extract(surf *surface.Surface, m *alignment.Model, interval, width, step float64) ([]Section, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("station interval must be positive, got %v", interval)
	}
	if width <= 0 || step <= 0 {
		return nil, fmt.Errorf("section width and step must be positive, got %v and %v", width, step)
	}

	path := Path(m, pathArcSteps)
	if len(path) < 2 {
		return nil, fmt.Errorf("alignment has no stationable geometry")
	}

	total := Length(path)
	var sections []Section

	for station := 0.0; station <= total+1e-9; station += interval {
		origin, dir, ok := stationPoint(path, station)
		if !ok {
			break
		}

		// Left-pointing normal in the XY plane.
		normal := geometry.Vector3{X: -dir.Y, Y: dir.X}

		sec := Section{Station: station, Origin: origin}

		for offset := -width / 2; offset <= width/2+1e-9; offset += step {
			p := origin.Add(normal.Mul(offset))

			elev, err := surf.ElevationAt(p.X, p.Y)
			if errors.Is(err, surface.ErrOutsideSurface) {
				continue
			}
			if err != nil {
				return nil, err
			}

			sec.Points = append(sec.Points, Point{Offset: offset, Elevation: elev})
		}

		sections = append(sections, sec)
	}

	return sections, nil
}

// stationPoint locates the path point and unit direction at a station
// measured along the horizontal path length
func stationPoint(path []geometry.Vector3, station float64) (origin, dir geometry.Vector3, ok bool) {
	walked := 0.0

	for i := 1; i < len(path); i++ {
		seg := path[i].DistanceXY(path[i-1])
		if seg < 1e-12 {
			continue
		}

		if walked+seg >= station-1e-9 {
			t := (station - walked) / seg
			t = math.Max(0, math.Min(1, t))

			origin = path[i-1].Lerp(path[i], t)
			dir = path[i].Sub(path[i-1]).Mul(1 / seg)
			dir.Z = 0
			return origin, dir, true
		}

		walked += seg
	}

	return origin, dir, false
}
