package surface

import (
	"math"
	"strconv"

	"github.com/trailscad/trails/pkg/geometry"
)

// Surface is a triangulated terrain model. Raw points are triangulated
// with Delaunay, filtered by edge length and interior angle, and
// contoured at a fixed elevation interval. All derived fields are
// recomputed through the property chain table; they are never set
// directly by callers.
type Surface struct {
	Points []geometry.Vector3

	// Unfiltered Delaunay triangulation, flat vertex index triples.
	Delaunay []int

	// Subset of Delaunay passing the quality filters.
	Triangles []int

	MaxLength float64 // maximum triangle edge length
	MaxAngle  float64 // maximum interior angle, degrees

	// Minor contour interval; the major interval tracks it at 5x.
	ContourInterval float64
	MajorInterval   float64

	ContourPoints   []geometry.Vector3
	ContourVertices []int32

	// Major contour lines, the subset of contours on a MajorInterval level.
	MajorPoints   []geometry.Vector3
	MajorVertices []int32

	BoundaryPoints   []geometry.Vector3
	BoundaryVertices []int32
}

// Default thresholds match the original surface object defaults.
const (
	DefaultMaxLength       = 500000
	DefaultMaxAngle        = 180
	DefaultContourInterval = 1000
)

// propertyChain maps a property name to the recompute steps it
// triggers, in order. This is the single notification table the host
// document store drives through OnPropertyChanged.
var propertyChain = map[string][]func(*Surface) error{
	"Points":          {recomputeDelaunay, recomputeTriangles, recomputeContours, recomputeBoundary},
	"Delaunay":        {recomputeTriangles, recomputeContours, recomputeBoundary},
	"MaxLength":       {recomputeTriangles, recomputeContours, recomputeBoundary},
	"MaxAngle":        {recomputeTriangles, recomputeContours, recomputeBoundary},
	"Triangles":       {recomputeContours, recomputeBoundary},
	"ContourInterval": {recomputeContours},
}

// New creates a surface from a point list and recomputes all derived data
func New(points []geometry.Vector3) (*Surface, error) {
	s := &Surface{
		MaxLength:       DefaultMaxLength,
		MaxAngle:        DefaultMaxAngle,
		ContourInterval: DefaultContourInterval,
		MajorInterval:   DefaultContourInterval * 5,
	}

	if err := s.SetPoints(points); err != nil {
		return nil, err
	}

	return s, nil
}

// OnPropertyChanged re-derives everything downstream of the named
// property. Unknown names are ignored; the host store notifies for
// properties the model does not own.
func (s *Surface) OnPropertyChanged(name string) error {
	steps, ok := propertyChain[name]
	if !ok {
		return nil
	}

	for _, step := range steps {
		if err := step(s); err != nil {
			return err
		}
	}

	return nil
}

// SetPoints replaces the surface points and retriangulates
func (s *Surface) SetPoints(points []geometry.Vector3) error {
	if err := validatePoints(points); err != nil {
		return err
	}

	s.Points = points
	return s.OnPropertyChanged("Points")
}

// SetMaxLength updates the edge length filter threshold
func (s *Surface) SetMaxLength(length float64) error {
	if length < 0 || math.IsNaN(length) {
		return &InvalidGeometryError{Reason: "negative max edge length"}
	}

	s.MaxLength = length
	return s.OnPropertyChanged("MaxLength")
}

// SetMaxAngle updates the interior angle filter threshold, in degrees
func (s *Surface) SetMaxAngle(degrees float64) error {
	if degrees < 0 || degrees > 180 || math.IsNaN(degrees) {
		return &InvalidGeometryError{Reason: "max angle outside [0, 180]"}
	}

	s.MaxAngle = degrees
	return s.OnPropertyChanged("MaxAngle")
}

// SetContourInterval updates the minor contour interval. The major
// interval follows at five times the minor, as in the original object.
func (s *Surface) SetContourInterval(interval float64) error {
	if interval < 0 || math.IsNaN(interval) {
		return &InvalidGeometryError{Reason: "negative contour interval"}
	}

	s.ContourInterval = interval
	s.MajorInterval = interval * 5
	return s.OnPropertyChanged("ContourInterval")
}

func validatePoints(points []geometry.Vector3) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) ||
			math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsInf(p.Z, 0) {
			return &InvalidGeometryError{Reason: "non-finite coordinate at point " + strconv.Itoa(i)}
		}
	}
	return nil
}

func validateTriples(pointCount int, triples []int) error {
	if len(triples)%3 != 0 {
		return &InvalidGeometryError{Reason: "triple list length not divisible by 3"}
	}

	for _, idx := range triples {
		if idx < 0 || idx >= pointCount {
			return &InvalidGeometryError{Reason: "vertex index " + strconv.Itoa(idx) + " out of range"}
		}
	}

	return nil
}

func recomputeDelaunay(s *Surface) error {
	if len(s.Points) < 3 {
		s.Delaunay = nil
		return nil
	}

	s.Delaunay = geometry.Triangulate(s.Points)
	return nil
}

func recomputeTriangles(s *Surface) error {
	if len(s.Points) == 0 || len(s.Delaunay) == 0 {
		s.Triangles = nil
		return nil
	}

	if err := validateTriples(len(s.Points), s.Delaunay); err != nil {
		return err
	}

	s.Triangles = geometry.FilterTriangles(s.Points, s.Delaunay, s.MaxLength, s.MaxAngle)
	return nil
}

func recomputeContours(s *Surface) error {
	s.ContourPoints = nil
	s.ContourVertices = nil
	s.MajorPoints = nil
	s.MajorVertices = nil

	if len(s.Points) == 0 {
		return nil
	}

	if err := validateTriples(len(s.Points), s.Triangles); err != nil {
		return err
	}

	points, counts := geometry.ExtractContours(s.Points, s.Triangles, s.ContourInterval)
	s.ContourPoints = points
	s.ContourVertices = counts

	if s.MajorInterval <= 0 {
		return nil
	}

	// Each segment sits on one elevation; lift segments on a major
	// level into the major line set.
	offset := 0
	for _, count := range counts {
		segment := points[offset : offset+int(count)]
		offset += int(count)

		level := segment[0].Z
		ratio := level / s.MajorInterval
		if math.Abs(ratio-math.Round(ratio)) < 1e-9 {
			s.MajorPoints = append(s.MajorPoints, segment...)
			s.MajorVertices = append(s.MajorVertices, count)
		}
	}

	return nil
}
