package pointfile

import (
	"math"

	"github.com/trailscad/trails/pkg/geometry"
)

// File represents a parsed survey point file
type File struct {
	Name   string
	Points []geometry.Vector3
}

// NewFile creates an empty point file model
func NewFile(name string) *File {
	return &File{
		Name:   name,
		Points: make([]geometry.Vector3, 0),
	}
}

// AddPoint adds a point to the file
func (f *File) AddPoint(p geometry.Vector3) {
	f.Points = append(f.Points, p)
}

// PointCount returns the number of points in the file
func (f *File) PointCount() int {
	return len(f.Points)
}

// Bounds returns the axis aligned bounding box of the point set
func (f *File) Bounds() (min, max geometry.Vector3) {
	min = geometry.Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = geometry.Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for _, p := range f.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	return min, max
}
