package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
	"github.com/trailscad/trails/pkg/surface"
)

// SurfaceRenderer renders a terrain surface in 3D, with an optional
// scene graph overlay for edit trackers
type SurfaceRenderer struct {
	widget.BaseWidget
	surf          *surface.Surface
	overlay       *scene.Graph
	camera        *Camera
	lines         []*canvas.Line
	markers       []*canvas.Circle
	dragStart     *fyne.Position
	isDragging    bool
	width         float64
	height        float64
	onPointSelect func(point geometry.Vector3)
}

// NewSurfaceRenderer creates a new 3D surface renderer
func NewSurfaceRenderer(surf *surface.Surface) *SurfaceRenderer {
	min := geometry.Vector3{}
	max := geometry.Vector3{}
	if len(surf.Points) > 0 {
		min, max = bounds(surf.Points)
	}

	r := &SurfaceRenderer{
		surf:    surf,
		camera:  NewCamera(min, max),
		lines:   make([]*canvas.Line, 0),
		markers: make([]*canvas.Circle, 0),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOverlay attaches an edit session scene graph drawn over the surface
func (r *SurfaceRenderer) SetOverlay(overlay *scene.Graph) {
	r.overlay = overlay
}

// SetOnPointSelect sets the callback for when a surface point is selected
func (r *SurfaceRenderer) SetOnPointSelect(callback func(point geometry.Vector3)) {
	r.onPointSelect = callback
}

// CreateRenderer creates the renderer for the widget
func (r *SurfaceRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *SurfaceRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = make([]*canvas.Line, 0)
	r.markers = make([]*canvas.Circle, 0)

	r.renderTriangles()
	r.renderLineSet(r.surf.ContourPoints, r.surf.ContourVertices, color.RGBA{150, 120, 90, 255}, 1)
	r.renderLineSet(r.surf.MajorPoints, r.surf.MajorVertices, color.RGBA{110, 80, 50, 255}, 2)
	r.renderLineSet(r.surf.BoundaryPoints, r.surf.BoundaryVertices, color.RGBA{80, 120, 200, 255}, 2)
	r.renderOverlay()

	r.Refresh()
}

// renderTriangles draws the filtered triangulation as a wireframe
func (r *SurfaceRenderer) renderTriangles() {
	for _, tri := range geometry.Unpack(r.surf.Triangles) {
		verts := [3]geometry.Vector3{
			r.surf.Points[tri.A],
			r.surf.Points[tri.B],
			r.surf.Points[tri.C],
		}

		for i := 0; i < 3; i++ {
			v1 := verts[i]
			v2 := verts[(i+1)%3]

			x1, y1, z1 := r.camera.Project(v1, r.width, r.height)
			x2, y2, z2 := r.camera.Project(v2, r.width, r.height)

			// Simple depth-based color
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.lines = append(r.lines, line)
		}
	}
}

// renderLineSet draws one polyline collection described by a flat point
// array and per-line vertex counts
func (r *SurfaceRenderer) renderLineSet(points []geometry.Vector3, counts []int32, col color.RGBA, strokeWidth float32) {
	offset := 0
	for _, count := range counts {
		segment := points[offset : offset+int(count)]
		offset += int(count)

		for i := 1; i < len(segment); i++ {
			x1, y1, _ := r.camera.Project(segment[i-1], r.width, r.height)
			x2, y2, _ := r.camera.Project(segment[i], r.width, r.height)

			line := canvas.NewLine(col)
			line.StrokeWidth = strokeWidth
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.lines = append(r.lines, line)
		}
	}
}

// renderOverlay draws the visible edit tracker nodes
func (r *SurfaceRenderer) renderOverlay() {
	if r.overlay == nil {
		return
	}

	r.overlay.Walk(func(node *scene.Node) {
		col := color.RGBA{
			uint8(node.Color.R * 255),
			uint8(node.Color.G * 255),
			uint8(node.Color.B * 255),
			255,
		}

		if node.Marker {
			for _, p := range node.Points {
				x, y, _ := r.camera.Project(p, r.width, r.height)

				size := node.MarkerSize
				if size <= 0 {
					size = 8
				}

				marker := canvas.NewCircle(col)
				marker.StrokeColor = color.White
				marker.StrokeWidth = 1
				marker.Resize(fyne.NewSize(size, size))
				marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))

				r.markers = append(r.markers, marker)
			}
			return
		}

		offset := 0
		for _, count := range node.VertexCounts {
			segment := node.Points[offset : offset+int(count)]
			offset += int(count)

			for i := 1; i < len(segment); i++ {
				x1, y1, _ := r.camera.Project(segment[i-1], r.width, r.height)
				x2, y2, _ := r.camera.Project(segment[i], r.width, r.height)

				line := canvas.NewLine(col)
				line.StrokeWidth = 2
				line.Position1 = fyne.NewPos(float32(x1), float32(y1))
				line.Position2 = fyne.NewPos(float32(x2), float32(y2))

				r.lines = append(r.lines, line)
			}
		}
	})
}

// Dragged handles mouse drag events for rotation
func (r *SurfaceRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *SurfaceRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped handles tap events for point selection
func (r *SurfaceRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	nearest, minDist := r.findNearestPoint(float64(event.Position.X), float64(event.Position.Y))

	// Only select if reasonably close (within 20 pixels)
	if minDist < 20 {
		if r.onPointSelect != nil {
			r.onPointSelect(nearest)
		}
	}
}

// findNearestPoint finds the surface point closest to screen coordinates
func (r *SurfaceRenderer) findNearestPoint(screenX, screenY float64) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDist := math.MaxFloat64

	for _, p := range r.surf.Points {
		x, y, z := r.camera.Project(p, r.width, r.height)
		if z > 0 { // Only consider points in front of camera
			dist := math.Sqrt(math.Pow(x-screenX, 2) + math.Pow(y-screenY, 2))
			if dist < minDist {
				minDist = dist
				nearest = p
			}
		}
	}

	return nearest, minDist
}

// Scrolled handles scroll events for zooming
func (r *SurfaceRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

func bounds(points []geometry.Vector3) (min, max geometry.Vector3) {
	min = points[0]
	max = points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// surfaceWidgetRenderer implements fyne.WidgetRenderer
type surfaceWidgetRenderer struct {
	renderer *SurfaceRenderer
	objects  []fyne.CanvasObject
}

func (m *surfaceWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *surfaceWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *surfaceWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0)

	for _, line := range m.renderer.lines {
		m.objects = append(m.objects, line)
	}
	for _, marker := range m.renderer.markers {
		m.objects = append(m.objects, marker)
	}

	canvas.Refresh(m.renderer)
}

func (m *surfaceWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *surfaceWidgetRenderer) Destroy() {}
