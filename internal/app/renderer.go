package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
	"github.com/trailscad/trails/pkg/tracker"
)

var (
	triangleColor = rl.NewColor(90, 100, 115, 255)
	pointColor    = rl.NewColor(200, 205, 215, 255)
	contourColor  = rl.NewColor(150, 120, 90, 255)
	majorColor    = rl.NewColor(205, 160, 110, 255)
	boundaryColor = rl.NewColor(95, 140, 230, 255)
	selectedColor = rl.NewColor(120, 230, 120, 255)
)

// drawTerrain draws the triangulation, contours and boundary inside 3D mode
func (app *App) drawTerrain() {
	surf := app.Terrain.surf

	if app.View.shadeMode != ShadeNone {
		app.drawShadedTriangles()
	}

	if app.View.showTriangles {
		for _, tri := range geometry.Unpack(surf.Triangles) {
			a := toRl(surf.Points[tri.A])
			b := toRl(surf.Points[tri.B])
			c := toRl(surf.Points[tri.C])

			rl.DrawLine3D(a, b, triangleColor)
			rl.DrawLine3D(b, c, triangleColor)
			rl.DrawLine3D(c, a, triangleColor)
		}
	}

	if app.View.showPoints {
		radius := app.Terrain.size * 0.002
		for _, p := range surf.Points {
			rl.DrawSphere(toRl(p), radius, pointColor)
		}
	}

	if app.View.showContours {
		drawLineSet3D(surf.ContourPoints, surf.ContourVertices, contourColor)
		drawLineSet3D(surf.MajorPoints, surf.MajorVertices, majorColor)
	}

	if app.View.showBoundary {
		drawLineSet3D(surf.BoundaryPoints, surf.BoundaryVertices, boundaryColor)
	}
}

// drawShadedTriangles fills the terrain faces by elevation or slope
func (app *App) drawShadedTriangles() {
	surf := app.Terrain.surf

	zRange := app.Terrain.zMax - app.Terrain.zMin
	if zRange <= 0 {
		zRange = 1
	}

	for _, tri := range geometry.Unpack(surf.Triangles) {
		a := surf.Points[tri.A]
		b := surf.Points[tri.B]
		c := surf.Points[tri.C]

		var col rl.Color
		if app.View.shadeMode == ShadeElevation {
			avgZ := (a.Z + b.Z + c.Z) / 3
			col = elevationShade((avgZ - app.Terrain.zMin) / zRange)
		} else {
			col = slopeShade(tri.Normal(surf.Points))
		}

		ra, rb, rc := toRl(a), toRl(b), toRl(c)

		// Both windings, faces must read from above and below.
		rl.DrawTriangle3D(ra, rb, rc, col)
		rl.DrawTriangle3D(ra, rc, rb, col)
	}
}

// elevationShade maps a normalized elevation to a green-to-brown ramp
func elevationShade(t float64) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return rl.NewColor(
		uint8(70+t*120),
		uint8(110+t*30),
		uint8(60+t*40),
		255,
	)
}

// slopeShade maps face steepness to a green-to-red ramp
func slopeShade(normal geometry.Vector3) rl.Color {
	nz := math.Abs(normal.Z)
	if nz > 1 {
		nz = 1
	}

	// 0 for flat ground, 1 for a vertical face.
	t := math.Acos(nz) / (math.Pi / 2)

	return rl.NewColor(
		uint8(60+t*180),
		uint8(170-t*110),
		60,
		255,
	)
}

// drawOverlayLines draws the edit tracker polylines inside 3D mode
func (app *App) drawOverlayLines() {
	if app.Edit.session == nil {
		return
	}

	app.Edit.session.Scene.Walk(func(node *scene.Node) {
		if node.Marker || len(node.Points) < 2 {
			return
		}

		col := app.nodeColor(node)

		offset := 0
		for _, count := range node.VertexCounts {
			segment := node.Points[offset : offset+int(count)]
			offset += int(count)

			for i := 1; i < len(segment); i++ {
				rl.DrawLine3D(toRl(segment[i-1]), toRl(segment[i]), col)
			}
		}
	})
}

// drawOverlayMarkers draws tracker pick handles in screen space so they
// keep a constant pixel size
func (app *App) drawOverlayMarkers() {
	if app.Edit.session == nil {
		return
	}

	app.Edit.session.Scene.Walk(func(node *scene.Node) {
		if !node.Marker {
			return
		}

		col := app.nodeColor(node)

		size := node.MarkerSize
		if size <= 0 {
			size = 8
		}

		for _, p := range node.Points {
			screen := rl.GetWorldToScreen(toRl(p), app.Camera.camera)
			rl.DrawCircleV(screen, size/2, col)
			rl.DrawCircleLines(int32(screen.X), int32(screen.Y), size/2, rl.White)
		}
	})
}

// nodeColor maps a scene node color, highlighting selected trackers
func (app *App) nodeColor(node *scene.Node) rl.Color {
	if app.Edit.session != nil && app.Edit.session.Select.State(node.ID) != tracker.SelectionNone {
		return selectedColor
	}

	return rl.NewColor(
		uint8(node.Color.R*255),
		uint8(node.Color.G*255),
		uint8(node.Color.B*255),
		255,
	)
}

func drawLineSet3D(points []geometry.Vector3, counts []int32, col rl.Color) {
	offset := 0
	for _, count := range counts {
		segment := points[offset : offset+int(count)]
		offset += int(count)

		for i := 1; i < len(segment); i++ {
			rl.DrawLine3D(toRl(segment[i-1]), toRl(segment[i]), col)
		}
	}
}
