package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/scene"
	"github.com/trailscad/trails/pkg/tracker"
)

// Pick tolerances in pixels.
const (
	markerPickTolerance = 12.0
	linePickTolerance   = 8.0
)

// handleInput processes mouse and keyboard input for the frame
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	delta := rl.Vector2Subtract(mouse, app.Interaction.lastMousePos)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	// Right button orbits, middle button pans.
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		if app.Interaction.isOrbiting {
			app.orbit(delta)
		}
		app.Interaction.isOrbiting = true
	} else {
		app.Interaction.isOrbiting = false
	}

	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		if app.Interaction.isPanning {
			app.doPan(delta)
		}
		app.Interaction.isPanning = true
	} else {
		app.Interaction.isPanning = false
	}

	app.handleKeys()
	app.handleEditMouse(mouse, delta)

	app.Interaction.lastMousePos = mouse
}

func (app *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		app.resetCameraView()
	case rl.IsKeyPressed(rl.KeyT):
		app.setCameraPlanView()
	case rl.IsKeyPressed(rl.KeyW):
		app.View.showTriangles = !app.View.showTriangles
	case rl.IsKeyPressed(rl.KeyC):
		app.View.showContours = !app.View.showContours
	case rl.IsKeyPressed(rl.KeyB):
		app.View.showBoundary = !app.View.showBoundary
	case rl.IsKeyPressed(rl.KeyP):
		app.View.showPoints = !app.View.showPoints
	case rl.IsKeyPressed(rl.KeyE):
		app.View.shadeMode = (app.View.shadeMode + 1) % 3
	case rl.IsKeyPressed(rl.KeyH):
		app.View.showHelp = !app.View.showHelp
	}

	if rl.IsKeyPressed(rl.KeyEscape) && app.Edit.session != nil {
		// Cancel the edit task; the alignment file stays as saved.
		app.Edit.session.Finish()
		app.Edit = EditState{}
		fmt.Println("Edit cancelled")
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyS) && app.Edit.session != nil {
		if err := app.Edit.model.Save(app.Edit.alignFile); err != nil {
			fmt.Printf("Save failed: %v\n", err)
		} else {
			fmt.Printf("Saved %s\n", app.Edit.alignFile)
			app.Edit.dirty = false
		}
	}
}

// handleEditMouse routes left button activity into the edit session.
// Without an edit task the left button orbits instead.
func (app *App) handleEditMouse(mouse, delta rl.Vector2) {
	if app.Edit.session == nil {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			if app.Interaction.leftDown {
				app.orbit(delta)
			}
			app.Interaction.leftDown = true
		} else {
			app.Interaction.leftDown = false
		}
		return
	}

	mods := app.modifiers()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		component := app.pickComponent(mouse)
		coords := app.groundPoint(mouse)

		app.Edit.session.Dispatch(tracker.ButtonEvent(tracker.Button1, tracker.ButtonDown, component, coords, mods))
		app.Interaction.leftDown = true
		app.Interaction.leftMoved = false
		return
	}

	if app.Interaction.leftDown && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if delta.X != 0 || delta.Y != 0 {
			app.Edit.session.Dispatch(tracker.MoveEvent("", app.groundPoint(mouse), mods))
			app.Interaction.leftMoved = true
		}
		return
	}

	if app.Interaction.leftDown && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		app.Edit.session.Dispatch(tracker.ButtonEvent(tracker.Button1, tracker.ButtonUp, "", app.groundPoint(mouse), mods))
		app.Interaction.leftDown = false

		if app.Interaction.leftMoved {
			app.Edit.dirty = true
		}
	}
}

func (app *App) modifiers() tracker.Modifier {
	var mods tracker.Modifier
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		mods |= tracker.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= tracker.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		mods |= tracker.ModAlt
	}
	return mods
}

// groundPoint intersects the mouse ray with the editing plane
func (app *App) groundPoint(mouse rl.Vector2) geometry.Vector3 {
	ray := rl.GetMouseRay(mouse, app.Camera.camera)

	dz := float64(ray.Direction.Z)
	if math.Abs(dz) < 1e-9 {
		return geometry.Vector3{
			X: float64(ray.Position.X),
			Y: float64(ray.Position.Y),
			Z: app.Interaction.dragPlaneZ,
		}
	}

	t := (app.Interaction.dragPlaneZ - float64(ray.Position.Z)) / dz
	return geometry.Vector3{
		X: float64(ray.Position.X) + float64(ray.Direction.X)*t,
		Y: float64(ray.Position.Y) + float64(ray.Direction.Y)*t,
		Z: app.Interaction.dragPlaneZ,
	}
}

// pickComponent finds the scene element under the cursor. Markers win
// over lines; the nearest candidate within tolerance is picked.
func (app *App) pickComponent(mouse rl.Vector2) string {
	var markerName, lineName string
	markerBest := markerPickTolerance
	lineBest := linePickTolerance

	app.Edit.session.Scene.Walk(func(node *scene.Node) {
		if len(node.Points) == 0 {
			return
		}

		for _, p := range node.Points {
			screen := rl.GetWorldToScreen(toRl(p), app.Camera.camera)
			dist := math.Hypot(float64(screen.X-mouse.X), float64(screen.Y-mouse.Y))

			if node.Marker {
				if dist < markerBest {
					markerBest = dist
					markerName = node.ID
				}
			} else if dist < lineBest {
				lineBest = dist
				lineName = node.ID
			}
		}
	})

	if markerName != "" {
		return markerName
	}
	return lineName
}

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
