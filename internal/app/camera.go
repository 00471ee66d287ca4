package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.azimuth = app.Camera.defaultAzimuth
	app.Camera.elevation = app.Camera.defaultElevation
	app.Camera.target = app.Terrain.center
}

// setCameraPlanView looks straight down, the view alignments are edited in
func (app *App) setCameraPlanView() {
	app.Camera.elevation = math.Pi/2 - 0.01
	app.Camera.azimuth = 0
	app.Camera.target = app.Terrain.center
}

// updateCamera updates camera position from the orbit angles. The
// vertical axis is Z; azimuth spins around it, elevation tilts above
// the horizon.
func (app *App) updateCamera() {
	cosEl := float32(math.Cos(float64(app.Camera.elevation)))
	x := app.Camera.distance * cosEl * float32(math.Sin(float64(app.Camera.azimuth)))
	y := app.Camera.distance * cosEl * float32(-math.Cos(float64(app.Camera.azimuth)))
	z := app.Camera.distance * float32(math.Sin(float64(app.Camera.elevation)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// orbit rotates the camera by mouse delta
func (app *App) orbit(delta rl.Vector2) {
	app.Camera.azimuth += delta.X * 0.01
	app.Camera.elevation += delta.Y * 0.01

	// Clamp elevation to prevent gimbal lock
	maxAngle := float32(math.Pi/2 - 0.05)
	if app.Camera.elevation > maxAngle {
		app.Camera.elevation = maxAngle
	}
	if app.Camera.elevation < -maxAngle {
		app.Camera.elevation = -maxAngle
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	// Calculate camera right and up vectors for panning
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}

// doZoom changes the camera distance
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.1
	minDist := app.Terrain.size * 0.05
	if minDist <= 0 {
		minDist = 0.1
	}
	if app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}
