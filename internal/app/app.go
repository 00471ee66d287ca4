package app

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/trailscad/trails/pkg/surface"
	"github.com/trailscad/trails/pkg/tracker"
)

// Run starts the viewport application
func Run(opts Options) {
	surf, name, err := loadSurface(opts)
	if err != nil {
		fmt.Printf("Error loading terrain: %v\n", err)
		os.Exit(1)
	}

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Trails")
	rl.SetTargetFPS(60)

	app := &App{
		Options: opts,
		View: ViewSettings{
			showTriangles: true,
			showContours:  true,
			showBoundary:  true,
		},
	}

	app.applySurface(surf, name)

	if opts.AlignFile != "" {
		if err := app.openEditTask(opts.AlignFile); err != nil {
			fmt.Printf("Warning: failed to open alignment: %v\n", err)
		}
	}

	if opts.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	// Main loop
	for {
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Check if the terrain needs reloading (point file changed)
		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadSurface()
		}

		// Apply reloaded surface if ready (must be on main thread)
		app.applyLoadedSurface()

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawTerrain()
		app.drawOverlayLines()
		rl.EndMode3D()

		// Markers keep a fixed pixel size, drawn in screen space
		app.drawOverlayMarkers()
		app.drawUI()

		rl.EndDrawing()
	}

	if app.Edit.session != nil {
		app.Edit.session.Finish()
	}
	rl.CloseWindow()
}

// applySurface installs a surface and frames the camera on it
func (app *App) applySurface(surf *surface.Surface, name string) {
	app.Terrain.surf = surf
	app.Terrain.name = name

	min, max := surfaceBounds(surf)
	center := min.Add(max).Mul(0.5)
	size := max.Sub(min)
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		maxDim = 10
	}

	app.Terrain.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Terrain.size = float32(maxDim)
	app.Terrain.zMin = min.Z
	app.Terrain.zMax = max.Z
	app.Interaction.dragPlaneZ = center.Z

	distance := float32(maxDim * 2.0)
	app.Camera.target = app.Terrain.center
	app.Camera.distance = distance
	app.Camera.azimuth = 0
	app.Camera.elevation = 1.0

	app.Camera.defaultDist = distance
	app.Camera.defaultAzimuth = 0
	app.Camera.defaultElevation = 1.0

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 0, Z: 1}, // terrain is Z up
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// openEditTask loads an alignment and builds its edit session
func (app *App) openEditTask(filename string) error {
	model, err := loadAlignment(filename)
	if err != nil {
		return err
	}

	session := tracker.NewSession()
	app.Edit = EditState{
		session:   session,
		align:     tracker.NewAlignmentTracker(session, "alignment", model),
		model:     model,
		alignFile: filename,
	}

	return nil
}
