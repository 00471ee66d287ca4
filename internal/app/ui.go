package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI draws the status line and the help overlay
func (app *App) drawUI() {
	surf := app.Terrain.surf

	status := fmt.Sprintf("%s  |  %d points  %d triangles  %d contours",
		app.Terrain.name,
		len(surf.Points),
		len(surf.Triangles)/3,
		len(surf.ContourVertices),
	)

	if app.Edit.session != nil {
		status += fmt.Sprintf("  |  editing %s", app.Edit.alignFile)
		if app.Edit.dirty {
			status += " *"
		}
	}

	if app.FileWatch.isLoading {
		status += "  |  reloading..."
	}

	rl.DrawText(status, 10, 10, 18, rl.RayWhite)
	rl.DrawText("H help", 10, int32(rl.GetScreenHeight())-26, 16, rl.Gray)

	if app.View.showHelp {
		app.drawHelp()
	}
}

func (app *App) drawHelp() {
	lines := []string{
		"Right drag   orbit",
		"Middle drag  pan",
		"Wheel        zoom",
		"R            reset view",
		"T            plan view",
		"W            toggle triangles",
		"C            toggle contours",
		"B            toggle boundary",
		"P            toggle points",
		"E            cycle shading",
	}

	if app.Edit.session != nil {
		lines = append(lines,
			"",
			"Left click   select node / curve",
			"Ctrl+click   select node range",
			"Left drag    move selection",
			"Ctrl+S       save alignment",
			"Esc          cancel edit",
		)
	}

	x := int32(rl.GetScreenWidth() - 320)
	y := int32(40)

	rl.DrawRectangle(x-10, y-10, 300, int32(len(lines)*22+20), rl.NewColor(0, 0, 0, 180))

	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i*22), 16, rl.RayWhite)
	}
}
