package app

import (
	"fmt"
	"time"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/pointfile"
	"github.com/trailscad/trails/pkg/surface"
	"github.com/trailscad/trails/pkg/watcher"
)

// loadSurface parses the point file and builds the triangulated surface
func loadSurface(opts Options) (*surface.Surface, string, error) {
	f, err := pointfile.Parse(opts.PointFile)
	if err != nil {
		return nil, "", err
	}
	if f.PointCount() < 3 {
		return nil, "", fmt.Errorf("%s: need at least 3 points, got %d", opts.PointFile, f.PointCount())
	}

	surf, err := surface.New(f.Points)
	if err != nil {
		return nil, "", err
	}

	if opts.MaxLength > 0 {
		if err := surf.SetMaxLength(opts.MaxLength); err != nil {
			return nil, "", err
		}
	}
	if opts.MaxAngle > 0 {
		if err := surf.SetMaxAngle(opts.MaxAngle); err != nil {
			return nil, "", err
		}
	}
	if opts.ContourInterval > 0 {
		if err := surf.SetContourInterval(opts.ContourInterval); err != nil {
			return nil, "", err
		}
	}

	return surf, f.Name, nil
}

func loadAlignment(filename string) (*alignment.Model, error) {
	return alignment.Load(filename)
}

// surfaceBounds returns the bounding box of the surface points
func surfaceBounds(surf *surface.Surface) (min, max geometry.Vector3) {
	if len(surf.Points) == 0 {
		return min, max
	}

	min = surf.Points[0]
	max = surf.Points[0]
	for _, p := range surf.Points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// setupFileWatcher watches the point file for changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.New(app.Options.PointFile, 300*time.Millisecond)
	if err != nil {
		return err
	}

	fw.OnChange(func() {
		app.FileWatch.needsReload = true
	})
	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadSurface rebuilds the surface in the background
func (app *App) reloadSurface() {
	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()

	go func() {
		surf, _, err := loadSurface(app.Options)
		if err != nil {
			fmt.Printf("Reload failed: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}

		app.FileWatch.loadedSurface = surf
	}()
}

// applyLoadedSurface installs a background-loaded surface on the main thread
func (app *App) applyLoadedSurface() {
	surf := app.FileWatch.loadedSurface
	if surf == nil {
		return
	}

	app.FileWatch.loadedSurface = nil
	app.FileWatch.isLoading = false

	// Keep the camera where the user put it; only swap the terrain.
	app.Terrain.surf = surf
	min, max := surfaceBounds(surf)
	app.Terrain.zMin = min.Z
	app.Terrain.zMax = max.Z

	fmt.Printf("Reloaded %s in %v\n", app.Options.PointFile, time.Since(app.FileWatch.loadingStartTime).Round(time.Millisecond))
}
