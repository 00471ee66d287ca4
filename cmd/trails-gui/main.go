package main

import (
	"fmt"
	"math"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/pointfile"
	"github.com/trailscad/trails/pkg/surface"
	"github.com/trailscad/trails/pkg/viewer"
)

type App struct {
	window         fyne.Window
	surf           *surface.Surface
	name           string
	renderer       *viewer.SurfaceRenderer
	inspectionInfo *InspectionInfo
	selected       []geometry.Vector3
}

type InspectionInfo struct {
	point1Label      *widget.Label
	point2Label      *widget.Label
	distanceLabel    *widget.Label
	gradeLabel       *widget.Label
	surfaceInfoLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("Trails - Terrain Inspector")

	appInstance := &App{
		window: w,
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to Trails")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Point File' to load a survey")

	openButton := widget.NewButton("Open Point File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	f, err := pointfile.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load point file: %w", err), a.window)
		return
	}

	surf, err := surface.New(f.Points)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to triangulate: %w", err), a.window)
		return
	}

	a.surf = surf
	a.name = f.Name
	a.selected = nil
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.inspectionInfo = &InspectionInfo{
		point1Label:      widget.NewLabel("Point 1: Not selected"),
		point2Label:      widget.NewLabel("Point 2: Not selected"),
		distanceLabel:    widget.NewLabel("Distance: -"),
		gradeLabel:       widget.NewLabel("Grade: -"),
		surfaceInfoLabel: widget.NewLabel(""),
	}

	a.inspectionInfo.gradeLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create 3D renderer
	a.renderer = viewer.NewSurfaceRenderer(a.surf)
	a.renderer.SetOnPointSelect(func(point geometry.Vector3) {
		a.selected = append(a.selected, point)
		if len(a.selected) > 2 {
			a.selected = a.selected[len(a.selected)-2:]
		}
		a.updateInspection()
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.selected = nil
		a.updateInspection()
	})

	// Surface info
	surfaceInfo := fmt.Sprintf(
		"Surface: %s\nPoints: %d\nTriangles: %d\nContours: %d\n\nFilters:\n  Max edge: %.1f\n  Max angle: %.1f\n  Interval: %.1f",
		a.name,
		len(a.surf.Points),
		len(a.surf.Triangles)/3,
		len(a.surf.ContourVertices),
		a.surf.MaxLength,
		a.surf.MaxAngle,
		a.surf.ContourInterval,
	)
	a.inspectionInfo.surfaceInfoLabel.SetText(surfaceInfo)

	// Instructions
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on survey points to select them\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Select 2 points for distance and grade",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Surface Information:"),
		widget.NewSeparator(),
		a.inspectionInfo.surfaceInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Inspection:"),
		widget.NewSeparator(),
		a.inspectionInfo.point1Label,
		a.inspectionInfo.point2Label,
		widget.NewSeparator(),
		a.inspectionInfo.distanceLabel,
		a.inspectionInfo.gradeLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		clearButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	// Initial render
	a.renderer.Render(800, 600)
}

func (a *App) updateInspection() {
	if len(a.selected) == 0 {
		a.inspectionInfo.point1Label.SetText("Point 1: Not selected")
		a.inspectionInfo.point2Label.SetText("Point 2: Not selected")
		a.inspectionInfo.distanceLabel.SetText("Distance: -")
		a.inspectionInfo.gradeLabel.SetText("Grade: -")
		return
	}

	p1 := a.selected[0]
	a.inspectionInfo.point1Label.SetText(fmt.Sprintf("Point 1: (%.3f, %.3f, %.3f)", p1.X, p1.Y, p1.Z))

	if len(a.selected) < 2 {
		a.inspectionInfo.point2Label.SetText("Point 2: Click to select")
		a.inspectionInfo.distanceLabel.SetText("Distance: -")
		a.inspectionInfo.gradeLabel.SetText("Grade: -")
		return
	}

	p2 := a.selected[1]
	a.inspectionInfo.point2Label.SetText(fmt.Sprintf("Point 2: (%.3f, %.3f, %.3f)", p2.X, p2.Y, p2.Z))

	run := p1.DistanceXY(p2)
	rise := p2.Z - p1.Z

	a.inspectionInfo.distanceLabel.SetText(fmt.Sprintf("Distance: %.3f slope, %.3f plan", p1.Distance(p2), run))

	if run < 1e-9 {
		a.inspectionInfo.gradeLabel.SetText("Grade: vertical")
		return
	}

	grade := rise / run * 100
	ratio := math.Abs(run / math.Max(math.Abs(rise), 1e-9))
	a.inspectionInfo.gradeLabel.SetText(fmt.Sprintf("Grade: %.2f%% (1:%.1f)", grade, ratio))
}
