package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/surface"
	"github.com/trailscad/trails/pkg/tracker"
	"github.com/trailscad/trails/pkg/watcher"
)

// Options configure the viewport
type Options struct {
	PointFile string // survey points to triangulate
	AlignFile string // optional alignment to edit

	MaxLength       float64 // triangle edge filter, 0 keeps the default
	MaxAngle        float64 // triangle angle filter, 0 keeps the default
	ContourInterval float64 // minor contour interval, 0 keeps the default

	Watch bool // reload the point file when it changes
}

type App struct {
	Camera      CameraState
	Terrain     TerrainData
	View        ViewSettings
	Interaction InteractionState
	Edit        EditState
	FileWatch   FileWatchState
	Options     Options
}

// CameraState holds all camera-related state
type CameraState struct {
	camera    rl.Camera3D
	distance  float32
	azimuth   float32 // rotation around the vertical axis
	elevation float32 // tilt above the horizon
	target    rl.Vector3

	defaultDist      float32 // for reset
	defaultAzimuth   float32
	defaultElevation float32
}

// TerrainData holds the triangulated surface under view
type TerrainData struct {
	surf   *surface.Surface
	name   string
	center rl.Vector3
	size   float32 // max dimension, used for marker and pan scaling

	zMin, zMax float64 // elevation range, drives shading
}

// ShadeMode selects how triangle faces are filled
type ShadeMode int

const (
	ShadeNone ShadeMode = iota
	ShadeElevation
	ShadeSlope
)

// ViewSettings holds display settings
type ViewSettings struct {
	showTriangles bool
	showContours  bool
	showBoundary  bool
	showPoints    bool
	showHelp      bool
	shadeMode     ShadeMode
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	isOrbiting   bool
	isPanning    bool
	leftDown     bool
	leftMoved    bool
	dragPlaneZ   float64 // elevation of the plane drags move in
}

// EditState holds the active alignment edit task
type EditState struct {
	session   *tracker.EditSession
	align     *tracker.AlignmentTracker
	model     *alignment.Model
	alignFile string
	dirty     bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher      *watcher.FileWatcher
	needsReload      bool
	isLoading        bool
	loadingStartTime time.Time
	loadedSurface    *surface.Surface // built in background, applied on main thread
}
