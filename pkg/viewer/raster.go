package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/trailscad/trails/pkg/geometry"
	"github.com/trailscad/trails/pkg/surface"
)

const planMargin = 20

// PlanImage renders a top-down, elevation shaded view of a surface:
// filled triangles under contour and boundary linework
func PlanImage(surf *surface.Surface, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// White background
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	if len(surf.Points) == 0 {
		return img
	}

	min, max := bounds(surf.Points)
	size := max.Sub(min)

	scale := math.Min(
		(float64(width)-2*planMargin)/math.Max(size.X, 1e-9),
		(float64(height)-2*planMargin)/math.Max(size.Y, 1e-9),
	)

	// Plan projection: north up, so the Y axis flips.
	project := func(p geometry.Vector3) (float64, float64) {
		x := planMargin + (p.X-min.X)*scale
		y := float64(height) - planMargin - (p.Y-min.Y)*scale
		return x, y
	}

	zRange := math.Max(size.Z, 1e-9)

	for _, tri := range geometry.Unpack(surf.Triangles) {
		a := surf.Points[tri.A]
		b := surf.Points[tri.B]
		c := surf.Points[tri.C]

		avgZ := (a.Z + b.Z + c.Z) / 3
		col := elevationShade((avgZ - min.Z) / zRange)

		x1, y1 := project(a)
		x2, y2 := project(b)
		x3, y3 := project(c)
		fillTriangle(img, x1, y1, x2, y2, x3, y3, col)
	}

	drawLineSet(img, surf.ContourPoints, surf.ContourVertices, project, color.RGBA{120, 95, 70, 255})
	drawLineSet(img, surf.MajorPoints, surf.MajorVertices, project, color.RGBA{80, 55, 35, 255})
	drawLineSet(img, surf.BoundaryPoints, surf.BoundaryVertices, project, color.RGBA{60, 90, 170, 255})

	return img
}

// elevationShade maps a normalized elevation to a green-to-brown ramp
func elevationShade(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))

	low := [3]float64{110, 150, 95}
	high := [3]float64{190, 160, 120}

	return color.RGBA{
		uint8(low[0] + t*(high[0]-low[0])),
		uint8(low[1] + t*(high[1]-low[1])),
		uint8(low[2] + t*(high[2]-low[2])),
		255,
	}
}

// drawLineSet draws a flat point array with per-line vertex counts
func drawLineSet(img *image.RGBA, points []geometry.Vector3, counts []int32, project func(geometry.Vector3) (float64, float64), col color.RGBA) {
	offset := 0
	for _, count := range counts {
		segment := points[offset : offset+int(count)]
		offset += int(count)

		for i := 1; i < len(segment); i++ {
			x1, y1 := project(segment[i-1])
			x2, y2 := project(segment[i])
			drawLine(img, int(x1), int(y1), int(x2), int(y2), col)
		}
	}
}

// fillTriangle fills a triangle on an image using scanline algorithm
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	vertices := [][2]float64{
		{x1, y1},
		{x2, y2},
		{x3, y3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 = vertices[0][0], vertices[0][1]
	x2, y2 = vertices[1][0], vertices[1][1]
	x3, y3 = vertices[2][0], vertices[2][1]

	bounds := img.Bounds()

	// Scanline algorithm
	for y := int(math.Max(0, y1)); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xStart, xEnd float64

		// Find intersections with triangle edges
		intersections := make([]float64, 0, 2)

		// Edge 1-2
		if y1 != y2 {
			if fy >= y1 && fy <= y2 {
				t := (fy - y1) / (y2 - y1)
				intersections = append(intersections, x1+t*(x2-x1))
			}
		}

		// Edge 2-3
		if y2 != y3 {
			if fy >= y2 && fy <= y3 {
				t := (fy - y2) / (y3 - y2)
				intersections = append(intersections, x2+t*(x3-x2))
			}
		}

		// Edge 1-3
		if y1 != y3 {
			if fy >= y1 && fy <= y3 {
				t := (fy - y1) / (y3 - y1)
				intersections = append(intersections, x1+t*(x3-x1))
			}
		}

		if len(intersections) >= 2 {
			xStart = math.Min(intersections[0], intersections[1])
			xEnd = math.Max(intersections[0], intersections[1])

			// Clamp to image bounds
			xStart = math.Max(0, xStart)
			xEnd = math.Min(float64(bounds.Max.X-1), xEnd)

			// Draw horizontal line
			for x := int(xStart); x <= int(xEnd); x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
