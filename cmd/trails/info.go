package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a survey point file",
	Long:  "Triangulate a point file and show surface statistics including point count, triangle counts, extents and contour totals.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addSurfaceFlags(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	surf, f, err := buildSurface(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building surface: %v\n", err)
		os.Exit(1)
	}

	min, max := f.Bounds()
	size := max.Sub(min)

	fmt.Println("Surface Information")
	fmt.Println("===================")
	if f.Name != "" {
		fmt.Printf("Name: %s\n", f.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Surface Statistics:")
	fmt.Printf("  Points: %d\n", f.PointCount())
	fmt.Printf("  Delaunay triangles: %d\n", len(surf.Delaunay)/3)
	fmt.Printf("  Filtered triangles: %d\n", len(surf.Triangles)/3)
	fmt.Printf("  Contour lines: %d minor, %d major\n", len(surf.ContourVertices), len(surf.MajorVertices))
	fmt.Printf("  Boundary loops: %d\n\n", len(surf.BoundaryVertices))

	fmt.Println("Extents:")
	fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", min.X, min.Y, min.Z)
	fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n", max.X, max.Y, max.Z)
	fmt.Printf("  Size: %.3f x %.3f, relief %.3f\n\n", size.X, size.Y, size.Z)

	fmt.Println("Filters:")
	fmt.Printf("  Max edge length: %.3f\n", surf.MaxLength)
	fmt.Printf("  Max interior angle: %.1f degrees\n", surf.MaxAngle)
	fmt.Printf("  Contour interval: %.3f minor, %.3f major\n", surf.ContourInterval, surf.MajorInterval)
}
