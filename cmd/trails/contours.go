package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/pkg/surface"
)

var contourOutput string

var contoursCmd = &cobra.Command{
	Use:   "contours [file]",
	Short: "Extract contour lines from a survey point file",
	Long:  "Triangulate a point file and extract contour line segments at the configured elevation interval. Major contours fall on every fifth interval.",
	Args:  cobra.ExactArgs(1),
	Run:   runContours,
}

func init() {
	rootCmd.AddCommand(contoursCmd)
	addSurfaceFlags(contoursCmd)

	contoursCmd.Flags().StringVarP(&contourOutput, "output", "o", "", "Write contour segments to a CSV file")
}

func runContours(cmd *cobra.Command, args []string) {
	filename := args[0]

	surf, _, err := buildSurface(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building surface: %v\n", err)
		os.Exit(1)
	}

	// Count segments per elevation level.
	levels := make(map[float64]int)
	order := make([]float64, 0)

	offset := 0
	for _, count := range surf.ContourVertices {
		level := surf.ContourPoints[offset].Z
		offset += int(count)

		if _, seen := levels[level]; !seen {
			order = append(order, level)
		}
		levels[level]++
	}

	fmt.Println("Contour Lines")
	fmt.Println("=============")
	fmt.Printf("Interval: %.3f minor, %.3f major\n", surf.ContourInterval, surf.MajorInterval)
	fmt.Printf("Segments: %d total, %d on major levels\n\n", len(surf.ContourVertices), len(surf.MajorVertices))

	for _, level := range order {
		fmt.Printf("  %10.3f  %d segments\n", level, levels[level])
	}

	if contourOutput != "" {
		if err := writeContourCSV(contourOutput, surf); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing contours: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", contourOutput)
	}
}

func writeContourCSV(filename string, surf *surface.Surface) error {
	var b strings.Builder
	b.WriteString("segment,x,y,z\n")

	offset := 0
	for i, count := range surf.ContourVertices {
		for _, p := range surf.ContourPoints[offset : offset+int(count)] {
			fmt.Fprintf(&b, "%d,%.6f,%.6f,%.6f\n", i, p.X, p.Y, p.Z)
		}
		offset += int(count)
	}

	return os.WriteFile(filename, []byte(b.String()), 0644)
}
