package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/pkg/pointfile"
	"github.com/trailscad/trails/pkg/surface"
	"github.com/trailscad/trails/version"
)

var rootCmd = &cobra.Command{
	Use:   "trails",
	Short: "A CLI tool for terrain surfaces and road alignments",
	Long: `trails is a command-line tool for civil terrain modelling. It builds
triangulated surfaces from survey point files, filters and contours them,
cuts cross sections along road alignments, and inspects alignment curve
geometry.`,
	Version: version.GetFullVersion(),
}

var (
	maxLength       float64
	maxAngle        float64
	contourInterval float64
)

// addSurfaceFlags registers the triangulation flags shared by the
// surface-reading commands
func addSurfaceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&maxLength, "max-length", 0, "Maximum triangle edge length (0 = default)")
	cmd.Flags().Float64Var(&maxAngle, "max-angle", 0, "Maximum triangle interior angle in degrees (0 = default)")
	cmd.Flags().Float64Var(&contourInterval, "interval", 0, "Minor contour interval (0 = default)")
}

// buildSurface parses a point file and triangulates it with the shared flags
func buildSurface(filename string) (*surface.Surface, *pointfile.File, error) {
	f, err := pointfile.Parse(filename)
	if err != nil {
		return nil, nil, err
	}

	surf, err := surface.New(f.Points)
	if err != nil {
		return nil, nil, err
	}

	if maxLength > 0 {
		if err := surf.SetMaxLength(maxLength); err != nil {
			return nil, nil, err
		}
	}
	if maxAngle > 0 {
		if err := surf.SetMaxAngle(maxAngle); err != nil {
			return nil, nil, err
		}
	}
	if contourInterval > 0 {
		if err := surf.SetContourInterval(contourInterval); err != nil {
			return nil, nil, err
		}
	}

	return surf, f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
