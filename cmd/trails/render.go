package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/pkg/viewer"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a plan view image of a surface",
	Long:  "Triangulate a point file and render a top-down, elevation shaded plan view with contour and boundary linework.",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addSurfaceFlags(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "plan.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1200, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 900, "Image height in pixels")
}

func runRender(cmd *cobra.Command, args []string) {
	filename := args[0]

	surf, _, err := buildSurface(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building surface: %v\n", err)
		os.Exit(1)
	}

	img := viewer.PlanImage(surf, renderWidth, renderHeight)

	out, err := os.Create(renderOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", renderOutput, renderWidth, renderHeight)
}
