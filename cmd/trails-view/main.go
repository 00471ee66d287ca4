package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/internal/app"
	"github.com/trailscad/trails/version"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:   "trails-view <pointfile>",
	Short: "Interactive 3D terrain and alignment viewport",
	Long: `trails-view opens a survey point file in an interactive 3D viewport:
the triangulated surface with its contours and boundary, and optionally a
road alignment whose PIs can be dragged while curve geometry revalidates.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts.PointFile = args[0]
		app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.AlignFile, "align", "a", "", "Alignment file to edit")
	rootCmd.Flags().Float64Var(&opts.MaxLength, "max-length", 0, "Maximum triangle edge length (0 = default)")
	rootCmd.Flags().Float64Var(&opts.MaxAngle, "max-angle", 0, "Maximum triangle interior angle in degrees (0 = default)")
	rootCmd.Flags().Float64Var(&opts.ContourInterval, "interval", 0, "Minor contour interval (0 = default)")
	rootCmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload when the point file changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
