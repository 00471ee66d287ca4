package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/pkg/alignment"
	"github.com/trailscad/trails/pkg/section"
)

var (
	sectionAlign    string
	sectionInterval float64
	sectionWidth    float64
	sectionStep     float64
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "Cut cross sections along an alignment",
	Long:  "Triangulate a point file and sample ground cross sections perpendicular to an alignment at a fixed station interval.",
	Args:  cobra.ExactArgs(1),
	Run:   runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	addSurfaceFlags(sectionsCmd)

	sectionsCmd.Flags().StringVarP(&sectionAlign, "align", "a", "", "Alignment file (required)")
	sectionsCmd.Flags().Float64Var(&sectionInterval, "station", 10, "Station interval along the alignment")
	sectionsCmd.Flags().Float64Var(&sectionWidth, "width", 20, "Total section width across the centreline")
	sectionsCmd.Flags().Float64Var(&sectionStep, "step", 1, "Offset step across the section")
	sectionsCmd.MarkFlagRequired("align")
}

func runSections(cmd *cobra.Command, args []string) {
	filename := args[0]

	surf, _, err := buildSurface(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building surface: %v\n", err)
		os.Exit(1)
	}

	model, err := alignment.Load(sectionAlign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading alignment: %v\n", err)
		os.Exit(1)
	}

	sections, err := section.Extract(surf, model, sectionInterval, sectionWidth, sectionStep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting sections: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cross Sections")
	fmt.Println("==============")
	fmt.Printf("Alignment: %s\n", sectionAlign)
	fmt.Printf("Stations: %d at %.3f spacing\n\n", len(sections), sectionInterval)

	for _, sec := range sections {
		fmt.Printf("Station %.3f at (%.3f, %.3f):\n", sec.Station, sec.Origin.X, sec.Origin.Y)

		if len(sec.Points) == 0 {
			fmt.Println("  off surface")
			continue
		}

		for _, p := range sec.Points {
			fmt.Printf("  %8.3f  %10.3f\n", p.Offset, p.Elevation)
		}
		fmt.Println()
	}
}
