package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailscad/trails/pkg/alignment"
)

var alignFix bool

var alignCmd = &cobra.Command{
	Use:   "align [file]",
	Short: "Inspect an alignment and validate its curves",
	Long:  "Show the PIs and curves of an alignment and check that every curve's tangent legs fit on the adjoining tangent runs. With --fix, oversized radii are clamped and the file rewritten.",
	Args:  cobra.ExactArgs(1),
	Run:   runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().BoolVar(&alignFix, "fix", false, "Clamp oversized curve radii and rewrite the file")
}

func runAlign(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := alignment.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading alignment: %v\n", err)
		os.Exit(1)
	}

	pis := model.PICoords()
	curves := model.Curves()

	fmt.Println("Alignment")
	fmt.Println("=========")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("PIs: %d, curves: %d\n\n", len(pis), len(curves))

	for i, pi := range pis {
		kind := "PI"
		if i == 0 {
			kind = "start"
		} else if i == len(pis)-1 {
			kind = "end"
		}
		fmt.Printf("  %-5s (%.3f, %.3f, %.3f)\n", kind, pi.X, pi.Y, pi.Z)
	}
	fmt.Println()

	clamped := 0

	for i, c := range curves {
		leftTan, rightTan := 0.0, 0.0
		if i > 0 {
			leftTan = curves[i-1].Tangent
		}
		if i < len(curves)-1 {
			rightTan = curves[i+1].Tangent
		}

		fits := c.Fits(pis[i], pis[i+2], leftTan, rightTan)

		fmt.Printf("Curve %d at (%.3f, %.3f):\n", i, c.PI.X, c.PI.Y)
		fmt.Printf("  Radius: %.3f\n", c.Radius)
		fmt.Printf("  Delta: %.2f degrees\n", c.Delta*180/math.Pi)
		fmt.Printf("  Tangent: %.3f\n", c.Tangent)
		fmt.Printf("  Fits: %v\n\n", fits)

		if !fits && alignFix {
			c.ClampRadius(pis[i], pis[i+2], leftTan, rightTan)
			model.SetRadius(i, c.Radius)
			fmt.Printf("  Clamped radius to %.3f\n\n", c.Radius)
			clamped++
		}
	}

	if alignFix && clamped > 0 {
		if err := model.Save(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving alignment: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Clamped %d curves, rewrote %s\n", clamped, filename)
	}
}
