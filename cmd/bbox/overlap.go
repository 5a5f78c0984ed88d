package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/pkg/analysis"
)

var overlapTolerance float64

var overlapCmd = &cobra.Command{
	Use:   "overlap [file-a] [file-b]",
	Short: "Test whether the bounding boxes of two models overlap",
	Long: `Compare the bounding boxes of two model files.

The plain test treats touching boxes as overlapping. The tolerance test is
strict: boxes must interpenetrate by more than --tolerance on every axis.`,
	Args: cobra.ExactArgs(2),
	RunE: runOverlap,
}

func init() {
	rootCmd.AddCommand(overlapCmd)

	overlapCmd.Flags().Float64VarP(&overlapTolerance, "tolerance", "t", 0, "penetration required by the strict test (default from config)")
}

func runOverlap(cmd *cobra.Command, args []string) error {
	a, err := loadReport(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	b, err := loadReport(cmd.Context(), args[1])
	if err != nil {
		return err
	}

	tolerance := cfg.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tolerance = overlapTolerance
	}

	res := analysis.Compare(a.BoundingBox, b.BoundingBox, tolerance)
	p := cfg.Precision

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "A: %s\n", res.A)
	fmt.Fprintf(out, "B: %s\n", res.B)
	fmt.Fprintf(out, "Overlap: %t\n", res.Overlap)
	fmt.Fprintf(out, "Overlap (tolerance %.*f): %t\n", p, res.Tolerance, res.OverlapTolerance)
	fmt.Fprintf(out, "A contains B: %t\n", res.AContainsB)
	fmt.Fprintf(out, "B contains A: %t\n", res.BContainsA)
	fmt.Fprintf(out, "Union: %s\n", res.Union)
	return nil
}
