package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the bounding box of a model file",
	Long:  "Show the bounding box of an STL, glTF or OpenSCAD file with its dimensions, area, volume and radii.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	report, err := loadReport(cmd.Context(), filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s\n", filename)
	if _, err := report.BoundingBox.WriteTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	printReport(out, report)
	return nil
}
