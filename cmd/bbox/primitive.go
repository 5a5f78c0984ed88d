package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/pkg/analysis"
	"github.com/philipparndt/gobbox/pkg/solid"
)

var primitiveSize string

var primitiveCmd = &cobra.Command{
	Use:   "primitive [" + strings.Join(solid.Kinds, "|") + "]",
	Short: "Display the bounding box of an sdfx primitive",
	Long: `Build a primitive solid centered at the origin and report its bounds.

--size is the full extent for a box. A sphere uses x as its diameter and a
cylinder uses x as its diameter and z as its height.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: solid.Kinds,
	RunE:      runPrimitive,
}

func init() {
	rootCmd.AddCommand(primitiveCmd)

	primitiveCmd.Flags().StringVarP(&primitiveSize, "size", "s", "1,1,1", "primitive size x,y,z")
}

func runPrimitive(cmd *cobra.Command, args []string) error {
	size, err := parseVector3(primitiveSize)
	if err != nil {
		return err
	}

	s, err := solid.Primitive(args[0], size)
	if err != nil {
		return err
	}

	report := analysis.Analyze(solid.Bounds(s))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Primitive: %s %s\n", args[0], size)
	if _, err := report.BoundingBox.WriteTo(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	printReport(out, report)
	return nil
}
