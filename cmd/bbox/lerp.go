package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/pkg/geometry"
)

var (
	boxMin string
	boxMax string
)

var lerpCmd = &cobra.Command{
	Use:   "lerp [t]",
	Short: "Interpolate a point inside a box",
	Long: `Map per-axis parameters to a point between the box corners.
Parameters outside [0,1] extrapolate. Two components select a 2D box.`,
	Example: "  bbox lerp --min 0,0,0 --max 2,4,6 0.5,0.5,1",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoxMapping(cmd, args[0], false)
	},
}

var offsetCmd = &cobra.Command{
	Use:     "offset [point]",
	Short:   "Express a point relative to a box",
	Long:    "Return the per-axis parameters of a point inside a box, the inverse of lerp.",
	Example: "  bbox offset --min 0,0 --max 2,4 1,1",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoxMapping(cmd, args[0], true)
	},
}

func init() {
	for _, c := range []*cobra.Command{lerpCmd, offsetCmd} {
		c.Flags().StringVar(&boxMin, "min", "", "first box corner, x,y[,z]")
		c.Flags().StringVar(&boxMax, "max", "", "opposite box corner, x,y[,z]")
		c.MarkFlagRequired("min")
		c.MarkFlagRequired("max")
		rootCmd.AddCommand(c)
	}
}

func runBoxMapping(cmd *cobra.Command, arg string, offset bool) error {
	corner1, err := parseComponents(boxMin)
	if err != nil {
		return err
	}
	corner2, err := parseComponents(boxMax)
	if err != nil {
		return err
	}
	v, err := parseComponents(arg)
	if err != nil {
		return err
	}
	if len(corner1) != len(corner2) || len(corner1) != len(v) {
		return errors.Errorf("--min, --max and the argument must have the same number of components")
	}

	var (
		box    fmt.Stringer
		result fmt.Stringer
	)
	if len(v) == 2 {
		b := geometry.FromCorners(geometry.NewVector2(corner1[0], corner1[1]), geometry.NewVector2(corner2[0], corner2[1]))
		box, result = b, mapPoint(b, geometry.NewVector2(v[0], v[1]), offset)
	} else {
		b := geometry.FromCorners(geometry.NewVector3(corner1[0], corner1[1], corner1[2]), geometry.NewVector3(corner2[0], corner2[1], corner2[2]))
		box, result = b, mapPoint(b, geometry.NewVector3(v[0], v[1], v[2]), offset)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Box: %s\n", box)
	fmt.Fprintf(out, "Result: %s\n", result)
	return nil
}

func mapPoint[V geometry.Point[V]](b geometry.Bounds[V], v V, offset bool) V {
	if offset {
		return b.Offset(v)
	}
	return b.LerpPt(v)
}
