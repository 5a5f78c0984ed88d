package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bbox version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bbox %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
