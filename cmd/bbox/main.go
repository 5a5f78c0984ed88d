package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/internal/config"
	"github.com/philipparndt/gobbox/internal/logging"
	"github.com/philipparndt/gobbox/version"
)

var (
	configPath string
	logLevel   string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "bbox",
	Short: "Inspect axis-aligned bounding boxes of 3D models",
	Long: `bbox computes axis-aligned bounding boxes of STL, glTF and OpenSCAD
models and sdfx primitives, and answers the usual box queries: dimensions, surface area,
volume, overlap, containment and interpolation inside a box.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		return logging.Setup(cmd.ErrOrStderr(), level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
