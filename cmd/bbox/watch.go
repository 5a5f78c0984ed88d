package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gobbox/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-run info whenever a model file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	report := func() {
		if err := runInfo(cmd, []string{filename}); err != nil {
			log.WithError(err).WithField("file", filename).Error("analysis failed")
		}
		fmt.Fprintln(out)
	}

	fw, err := watcher.New(cfg.Debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	files, err := watchedFiles(filename)
	if err != nil {
		return err
	}
	if err := fw.Watch(files, func(string) { report() }); err != nil {
		return err
	}

	report()
	log.WithFields(log.Fields{"file": filename, "watched": len(files)}).Info("watching for changes, press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := fw.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
