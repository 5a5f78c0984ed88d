// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Setup sends log output to w at the named level
func Setup(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}
