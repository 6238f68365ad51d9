package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a stderr logger at level. Debug logging adds the
// caller.
func SetupLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		ReportCaller:    level <= log.DebugLevel,
	})
}
