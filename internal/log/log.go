// Package log wraps charmbracelet/log behind a small Config so both CLIs
// construct their structured logger the same way opnDossier's cmd package
// does: a named Config struct, a New constructor that can fail on a bad
// level string, and a Logger embedding the charm logger directly so
// callers keep its full method set.
package log

import (
	"fmt"
	"io"

	charmLog "github.com/charmbracelet/log"
)

// Config configures the application logger.
type Config struct {
	// Level is a charmbracelet/log level name: "debug", "info", "warn",
	// "error", or "fatal".
	Level string
	// Format is "text" or "json".
	Format          string
	Output          io.Writer
	ReportCaller    bool
	ReportTimestamp bool
}

// Logger wraps charmbracelet/log's Logger so config-diff/netform-replay-fixtures
// code can depend on this package instead of importing charmLog directly.
type Logger struct {
	*charmLog.Logger
}

// New builds a Logger from cfg, returning an error if Level doesn't parse.
func New(cfg Config) (*Logger, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	opts := charmLog.Options{
		ReportCaller:    cfg.ReportCaller,
		ReportTimestamp: cfg.ReportTimestamp,
	}
	if cfg.Format == "json" {
		opts.Formatter = charmLog.JSONFormatter
	}

	inner := charmLog.NewWithOptions(cfg.Output, opts)
	inner.SetLevel(level)
	return &Logger{Logger: inner}, nil
}
