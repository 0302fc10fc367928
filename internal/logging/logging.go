// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging constructs the application logger. The logger is built
// once in the CLI entrypoint and handed to the pieces that need it; there
// is deliberately no package-level logger instance.
package logging

import (
	"io"
	"time"

	clog "github.com/charmbracelet/log"
)

// New returns a leveled, timestamped logger writing to w. With debug set,
// debug-level messages are emitted as well.
func New(w io.Writer, debug bool) *clog.Logger {
	logger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	if debug {
		logger.SetLevel(clog.DebugLevel)
	}
	return logger
}
