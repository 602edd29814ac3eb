// Package common holds process-wide helpers shared by all binaries:
// logger setup and build metadata.
package common

import (
	"log/slog"
	"os"
)

// PackageName tags metrics and logs emitted by this service.
const PackageName = "vehicle_registry"

// Version is set at build time via -ldflags.
var Version = "dev"

// LoggingOpts configures the process logger.
type LoggingOpts struct {
	// Debug enables debug-level messages.
	Debug bool

	// JSON switches the handler to JSON output (for log collectors).
	JSON bool

	// Service is added as a 'service' tag to every message.
	Service string

	// Version is added as a 'version' tag to every message.
	Version string
}

// SetupLogger creates the process-wide slog logger according to opts.
func SetupLogger(opts *LoggingOpts) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	logger := slog.New(handler)
	if opts.Service != "" {
		logger = logger.With("service", opts.Service)
	}
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	return logger
}
