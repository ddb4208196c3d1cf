package optionmenu

import (
	"log/slog"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
	"github.com/inappwebview/optionmenu/pkg/optionmenu/internal"
)

// LogOptions configures the shared loggers.
type LogOptions struct {
	Path  string `toml:"path"`  // Full path of the log file; empty logs to stdout only
	Level string `toml:"level"` // Application log level: debug, info, warn, error
}

// InitLogging applies opts. The internal logger stays at Error so embedders
// only see their own logs; OPTIONMENU_DEBUG lowers it to Debug. Call before
// the first log line for the log path to take effect.
func InitLogging(opts LogOptions) {
	if opts.Path != "" {
		internal.SetLogPath(opts.Path)
	}

	if constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if opts.Level != "" {
		internal.SetRawLogLevel(opts.Level)
	}
}

// CloseLogging closes the log file, if one was opened.
func CloseLogging() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the popup's own diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
