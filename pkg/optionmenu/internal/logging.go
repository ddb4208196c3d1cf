package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFilename = "optionmenu.log"

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logOutput io.Writer = os.Stdout

	appLog      = &leveledLogger{}
	internalLog = &leveledLogger{}
)

func init() {
	internalLog.level.Set(slog.LevelError)
}

// leveledLogger is a lazily built JSON logger with its own adjustable level.
type leveledLogger struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
}

func (l *leveledLogger) get() *slog.Logger {
	l.once.Do(func() {
		setup()
		l.logger = slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
			Level: &l.level,
		}))
	})
	return l.logger
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. An empty path logs to stdout only.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		target := logPath
		if strings.HasSuffix(target, string(os.PathSeparator)) {
			target = filepath.Join(target, defaultLogFilename)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console-only.
			return
		}

		logFile = f
		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLog.get()
}

// GetInternalLogger returns the logger used by the popup itself.
// It logs at Error until SetInternalLogLevel changes it.
func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	appLog.get()
	appLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.get()
	internalLog.level.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is Info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
