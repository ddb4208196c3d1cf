package internal

import (
	"context"
	"log/slog"
	"testing"
)

func TestInternalLoggerDefaultsToError(t *testing.T) {
	logger := GetInternalLogger()
	ctx := context.Background()

	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("internal logger enabled at Info by default")
	}
	if !logger.Enabled(ctx, slog.LevelError) {
		t.Error("internal logger disabled at Error")
	}

	SetInternalLogLevel(slog.LevelDebug)
	defer SetInternalLogLevel(slog.LevelError)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		t.Error("SetInternalLogLevel(Debug) had no effect")
	}
}
