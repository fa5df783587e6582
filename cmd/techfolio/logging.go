package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	logFileName = "techfolio.log"
	maxLogSize  = 10 * 1024 * 1024
)

// greeting is written once at startup
const greeting = "Hello, Developer! Interested in the code? Check out the GitHub link on the page"

// parseLevel maps a level name to a slog.Level; unknown names are info
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// debugLogging reports whether level turns the log file on
func debugLogging(level string) bool {
	return parseLevel(level) == slog.LevelDebug
}

// setupLogging directs slog to dir/techfolio.log when enabled and discards it otherwise
// The terminal owns stdout, so logs never go there. A file past maxLogSize is moved to .old
func setupLogging(dir, level string, enabled bool) *os.File {
	if !enabled {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, logPath+".old")
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: parseLevel(level)})))
	return logFile
}
