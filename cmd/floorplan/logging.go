package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/logging"
)

const (
	logDir      = "logs"
	logFileName = "floorplan.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes all loggers to logs/floorplan.log when debug is set, and discards them otherwise
// The terminal UI owns stdout/stderr, so nothing may be written there while it runs
func setupLogging(debug bool) *os.File {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logging.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logging.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("floorplan-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logging.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetOutput(f)
	stdlog.SetOutput(f)
	return f
}
