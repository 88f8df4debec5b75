// Package logging owns the process-wide zerolog output
//
// Packages create their module sub-loggers at init time, which copies the global
// writer. Importing this package first makes that writer a switch the binary can
// point at a file, or at io.Discard while the terminal UI owns stderr.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output = &switchWriter{w: os.Stderr}

func init() {
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// switchWriter forwards to a replaceable writer
type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

// SetOutput redirects every logger in the process, nil discards
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	output.mu.Lock()
	output.w = w
	output.mu.Unlock()
}

// Output returns the current destination
func Output() io.Writer {
	output.mu.RLock()
	defer output.mu.RUnlock()
	return output.w
}

// Module returns a sub-logger tagged with module=name
func Module(name string) zerolog.Logger {
	return log.With().Str("module", name).Logger()
}
