// Package logging provides the shared zerolog logger. The terminal belongs to
// the UI, so entries are written to a log file rather than stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "zeta.log"

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard)
	sink   io.Closer
)

// L returns the current logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Configure opens path for appending and routes all entries there. Empty
// values fall back to DefaultPath. Missing directories are created.
func Configure(path string, debug bool) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
	}
	sink = f
	logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return nil
}

// SetOutput points the logger at w without taking ownership of it.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
	}
	logger = zerolog.New(io.Discard)
}

// DefaultPath is <user cache dir>/zeta/zeta.log, or the temp dir when no
// cache dir is available.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "zeta", defaultLogFile)
}
