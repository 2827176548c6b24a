// Package logging provides the structured logger for bugform.
//
// The TUI owns the terminal, so log output goes to a file. Debug level is
// enabled with --debug or by setting BUGFORM_DEBUG:
//
//	BUGFORM_DEBUG=1 bugform --blocks "1234, 1240"
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const envDebug = "BUGFORM_DEBUG"

var (
	mu     sync.RWMutex
	global = zerolog.Nop()
)

// DebugFromEnv reports whether BUGFORM_DEBUG is set.
func DebugFromEnv() bool {
	return os.Getenv(envDebug) != ""
}

// New builds a logger writing console-formatted lines to w.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
}

// Setup opens path for appending and installs it as the global logger. The
// returned closer must be closed on exit.
func Setup(path string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	Set(New(f, debug))
	return f, nil
}

// Set replaces the global logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// L returns a copy of the global logger. It discards everything until Setup
// or Set. The pointer lets callers chain level methods directly.
func L() *zerolog.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	return &l
}

// RetryLogger adapts a zerolog logger to retryablehttp's LeveledLogger.
type RetryLogger struct {
	Log zerolog.Logger
}

func (r RetryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.Log.Error().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Info(msg string, keysAndValues ...interface{}) {
	r.Log.Debug().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.Log.Debug().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.Log.Warn().Fields(keysAndValues).Msg(msg)
}
