// Package logger provides structured logging functionality
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/avivilloz/commonutils/internal/constants"
)

// Logger wraps slog.Logger for application-wide logging
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text, json
	Output io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global *Logger
)

// ParseLevel maps a level name to a slog.Level, falling back to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case constants.LogLevelDebug:
		return slog.LevelDebug
	case constants.LogLevelInfo:
		return slog.LevelInfo
	case constants.LogLevelWarn:
		return slog.LevelWarn
	case constants.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	// Stdout belongs to command output
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.Format == constants.LogFormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With("component", component),
	}
}

// WithOp returns a logger with operation context attributes
func (l *Logger) WithOp(op, path string) *Logger {
	return &Logger{
		Logger: l.With("op", op, "path", path),
	}
}

// WithTarget returns a logger with a destination path attribute
func (l *Logger) WithTarget(dst string) *Logger {
	return &Logger{
		Logger: l.With("dst", dst),
	}
}

// Default returns a default logger for quick usage
func Default() *Logger {
	return New(Config{
		Level:  constants.DefaultLogLevel,
		Format: constants.DefaultLogFormat,
	})
}

// SetDefault installs l as the process-wide logger returned by L.
func SetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// L returns the process-wide logger, creating a default one on first use.
func L() *Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = Default()
	}
	return global
}
