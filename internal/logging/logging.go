// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSize    = 10 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

// Options controls where and how verbosely the logger writes
type Options struct {
	// Writer is the default sink; nil means stderr
	Writer io.Writer
	// LogFile sends logs to a rotating file instead of Writer
	LogFile string
	// Verbose lowers the level to Debug
	Verbose bool
}

// Configure builds the logger described by opts and installs it as the slog default.
// The returned closer releases the log file, if any.
func Configure(opts Options) (*slog.Logger, io.Closer) {
	var (
		writer io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		level            = slog.LevelWarn
	)

	if opts.Writer != nil {
		writer = opts.Writer
	}

	if opts.Verbose {
		level = slog.LevelDebug
	}

	if path := strings.TrimSpace(opts.LogFile); path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    defaultMaxSize,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAge,
			Compress:   true,
		}
		writer = lj
		closer = lj
		// A log file is only worth having with the detail in it
		if !opts.Verbose {
			level = slog.LevelInfo
		}
	}

	logger := New(writer, level)
	slog.SetDefault(logger)
	return logger, closer
}

// New returns a text logger writing to w at level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
