// Package logging builds the process slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/goliatone/go-dealer-dashboard/internal/config"
)

// Result holds the logger and the file it writes to, if any.
type Result struct {
	Logger *slog.Logger
	File   io.WriteCloser
}

// Close closes the log file if one was opened.
func (r *Result) Close() error {
	if r == nil || r.File == nil {
		return nil
	}
	return r.File.Close()
}

// New builds a logger writing to stderr, or to a rotating file when
// cfg.File is set.
func New(cfg config.LogConfig) (*Result, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return &Result{Logger: NewWithWriter(os.Stderr, cfg.Format, level)}, nil
	}
	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return &Result{
		Logger: NewWithWriter(writer, cfg.Format, level),
		File:   writer,
	}, nil
}

// NewWithWriter builds a logger on w. format is "json" or anything else for
// text.
func NewWithWriter(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
