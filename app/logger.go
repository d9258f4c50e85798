package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/pathutil"
)

// newLogger returns a JSON logger that writes to the rotating log file.
func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})

	return slog.New(h), w
}
