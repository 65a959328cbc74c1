package config

import (
	"io"
	"log/slog"
	"time"

	console "github.com/phsym/console-slog"
)

// NewLogger builds the logger described by c, writing to w.
func NewLogger(c LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var h slog.Handler
	switch c.Format {
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    c.NoColor,
		})
	}
	return slog.New(h), nil
}
