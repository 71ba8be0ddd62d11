package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

func New() Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter is mainly for tests that want to capture or discard output.
func NewWithWriter(w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo, // minimum log level
		AddSource: true,           // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
