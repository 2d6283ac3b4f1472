package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

// DefaultLogger writes text records to stderr, never to the terminal the
// editor draws on.
var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

// Discard drops every record. Used when no log file is configured.
var Discard = New(Options{io.Discard, ErrorLevel, TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = io.Discard
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(buffer, handlerOpts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(buffer, handlerOpts)
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// With returns a logger that adds args to every record of l. Loggers that
// are not built by New are returned unchanged.
func With(l Logger, args ...any) Logger {
	if sl, ok := l.(*logger); ok {
		return &logger{Logger: sl.Logger.With(args...)}
	}
	return l
}
