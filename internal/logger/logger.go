// Package logger carries the structured logger for gradient checks.
//
// The loss functions are pure and never log.  gradcheck.Sparse reads its
// logger from the context and writes one debug record per finite-difference
// probe plus a pass/fail summary keyed by the report id.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is what gradcheck logs through.  Tests install Text or Discard
// with WithContext to capture or silence probe records.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by the given handler.
func New(handler slog.Handler) Logger {
	return &slogLogger{l: slog.New(handler)}
}

// Default is used when the context carries no logger: info level to
// stderr, so per-probe debug records stay quiet and only the summary shows.
func Default() Logger {
	return Text(os.Stderr, slog.LevelInfo)
}

// Text emits key=value lines, e.g. "probe row=3 col=1 rel_error=2e-09".
func Text(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// JSON emits one object per record, for feeding check runs to log tooling.
func JSON(w io.Writer, level slog.Level) Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

// Discard drops every record.  Property tests that run many checks use it.
func Discard() Logger {
	return New(slog.DiscardHandler)
}

// FromContext returns the Logger installed by WithContext, or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

// WithContext returns a copy of ctx whose gradient checks log to l.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

func (s *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{l: s.l.WithGroup(name)}
}
