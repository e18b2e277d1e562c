package logger

import (
	"log/slog"
)

// slogAdapter implements AppLogger on top of *slog.Logger.
type slogAdapter struct {
	adaptee *slog.Logger
}

// NewSlogAdapter wraps slogLogger; nil falls back to slog.Default().
func NewSlogAdapter(slogLogger *slog.Logger) AppLogger {
	if slogLogger == nil {
		slogLogger = slog.Default()
	}
	return &slogAdapter{adaptee: slogLogger}
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.adaptee.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.adaptee.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.adaptee.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.adaptee.Error(msg, args...) }

// With returns a new AppLogger with the given arguments added to the context.
func (s *slogAdapter) With(args ...any) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.With(args...)}
}
