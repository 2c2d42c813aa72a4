package observability

import (
	"context"
	"log/slog"
	"time"
)

// slogSpan is a lightweight Span that routes span lifecycle and events
// through a structured slog.Logger. It keeps no global state; each span owns
// its own attribute slice.
type slogSpan struct {
	name      string
	startTime time.Time
	logger    *slog.Logger
	attrs     []Attribute
	status    StatusCode
	statusMsg string
}

// StartSpan begins a named slog-backed span, stores it in the returned
// context, and emits a debug event marking the start. End logs the elapsed
// duration at a level derived from the span status.
func StartSpan(ctx context.Context, logger *slog.Logger, name string, attrs ...Attribute) (context.Context, Span) {
	if logger == nil {
		logger = slog.Default()
	}
	span := &slogSpan{
		name:      name,
		startTime: time.Now(),
		logger:    logger,
		attrs:     attrs,
	}
	span.logger.Debug("span.start", span.logArgs()...)
	return ContextWithSpan(ctx, span), span
}

func (s *slogSpan) End() {
	args := append(s.logArgs(), slog.Duration("duration", time.Since(s.startTime)))
	if s.status == StatusError {
		s.logger.Error("span.end", append(args, slog.String("status", s.statusMsg))...)
		return
	}
	s.logger.Debug("span.end", args...)
}

func (s *slogSpan) SetAttributes(attrs ...Attribute) {
	s.attrs = append(s.attrs, attrs...)
}

func (s *slogSpan) SetStatus(code StatusCode, description string) {
	s.status = code
	s.statusMsg = description
}

func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.status = StatusError
	s.statusMsg = err.Error()
	s.logger.Error("span.error", append(s.logArgs(), slog.String("error", err.Error()))...)
}

func (s *slogSpan) AddEvent(name string, attrs ...Attribute) {
	args := []any{slog.String("span", s.name)}
	for _, a := range attrs {
		args = append(args, slog.Any(a.Key, a.Value))
	}
	s.logger.Debug(name, args...)
}

func (s *slogSpan) logArgs() []any {
	args := []any{slog.String("span", s.name)}
	for _, a := range s.attrs {
		args = append(args, slog.Any(a.Key, a.Value))
	}
	return args
}
