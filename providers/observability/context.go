package observability

import "context"

type contextKey struct{}

var spanKey contextKey

// ContextWithSpan returns a copy of ctx carrying span. Code downstream of a
// send operation retrieves it with [SpanFromContext] to attach events.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	return context.WithValue(ctx, spanKey, span)
}

// SpanFromContext returns the span stored in ctx, or nil when the caller did
// not opt in to tracing. Callers must nil-check the result.
func SpanFromContext(ctx context.Context) Span {
	span, _ := ctx.Value(spanKey).(Span)
	return span
}
