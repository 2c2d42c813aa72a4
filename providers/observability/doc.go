// Package observability provides a minimal tracing surface for the send
// pipeline: a [Span] interface with key-value [Attribute]s, context
// propagation via [ContextWithSpan] and [SpanFromContext], and an
// slog-backed implementation created by [StartSpan].
//
// Tracing is opt-in. When the caller never starts a span, every lookup
// returns nil and the pipeline pays only a context-value read.
package observability
