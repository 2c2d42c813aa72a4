package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the pipeline can produce. Each error
// returned to a caller carries exactly one kind; nothing is retried or
// swallowed internally.
type ErrorKind string

const (
	// ErrorKindUnknownModel means the registry has no provider for the
	// requested model identifier. No network call is made.
	ErrorKindUnknownModel ErrorKind = "unknown_model"
	// ErrorKindUnsupportedContent means the resolved provider cannot
	// serialize one of the supplied content parts. No network call is made.
	ErrorKindUnsupportedContent ErrorKind = "unsupported_content"
	// ErrorKindConfiguration means the provider is missing required
	// configuration, such as an API key. No network call is made.
	ErrorKindConfiguration ErrorKind = "configuration"
	// ErrorKindNetwork is a transport-level failure: connection refused,
	// DNS failure, timeout, or a non-2xx HTTP status.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindParse means the provider's body could not be interpreted as
	// a valid success payload, including an application-level error object
	// delivered under HTTP 200.
	ErrorKindParse ErrorKind = "parse"
	// ErrorKindCancelled means the calling context withdrew while the
	// request was in flight.
	ErrorKindCancelled ErrorKind = "cancelled"
	// ErrorKindEmptyMessage means send was attempted with zero content parts.
	ErrorKindEmptyMessage ErrorKind = "empty_message"
	// ErrorKindBuilderReused means send was called a second time on a
	// single-use message builder.
	ErrorKindBuilderReused ErrorKind = "builder_reused"
)

// Error is the single error type surfaced by the pipeline. It is inspectable
// via errors.As, or more conveniently via [KindOf] and [IsKind].
type Error struct {
	Kind     ErrorKind
	Provider string // Provider name, when the failure is attributable to one
	Status   int    // HTTP status, when a response was received
	Body     string // Response body excerpt, for diagnosis
	msg      string
	cause    error
}

func (e *Error) Error() string {
	s := string(e.Kind)
	if e.Provider != "" {
		s += " (" + e.Provider + ")"
	}
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.cause }

// Errorf builds a classified error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error without losing it; the cause
// remains reachable through errors.Unwrap.
func WrapError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}

// WithProvider tags the error with the provider it originated from.
func (e *Error) WithProvider(name string) *Error {
	e.Provider = name
	return e
}

// WithResponse attaches the HTTP status and a body excerpt for diagnosis.
func (e *Error) WithResponse(status int, body string) *Error {
	e.Status = status
	e.Body = body
	return e
}

// KindOf extracts the classification of err. It returns the empty string for
// nil errors and for errors that did not originate from this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// ClassifyTransportError maps a failed http.Client round trip onto the error
// taxonomy: context cancellation becomes ErrorKindCancelled; deadlines, net
// timeouts and every other transport failure become ErrorKindNetwork.
func ClassifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.Canceled) {
		return ErrorKindCancelled
	}
	return ErrorKindNetwork
}
