package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesKindAndProvider(t *testing.T) {
	err := Errorf(ErrorKindParse, "no choices in response").WithProvider("openai")

	want := "parse (openai): no choices in response"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"direct error", Errorf(ErrorKindUnknownModel, "nope"), ErrorKindUnknownModel},
		{"wrapped error", fmt.Errorf("outer: %w", Errorf(ErrorKindNetwork, "down")), ErrorKindNetwork},
		{"foreign error", errors.New("plain"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("expected kind %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := Errorf(ErrorKindUnsupportedContent, "images not supported")

	if !IsKind(err, ErrorKindUnsupportedContent) {
		t.Error("expected IsKind to match the error's own kind")
	}
	if IsKind(err, ErrorKindNetwork) {
		t.Error("expected IsKind to reject a different kind")
	}
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrorKindNetwork, "error sending request", cause)

	if !errors.Is(err, cause) {
		t.Error("expected the cause to remain reachable through errors.Is")
	}
}

func TestWithResponseAttachesDiagnostics(t *testing.T) {
	err := Errorf(ErrorKindNetwork, "non-2xx status 500").WithResponse(500, "internal error")

	if err.Status != 500 {
		t.Errorf("expected status 500, got %d", err.Status)
	}
	if err.Body != "internal error" {
		t.Errorf("expected body excerpt, got %q", err.Body)
	}
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"context cancelled", context.Canceled, ErrorKindCancelled},
		{"wrapped cancellation", fmt.Errorf("Do: %w", context.Canceled), ErrorKindCancelled},
		{"deadline exceeded", context.DeadlineExceeded, ErrorKindNetwork},
		{"plain transport failure", errors.New("dial tcp: connection refused"), ErrorKindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTransportError(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
