package ai

import (
	"context"
	"net/http"
)

// Provider is the capability interface every backend implementation must
// satisfy. A request moves through three stages, each with its own failure
// classification:
//
//	PrepareRequest  canonical -> wire      (unsupported_content, configuration)
//	Dispatch        wire -> raw response   (network, cancelled)
//	ParseResponse   raw -> canonical       (parse)
//
// Dispatch performs exactly one network call per invocation; the pipeline
// never retries. ParseResponse is a pure function of its input, so parsing
// the same WireResponse twice yields identical results.
type Provider interface {
	// PrepareRequest serializes the canonical request into the provider's
	// wire format. Providers that cannot represent a given content part
	// (e.g. an image sent to a text-only backend) fail here with
	// ErrorKindUnsupportedContent, before any network traffic.
	PrepareRequest(request ChatRequest) (*WireRequest, error)

	// Dispatch issues the outbound HTTP call. Non-2xx statuses are
	// classified as ErrorKindNetwork; context cancellation aborts the
	// in-flight call and surfaces ErrorKindCancelled.
	Dispatch(ctx context.Context, wire *WireRequest) (*WireResponse, error)

	// ParseResponse extracts the canonical response from the raw payload.
	// Missing required fields, or a provider error object embedded in a
	// 2xx body, fail with ErrorKindParse carrying a body excerpt.
	ParseResponse(wire *WireResponse) (*ChatResponse, error)

	// Name identifies the provider in errors and telemetry.
	Name() string

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}

// Send runs the full three-stage pipeline against a provider. It is the
// single entry point used by the client; every error it returns carries one
// ErrorKind classification.
func Send(ctx context.Context, provider Provider, request ChatRequest) (*ChatResponse, error) {
	wireRequest, err := provider.PrepareRequest(request)
	if err != nil {
		return nil, err
	}

	wireResponse, err := provider.Dispatch(ctx, wireRequest)
	if err != nil {
		return nil, err
	}

	return provider.ParseResponse(wireResponse)
}
