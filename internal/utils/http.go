package utils

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aipim/aipim/providers/ai"
	"github.com/aipim/aipim/providers/observability"
)

// Dispatch performs one HTTP round trip for a prepared wire request and
// returns the raw wire response. It is the shared transport used by every
// provider's Dispatch implementation.
//
// Classification contract:
//   - context cancellation  -> ai.ErrorKindCancelled
//   - any transport failure -> ai.ErrorKindNetwork (deadlines included)
//   - non-2xx status        -> ai.ErrorKindNetwork with status and body excerpt
//
// Exactly one network call is made per invocation; there are no retries at
// this layer. Each request is tagged with a generated X-Request-Id header so
// failures can be correlated with provider-side logs.
func Dispatch(ctx context.Context, client *http.Client, providerName string, wire *ai.WireRequest) (*ai.WireResponse, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, wire.Method, wire.URL, bytes.NewReader(wire.Body))
	if err != nil {
		return nil, ai.WrapError(ai.ErrorKindNetwork, "error creating request", err).WithProvider(providerName)
	}

	for key, values := range wire.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, wire.Method),
			observability.String(observability.AttrHTTPURL, wire.URL),
			observability.String(observability.AttrHTTPRequestID, requestID),
			observability.Int(observability.AttrHTTPRequestBodySize, len(wire.Body)),
		)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		kind := ai.ClassifyTransportError(err)
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return nil, ai.WrapError(kind, "error sending request", err).WithProvider(providerName)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			// Log the close error, but don't override the main error
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", wire.URL)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		kind := ai.ClassifyTransportError(err)
		return nil, ai.WrapError(kind, "error reading response body", err).
			WithProvider(providerName).
			WithResponse(res.StatusCode, "")
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, ai.Errorf(ai.ErrorKindNetwork, "non-2xx status %d", res.StatusCode).
			WithProvider(providerName).
			WithResponse(res.StatusCode, TruncateString(string(respBody), DefaultMaxStringLength))
	}

	return &ai.WireResponse{StatusCode: res.StatusCode, Body: respBody}, nil
}
