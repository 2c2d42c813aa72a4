package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aipim/aipim/providers/ai"
)

// countingTransport counts round trips so tests can assert that rejected
// content never reaches the network.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return http.DefaultTransport.RoundTrip(req)
}

func TestImageContentIsRejectedBeforeNetwork(t *testing.T) {
	transport := &countingTransport{}
	p := New().WithAPIKey("test-key").WithHttpClient(&http.Client{Transport: transport})

	_, err := ai.Send(context.Background(), p, ai.ChatRequest{
		Model: "deepseek-chat",
		Parts: []ai.ContentPart{
			ai.TextPart("what is this?"),
			ai.ImagePart("aGVsbG8=", "image/png"),
		},
	})

	if !ai.IsKind(err, ai.ErrorKindUnsupportedContent) {
		t.Fatalf("expected unsupported_content error, got %v", err)
	}
	if transport.calls != 0 {
		t.Errorf("expected zero network calls, got %d", transport.calls)
	}
}

func TestPrepareRequestJoinsTextParts(t *testing.T) {
	p := New().WithAPIKey("test-key").(*DeepseekProvider)

	wire, err := p.PrepareRequest(ai.ChatRequest{
		Model: "deepseek-chat",
		Parts: []ai.ContentPart{ai.TextPart("first"), ai.TextPart("second")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var req chatCompletionsRequest
	if err := json.Unmarshal(wire.Body, &req); err != nil {
		t.Fatalf("failed to decode wire body: %v", err)
	}

	if req.Messages[0].Content != "first\n\nsecond" {
		t.Errorf("expected joined text content, got %q", req.Messages[0].Content)
	}
}

func TestSendWithValidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ds-1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "42"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 1, "total_tokens": 8}
		}`))
	}))
	defer server.Close()

	p := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	response, err := ai.Send(context.Background(), p, ai.ChatRequest{
		Model: "deepseek-chat",
		Parts: []ai.ContentPart{ai.TextPart("meaning of life?")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Content != "42" {
		t.Errorf("expected content '42', got %q", response.Content)
	}
}

func TestParseResponseWithErrorBody(t *testing.T) {
	p := New().WithAPIKey("test-key").(*DeepseekProvider)

	wire := &ai.WireResponse{
		StatusCode: 200,
		Body:       []byte(`{"error": {"message": "insufficient balance", "type": "invalid_request_error"}}`),
	}

	_, err := p.ParseResponse(wire)
	if !ai.IsKind(err, ai.ErrorKindParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
