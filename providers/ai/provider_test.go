package ai

import (
	"context"
	"net/http"
	"testing"
)

// stageProvider records which pipeline stages ran and can be told to fail at
// any of them.
type stageProvider struct {
	prepareErr  error
	dispatchErr error
	parseErr    error

	prepared   int
	dispatched int
	parsed     int
}

func (p *stageProvider) Name() string { return "stage" }

func (p *stageProvider) PrepareRequest(request ChatRequest) (*WireRequest, error) {
	p.prepared++
	if p.prepareErr != nil {
		return nil, p.prepareErr
	}
	return &WireRequest{Method: http.MethodPost, URL: "http://test", Body: []byte("{}")}, nil
}

func (p *stageProvider) Dispatch(ctx context.Context, wire *WireRequest) (*WireResponse, error) {
	p.dispatched++
	if p.dispatchErr != nil {
		return nil, p.dispatchErr
	}
	return &WireResponse{StatusCode: 200, Body: []byte(`{"content":"ok"}`)}, nil
}

func (p *stageProvider) ParseResponse(wire *WireResponse) (*ChatResponse, error) {
	p.parsed++
	if p.parseErr != nil {
		return nil, p.parseErr
	}
	return &ChatResponse{Content: "ok"}, nil
}

func (p *stageProvider) WithAPIKey(string) Provider { return p }

func (p *stageProvider) WithBaseURL(string) Provider { return p }

func (p *stageProvider) WithHttpClient(*http.Client) Provider { return p }

func TestSendRunsAllStagesInOrder(t *testing.T) {
	provider := &stageProvider{}

	response, err := Send(context.Background(), provider, ChatRequest{Parts: []ContentPart{TextPart("hi")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Content != "ok" {
		t.Errorf("expected content 'ok', got %q", response.Content)
	}
	if provider.prepared != 1 || provider.dispatched != 1 || provider.parsed != 1 {
		t.Errorf("expected each stage to run once, got prepare=%d dispatch=%d parse=%d",
			provider.prepared, provider.dispatched, provider.parsed)
	}
}

func TestSendStopsAfterPrepareFailure(t *testing.T) {
	provider := &stageProvider{prepareErr: Errorf(ErrorKindUnsupportedContent, "no images")}

	_, err := Send(context.Background(), provider, ChatRequest{})
	if !IsKind(err, ErrorKindUnsupportedContent) {
		t.Fatalf("expected unsupported_content error, got %v", err)
	}

	if provider.dispatched != 0 {
		t.Errorf("expected no dispatch after prepare failure, got %d calls", provider.dispatched)
	}
	if provider.parsed != 0 {
		t.Errorf("expected no parse after prepare failure, got %d calls", provider.parsed)
	}
}

func TestSendStopsAfterDispatchFailure(t *testing.T) {
	provider := &stageProvider{dispatchErr: Errorf(ErrorKindNetwork, "connection refused")}

	_, err := Send(context.Background(), provider, ChatRequest{})
	if !IsKind(err, ErrorKindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}

	if provider.parsed != 0 {
		t.Errorf("expected no parse after dispatch failure, got %d calls", provider.parsed)
	}
}
