package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	providerName = "gemini"
)

// GeminiProvider implements the ai.Provider interface for Google's Gemini
// generative language API. It supports text and image content parts.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Gemini provider, reading GEMINI_API_KEY and
// GEMINI_API_BASE_URL from the environment when set.
func New() *GeminiProvider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*GeminiProvider)(nil)

// Name implements the ai.Provider interface.
func (p *GeminiProvider) Name() string { return providerName }

// WithAPIKey sets the API key for the provider
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// PrepareRequest serializes the canonical request into a generateContent
// body. The model identifier is part of the URL path; authentication uses
// the x-goog-api-key header.
func (p *GeminiProvider) PrepareRequest(request ai.ChatRequest) (*ai.WireRequest, error) {
	if p.apiKey == "" {
		return nil, ai.Errorf(ai.ErrorKindConfiguration, "API key is not set").WithProvider(providerName)
	}

	body, err := requestFromGeneric(request)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("x-goog-api-key", p.apiKey)

	return &ai.WireRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, request.Model),
		Header: header,
		Body:   body,
	}, nil
}

// Dispatch implements the ai.Provider interface using the shared transport.
func (p *GeminiProvider) Dispatch(ctx context.Context, wire *ai.WireRequest) (*ai.WireResponse, error) {
	return utils.Dispatch(ctx, p.client, providerName, wire)
}

// ParseResponse maps a raw generateContent payload to the canonical response.
func (p *GeminiProvider) ParseResponse(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	return responseToGeneric(wire)
}
