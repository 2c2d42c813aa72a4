package anthropic

import (
	"context"
	"net/http"
	"os"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1"
	messagesEndpoint = "/messages"
	anthropicVersion = "2023-06-01"

	// Anthropic requires max_tokens on every request.
	defaultMaxTokens = 1024

	providerName = "anthropic"
)

// AnthropicProvider implements the ai.Provider interface for Anthropic's
// Messages API. It supports text and image content parts.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Anthropic provider, reading ANTHROPIC_API_KEY and
// ANTHROPIC_API_BASE_URL from the environment when set.
func New() *AnthropicProvider {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	baseURL := os.Getenv("ANTHROPIC_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*AnthropicProvider)(nil)

// Name implements the ai.Provider interface.
func (p *AnthropicProvider) Name() string { return providerName }

// WithAPIKey sets the API key for the provider
func (p *AnthropicProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *AnthropicProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *AnthropicProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// PrepareRequest serializes the canonical request into a Messages API body.
// Authentication uses the x-api-key header together with the pinned
// anthropic-version.
func (p *AnthropicProvider) PrepareRequest(request ai.ChatRequest) (*ai.WireRequest, error) {
	if p.apiKey == "" {
		return nil, ai.Errorf(ai.ErrorKindConfiguration, "API key is not set").WithProvider(providerName)
	}

	body, err := requestFromGeneric(request)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("x-api-key", p.apiKey)
	header.Set("anthropic-version", anthropicVersion)

	return &ai.WireRequest{
		Method: http.MethodPost,
		URL:    p.baseURL + messagesEndpoint,
		Header: header,
		Body:   body,
	}, nil
}

// Dispatch implements the ai.Provider interface using the shared transport.
func (p *AnthropicProvider) Dispatch(ctx context.Context, wire *ai.WireRequest) (*ai.WireResponse, error) {
	return utils.Dispatch(ctx, p.client, providerName, wire)
}

// ParseResponse maps a raw Messages API payload to the canonical response.
func (p *AnthropicProvider) ParseResponse(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	return responseToGeneric(wire)
}
