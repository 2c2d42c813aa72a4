package openai

import (
	"context"
	"net/http"
	"os"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	providerName = "openai"
)

// OpenAIProvider implements the ai.Provider interface for OpenAI's
// chat-completions API and for any OpenAI-compatible endpoint reachable via
// WithBaseURL. It supports text and image content parts.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new OpenAI provider, reading OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment when set.
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*OpenAIProvider)(nil)

// Name implements the ai.Provider interface.
func (p *OpenAIProvider) Name() string { return providerName }

// WithAPIKey sets the API key for the provider
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// PrepareRequest serializes the canonical request into a chat-completions
// JSON body. Image parts are inlined as data URLs; a missing API key fails
// here, before any network traffic.
func (p *OpenAIProvider) PrepareRequest(request ai.ChatRequest) (*ai.WireRequest, error) {
	if p.apiKey == "" {
		return nil, ai.Errorf(ai.ErrorKindConfiguration, "API key is not set").WithProvider(providerName)
	}

	body, err := requestFromGeneric(request)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "Bearer "+p.apiKey)

	return &ai.WireRequest{
		Method: http.MethodPost,
		URL:    p.baseURL + chatCompletionsEndpoint,
		Header: header,
		Body:   body,
	}, nil
}

// Dispatch implements the ai.Provider interface using the shared transport.
func (p *OpenAIProvider) Dispatch(ctx context.Context, wire *ai.WireRequest) (*ai.WireResponse, error) {
	return utils.Dispatch(ctx, p.client, providerName, wire)
}

// ParseResponse maps a raw chat-completions payload to the canonical
// response. An error object embedded in a 2xx body is surfaced as a parse
// failure carrying the provider's message.
func (p *OpenAIProvider) ParseResponse(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	return responseToGeneric(wire)
}
