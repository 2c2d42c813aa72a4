package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

const (
	defaultBaseURL          = "https://api.deepseek.com"
	chatCompletionsEndpoint = "/chat/completions"

	providerName = "deepseek"
)

// DeepseekProvider implements the ai.Provider interface for DeepSeek's
// OpenAI-compatible chat API. The API is text-only: image parts are rejected
// during request preparation, before any network traffic.
type DeepseekProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new DeepSeek provider, reading DEEPSEEK_API_KEY and
// DEEPSEEK_API_BASE_URL from the environment when set.
func New() *DeepseekProvider {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	baseURL := os.Getenv("DEEPSEEK_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &DeepseekProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*DeepseekProvider)(nil)

// Name implements the ai.Provider interface.
func (p *DeepseekProvider) Name() string { return providerName }

// WithAPIKey sets the API key for the provider
func (p *DeepseekProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *DeepseekProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *DeepseekProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// PrepareRequest serializes the canonical request into an OpenAI-compatible
// chat-completions body with plain string content. Any non-text part fails
// with an unsupported-content error.
func (p *DeepseekProvider) PrepareRequest(request ai.ChatRequest) (*ai.WireRequest, error) {
	if p.apiKey == "" {
		return nil, ai.Errorf(ai.ErrorKindConfiguration, "API key is not set").WithProvider(providerName)
	}

	var texts []string
	for _, part := range request.Parts {
		if part.Type != ai.ContentTypeText {
			return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "content type %q is not supported: deepseek models accept text only", part.Type).
				WithProvider(providerName)
		}
		texts = append(texts, part.Text)
	}

	req := chatCompletionsRequest{
		Model:    request.Model,
		Messages: []chatMessage{{Role: "user", Content: strings.Join(texts, "\n\n")}},
	}
	if cfg := request.GenerationConfig; cfg != nil {
		req.MaxTokens = cfg.MaxTokens
		req.Temperature = cfg.Temperature
		req.TopP = cfg.TopP
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ai.WrapError(ai.ErrorKindUnsupportedContent, "failed to marshal request body", err).WithProvider(providerName)
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
func (p *DeepseekProvider) Dispatch(ctx context.Context, wire *ai.WireRequest) (*ai.WireResponse, error) {
	return utils.Dispatch(ctx, p.client, providerName, wire)
}

// ParseResponse maps a raw chat-completions payload to the canonical response.
func (p *DeepseekProvider) ParseResponse(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	var resp chatCompletionsResponse
	if err := utils.UnmarshalLenient(wire.Body, &resp); err != nil {
		return nil, ai.WrapError(ai.ErrorKindParse, "failed to decode response body", err).
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	if resp.Error != nil {
		return nil, ai.Errorf(ai.ErrorKindParse, "provider reported error: %s", resp.Error.Message).
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	if len(resp.Choices) == 0 {
		return nil, ai.Errorf(ai.ErrorKindParse, "no choices in response").
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	out := &ai.ChatResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Created:      resp.Created,
		Content:      resp.Choices[0].Message.Content,
		FinishReason: resp.Choices[0].FinishReason,
	}
	if resp.Usage != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}
