package aipim

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aipim/aipim/providers/ai"
	"github.com/aipim/aipim/providers/observability"
)

// Client is the caller-facing entry point. It binds a model identifier to
// the provider that serves it and holds transport configuration. A Client is
// immutable after construction and safe for concurrent sends; per-message
// state lives in the builders it creates.
type Client struct {
	model    string
	provider ai.Provider
	logger   *slog.Logger
}

// Option configures a Client during construction.
type Option func(*clientConfig)

type clientConfig struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	provider   ai.Provider
	logger     *slog.Logger
}

// WithAPIKey overrides the API key read from the provider's environment
// variable.
func WithAPIKey(apiKey string) Option {
	return func(c *clientConfig) { c.apiKey = apiKey }
}

// WithBaseURL overrides the provider's default API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.baseURL = baseURL }
}

// WithHttpClient sets the HTTP client used for outbound requests. Transport
// timeouts belong here; the pipeline itself enforces none.
func WithHttpClient(httpClient *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = httpClient }
}

// WithProvider bypasses registry lookup and pins an explicit provider
// implementation for this client.
func WithProvider(provider ai.Provider) Option {
	return func(c *clientConfig) { c.provider = provider }
}

// WithLogger enables per-send tracing spans routed through the given
// structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// New creates a Client for the given model identifier. The serving provider
// is resolved once, at construction, so an unknown model surfaces
// immediately and without any network traffic.
//
//	client, err := aipim.New("gpt-4o")
//	if err != nil { ... }
//	response, err := client.Message().Text("Hello, world!").Send(ctx)
func New(model string, opts ...Option) (*Client, error) {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	provider := cfg.provider
	if provider == nil {
		resolved, err := resolveProvider(model)
		if err != nil {
			return nil, err
		}
		provider = resolved
	}

	if cfg.apiKey != "" {
		provider = provider.WithAPIKey(cfg.apiKey)
	}
	if cfg.baseURL != "" {
		provider = provider.WithBaseURL(cfg.baseURL)
	}
	if cfg.httpClient != nil {
		provider = provider.WithHttpClient(cfg.httpClient)
	}

	return &Client{
		model:    model,
		provider: provider,
		logger:   cfg.logger,
	}, nil
}

// Model returns the model identifier this client is bound to.
func (c *Client) Model() string { return c.model }

// Message returns a new single-use builder bound to this client's model and
// transport. Builders are not safe for concurrent use; create one per send.
func (c *Client) Message() *MessageBuilder {
	return &MessageBuilder{client: c}
}

// send runs the provider pipeline for one canonical request. It is the only
// suspension point of a send operation; cancelling ctx aborts the in-flight
// HTTP call.
func (c *Client) send(ctx context.Context, request ai.ChatRequest) (*Response, error) {
	var span observability.Span
	if c.logger != nil {
		ctx, span = observability.StartSpan(ctx, c.logger, "aipim.send",
			observability.String(observability.AttrAIModel, c.model),
			observability.String(observability.AttrAIProvider, c.provider.Name()),
		)
		defer span.End()
	}

	chatResponse, err := ai.Send(ctx, c.provider, request)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return nil, err
	}

	if span != nil {
		span.SetAttributes(observability.String(observability.AttrAIFinishReason, chatResponse.FinishReason))
		if chatResponse.Usage != nil {
			span.SetAttributes(observability.Int(observability.AttrAITokensTotal, chatResponse.Usage.TotalTokens))
		}
		span.SetStatus(observability.StatusOK, "")
	}

	return responseFromChat(chatResponse), nil
}
