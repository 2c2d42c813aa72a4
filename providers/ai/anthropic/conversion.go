package anthropic

import (
	"encoding/json"
	"strings"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

// requestFromGeneric converts an ai.ChatRequest into a serialized Messages
// API body. Content blocks keep their caller-supplied order.
func requestFromGeneric(request ai.ChatRequest) ([]byte, error) {
	blocks := make([]anthropicContentBlock, 0, len(request.Parts))

	for i, part := range request.Parts {
		switch part.Type {
		case ai.ContentTypeText:
			blocks = append(blocks, anthropicContentBlock{Type: "text", Text: part.Text})

		case ai.ContentTypeImage:
			if part.Image == nil {
				return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "image part %d has no payload", i).WithProvider(providerName)
			}
			blocks = append(blocks, anthropicContentBlock{Type: "image", Source: sourceFor(part.Image)})

		default:
			return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "content type %q is not supported", part.Type).WithProvider(providerName)
		}
	}

	req := anthropicRequest{
		Model:     request.Model,
		Messages:  []anthropicMessage{{Role: "user", Content: blocks}},
		MaxTokens: defaultMaxTokens,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
		if cfg.Temperature > 0 {
			temp := float64(cfg.Temperature)
			req.Temperature = &temp
		}
		if cfg.TopP > 0 {
			topP := float64(cfg.TopP)
			req.TopP = &topP
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ai.WrapError(ai.ErrorKindUnsupportedContent, "failed to marshal request body", err).WithProvider(providerName)
	}
	return body, nil
}

// sourceFor renders image data as a Messages API media source. URI references
// take precedence over inline data when both are present.
func sourceFor(image *ai.ImageData) *anthropicSource {
	if image.URI != "" {
		return &anthropicSource{Type: "url", URL: image.URI}
	}
	return &anthropicSource{Type: "base64", MediaType: image.MimeType, Data: image.Data}
}

// responseToGeneric maps the raw wire payload to the canonical response. The
// primary text output is the concatenation of all text content blocks.
func responseToGeneric(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	var resp anthropicResponse
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

	if len(resp.Content) == 0 {
		return nil, ai.Errorf(ai.ErrorKindParse, "no content blocks in response").
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	out := &ai.ChatResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      text.String(),
		FinishReason: resp.StopReason,
	}
	if resp.Usage != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		}
	}
	return out, nil
}
