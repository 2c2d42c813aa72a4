package openai

import (
	"encoding/json"
	"fmt"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

// requestFromGeneric converts an ai.ChatRequest into a serialized
// chat-completions body. Content parts keep their caller-supplied order.
func requestFromGeneric(request ai.ChatRequest) ([]byte, error) {
	parts := make([]contentPart, 0, len(request.Parts))

	for i, part := range request.Parts {
		switch part.Type {
		case ai.ContentTypeText:
			parts = append(parts, contentPart{Type: "text", Text: part.Text})

		case ai.ContentTypeImage:
			if part.Image == nil {
				return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "image part %d has no payload", i).WithProvider(providerName)
			}
			parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: imageURLFor(part.Image)}})

		default:
			return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "content type %q is not supported", part.Type).WithProvider(providerName)
		}
	}

	req := chatCompletionsRequest{
		Model:    request.Model,
		Messages: []chatMessage{{Role: "user", Content: parts}},
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
	return body, nil
}

// imageURLFor renders image data in the form the API expects: a reference
// URI as-is, or inline bytes as a base64 data URL.
func imageURLFor(image *ai.ImageData) string {
	if image.URI != "" {
		return image.URI
	}
	return fmt.Sprintf("data:%s;base64,%s", image.MimeType, image.Data)
}

// responseToGeneric maps the raw wire payload to the canonical response.
func responseToGeneric(wire *ai.WireResponse) (*ai.ChatResponse, error) {
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
