package gemini

import (
	"encoding/json"
	"strings"

	"github.com/aipim/aipim/internal/utils"
	"github.com/aipim/aipim/providers/ai"
)

// requestFromGeneric converts an ai.ChatRequest into a serialized
// generateContent body. Parts keep their caller-supplied order inside a
// single user-role content entry.
func requestFromGeneric(request ai.ChatRequest) ([]byte, error) {
	parts := make([]part, 0, len(request.Parts))

	for i, p := range request.Parts {
		switch p.Type {
		case ai.ContentTypeText:
			parts = append(parts, part{Text: p.Text})

		case ai.ContentTypeImage:
			if p.Image == nil {
				return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "image part %d has no payload", i).WithProvider(providerName)
			}
			parts = append(parts, mediaPart(p.Image))

		default:
			return nil, ai.Errorf(ai.ErrorKindUnsupportedContent, "content type %q is not supported", p.Type).WithProvider(providerName)
		}
	}

	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
	}

	if cfg := request.GenerationConfig; cfg != nil {
		req.GenerationConfig = &generationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxTokens,
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, ai.WrapError(ai.ErrorKindUnsupportedContent, "failed to marshal request body", err).WithProvider(providerName)
	}
	return body, nil
}

// mediaPart renders image data as a Gemini part. URI references take
// precedence over inline data when both are provided.
func mediaPart(image *ai.ImageData) part {
	if image.URI != "" {
		return part{FileData: &fileData{MimeType: image.MimeType, FileURI: image.URI}}
	}
	return part{InlineData: &inlineData{MimeType: image.MimeType, Data: image.Data}}
}

// responseToGeneric maps the raw wire payload to the canonical response. The
// primary text output is the concatenation of the first candidate's text parts.
func responseToGeneric(wire *ai.WireResponse) (*ai.ChatResponse, error) {
	var resp generateContentResponse
	if err := utils.UnmarshalLenient(wire.Body, &resp); err != nil {
		return nil, ai.WrapError(ai.ErrorKindParse, "failed to decode response body", err).
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	if resp.Error != nil {
		return nil, ai.Errorf(ai.ErrorKindParse, "provider reported error: %s (%s)", resp.Error.Message, resp.Error.Status).
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	if len(resp.Candidates) == 0 {
		return nil, ai.Errorf(ai.ErrorKindParse, "no candidates in response").
			WithProvider(providerName).
			WithResponse(wire.StatusCode, utils.TruncateString(string(wire.Body), utils.DefaultMaxStringLength))
	}

	first := resp.Candidates[0]
	var text strings.Builder
	for _, p := range first.Content.Parts {
		text.WriteString(p.Text)
	}

	out := &ai.ChatResponse{
		ID:           resp.ResponseID,
		Model:        resp.ModelVersion,
		Content:      text.String(),
		FinishReason: first.FinishReason,
	}
	if resp.UsageMetadata != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}
