package aipim

import "github.com/aipim/aipim/providers/ai"

// Response is the normalized result returned to the caller regardless of
// which provider served the request: the primary text output plus
// provider-reported metadata under stable keys ("model", "finish_reason",
// "id", "created", and token counts when the provider reports usage).
type Response struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// responseFromChat flattens the canonical chat response into the
// caller-facing shape. Zero-valued fields are omitted from the metadata map.
func responseFromChat(chat *ai.ChatResponse) *Response {
	metadata := map[string]any{}
	if chat.Model != "" {
		metadata["model"] = chat.Model
	}
	if chat.FinishReason != "" {
		metadata["finish_reason"] = chat.FinishReason
	}
	if chat.ID != "" {
		metadata["id"] = chat.ID
	}
	if chat.Created != 0 {
		metadata["created"] = chat.Created
	}
	if chat.Usage != nil {
		metadata["prompt_tokens"] = chat.Usage.PromptTokens
		metadata["completion_tokens"] = chat.Usage.CompletionTokens
		metadata["total_tokens"] = chat.Usage.TotalTokens
	}

	return &Response{
		Text:     chat.Content,
		Metadata: metadata,
	}
}
