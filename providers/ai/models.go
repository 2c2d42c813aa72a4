package ai

import "net/http"

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest is the canonical, provider-agnostic representation of one
// outbound message. It is built by the message builder and handed to a
// Provider exactly once; providers must not retain it after dispatch.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Parts            []ContentPart     `json:"parts"`                       // Ordered message content; providers render parts in sequence
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// ContentType discriminates the variants of a ContentPart.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
)

// ContentPart is a single item of message content. Exactly one of the
// variant fields is populated, selected by Type.
type ContentPart struct {
	Type  ContentType `json:"type"`
	Text  string      `json:"text,omitempty"`
	Image *ImageData  `json:"image,omitempty"`
}

// ImageData carries image content either inline (base64-encoded Data) or by
// reference (URI). MimeType is required for inline data. When both Data and
// URI are set, URI takes precedence.
type ImageData struct {
	MimeType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"` // Base64-encoded bytes
	URI      string `json:"uri,omitempty"`
}

// TextPart builds a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: ContentTypeText, Text: text}
}

// ImagePart builds an inline (base64) image content part.
func ImagePart(data, mimeType string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &ImageData{Data: data, MimeType: mimeType}}
}

// ImageURIPart builds an image content part referencing an external URI.
func ImageURIPart(uri, mimeType string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &ImageData{URI: uri, MimeType: mimeType}}
}

type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`  // Optional max tokens for the response
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature. Higher => more random; lower => more deterministic.
	TopP        float32 `json:"top_p,omitempty"`       // Nucleus (top-p) sampling [0..1]. Alternative to temperature.
}

/*
	##### WIRE TYPES #####
*/

// WireRequest is a fully serialized provider request, ready for transport.
// PrepareRequest produces it; Dispatch sends it without inspecting the body.
// Header carries provider authentication and content negotiation.
type WireRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// WireResponse is the raw transport result handed to ParseResponse.
// Dispatch only returns it for 2xx statuses; everything else is classified
// as a network error before parsing is attempted.
type WireResponse struct {
	StatusCode int
	Body       []byte
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse is the canonical result of a completed chat request,
// independent of any provider wire format. It is either fully populated or
// not produced at all; parse failures never yield a partial response.
type ChatResponse struct {
	ID           string `json:"id,omitempty"`
	Model        string `json:"model,omitempty"`
	Created      int64  `json:"created,omitempty"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}
