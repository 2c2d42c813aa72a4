package aipim

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/aipim/aipim/providers/ai"
)

// promptPathEnv names the directory holding reusable prompt files for
// [MessageBuilder.Prompt].
const promptPathEnv = "AIPIM_PROMPT_PATH"

// MessageBuilder accumulates the ordered content of one outbound message.
// All append methods are chainable; errors raised while appending are
// deferred and returned by Send, so chains never need intermediate checks.
//
// A builder is single-use and owned by one call path: calling Send twice
// fails with a builder-reused error, and builders are not safe for
// concurrent use.
type MessageBuilder struct {
	client *Client
	parts  []ai.ContentPart
	config *ai.GenerationConfig
	err    error
	sent   bool
}

// Text appends a text content item. It may be called multiple times,
// producing multiple text items in call order.
func (b *MessageBuilder) Text(text string) *MessageBuilder {
	b.parts = append(b.parts, ai.TextPart(text))
	return b
}

// Image appends an inline image content item. The byte payload must be
// non-empty; it is base64-encoded for transport.
func (b *MessageBuilder) Image(data []byte, mimeType string) *MessageBuilder {
	if len(data) == 0 {
		b.fail(ai.Errorf(ai.ErrorKindUnsupportedContent, "image data must not be empty"))
		return b
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	b.parts = append(b.parts, ai.ImagePart(encoded, mimeType))
	return b
}

// ImageURI appends an image content item referencing an external URI.
func (b *MessageBuilder) ImageURI(uri, mimeType string) *MessageBuilder {
	if uri == "" {
		b.fail(ai.Errorf(ai.ErrorKindUnsupportedContent, "image URI must not be empty"))
		return b
	}
	b.parts = append(b.parts, ai.ImageURIPart(uri, mimeType))
	return b
}

// ImageFile appends an image read from disk, deriving the MIME type from the
// file extension. Supported formats: jpg/jpeg, png, gif, webp.
func (b *MessageBuilder) ImageFile(path string) *MessageBuilder {
	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	case ".png":
		mimeType = "image/png"
	case ".gif":
		mimeType = "image/gif"
	case ".webp":
		mimeType = "image/webp"
	default:
		b.fail(ai.Errorf(ai.ErrorKindUnsupportedContent, "unsupported image format: %s", filepath.Ext(path)))
		return b
	}

	data, err := os.ReadFile(path)
	if err != nil {
		b.fail(ai.WrapError(ai.ErrorKindUnsupportedContent, fmt.Sprintf("failed to read image file %s", path), err))
		return b
	}
	return b.Image(data, mimeType)
}

// HTML appends an HTML document as a text content item, converted to
// markdown so the model receives readable prose instead of markup.
func (b *MessageBuilder) HTML(html string) *MessageBuilder {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		b.fail(ai.WrapError(ai.ErrorKindUnsupportedContent, "failed to convert HTML content", err))
		return b
	}
	return b.Text(markdown)
}

// Prompt appends the contents of the prompt file <name>.txt found in the
// directory named by the AIPIM_PROMPT_PATH environment variable.
func (b *MessageBuilder) Prompt(name string) *MessageBuilder {
	promptPath := os.Getenv(promptPathEnv)
	if promptPath == "" {
		b.fail(ai.Errorf(ai.ErrorKindConfiguration, "%s is not set", promptPathEnv))
		return b
	}

	data, err := os.ReadFile(filepath.Join(promptPath, name+".txt"))
	if err != nil {
		b.fail(ai.WrapError(ai.ErrorKindConfiguration, fmt.Sprintf("failed to read prompt %q", name), err))
		return b
	}
	return b.Text(string(data))
}

// Temperature sets the sampling temperature for this message.
func (b *MessageBuilder) Temperature(temperature float32) *MessageBuilder {
	b.generationConfig().Temperature = temperature
	return b
}

// MaxTokens caps the number of tokens the provider may generate.
func (b *MessageBuilder) MaxTokens(maxTokens int) *MessageBuilder {
	b.generationConfig().MaxTokens = maxTokens
	return b
}

// Send validates the accumulated content and runs the provider pipeline:
// prepare, dispatch, parse. The network call is the sole suspension point;
// cancelling ctx aborts it and the operation fails as cancelled. Either a
// complete Response or a single classified error is returned, never both.
//
// The builder is consumed: a second Send on the same builder fails with a
// builder-reused error rather than resending.
func (b *MessageBuilder) Send(ctx context.Context) (*Response, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sent {
		return nil, ai.Errorf(ai.ErrorKindBuilderReused, "message builder already sent; create a new builder via Client.Message")
	}
	if len(b.parts) == 0 {
		return nil, ai.Errorf(ai.ErrorKindEmptyMessage, "message has no content; append at least one item before sending")
	}
	b.sent = true

	request := ai.ChatRequest{
		Model:            b.client.model,
		Parts:            b.parts,
		GenerationConfig: b.config,
	}

	return b.client.send(ctx, request)
}

// fail records the first deferred error; later ones are dropped so Send
// reports the root cause.
func (b *MessageBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *MessageBuilder) generationConfig() *ai.GenerationConfig {
	if b.config == nil {
		b.config = &ai.GenerationConfig{}
	}
	return b.config
}
