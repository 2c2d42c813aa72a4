// Package anthropic implements the [ai.Provider] interface for Anthropic's
// Messages API. Text parts become "text" content blocks and image parts
// become "image" blocks with a base64 or url source. Authentication uses the
// x-api-key header and a pinned anthropic-version.
//
// The primary entry point is [New], which reads ANTHROPIC_API_KEY and
// ANTHROPIC_API_BASE_URL from the environment.
package anthropic
