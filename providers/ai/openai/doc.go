// Package openai implements the [ai.Provider] interface for OpenAI's
// chat-completions API. Text parts become "text" content entries and image
// parts become "image_url" entries (external URI or base64 data URL),
// preserving caller order. The error envelope ({"error": {...}}) is mapped
// to a parse failure even when delivered under HTTP 200.
//
// The primary entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment.
package openai
