// Package gemini implements the [ai.Provider] interface for Google's Gemini
// generative language API. Text parts become text parts and image parts
// become inlineData blobs (or fileData references for URIs), preserving
// caller order inside a single user content entry. The model identifier is
// embedded in the request path of the generateContent endpoint.
//
// The primary entry point is [New], which reads GEMINI_API_KEY and
// GEMINI_API_BASE_URL from the environment.
package gemini
