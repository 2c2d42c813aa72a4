// Package deepseek implements the [ai.Provider] interface for DeepSeek's
// OpenAI-compatible chat API. DeepSeek models accept text content only, so
// this provider demonstrates a reduced capability set: image parts are
// rejected with an unsupported-content error during request preparation and
// never reach the network.
//
// The primary entry point is [New], which reads DEEPSEEK_API_KEY and
// DEEPSEEK_API_BASE_URL from the environment.
package deepseek
