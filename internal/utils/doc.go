// Package utils provides shared low-level helpers used by the provider
// implementations: [Dispatch] for the single HTTP round trip of the send
// pipeline, [UnmarshalLenient] for JSON decoding with a repair fallback,
// and string truncation for safe error excerpts.
package utils
