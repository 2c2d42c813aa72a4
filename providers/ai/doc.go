// Package ai defines the canonical request/response model shared by all
// provider implementations, the [Provider] capability interface, and the
// classified [Error] type returned by every stage of the pipeline.
//
// A provider translates [ChatRequest] into its own wire format, issues the
// HTTP call, and maps the raw payload back to [ChatResponse]. The [Send]
// helper chains the three stages. Callers normally do not use this package
// directly; the root aipim package wraps it behind a client and builder.
package ai
