package observability

// Semantic attribute names shared across spans and events, so downstream
// log processing can rely on stable keys.
const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
	AttrHTTPRequestID        = "http.request.id"

	AttrAIModel        = "ai.model"
	AttrAIProvider     = "ai.provider"
	AttrAIFinishReason = "ai.finish_reason"
	AttrAITokensTotal  = "ai.tokens.total"
)
