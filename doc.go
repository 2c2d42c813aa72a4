// Package aipim is a unified client for sending text and image messages to
// multiple AI inference providers through one call surface. A model
// identifier selects the backend (OpenAI, Anthropic, Gemini, DeepSeek) via a
// prefix registry; a single-use message builder accumulates content; and
// every provider's wire format is normalized into one [Response] type with a
// classified error taxonomy for failures.
//
//	client, err := aipim.New("gpt-4o")
//	if err != nil {
//		log.Fatal(err)
//	}
//	response, err := client.Message().
//		Text("What is in this picture?").
//		ImageFile("cat.png").
//		Send(ctx)
//
// Credentials are read from per-provider environment variables
// (OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY, DEEPSEEK_API_KEY) or
// supplied explicitly with [WithAPIKey]. The core never retries and enforces
// no timeout of its own; configure the HTTP client for deadlines.
package aipim
