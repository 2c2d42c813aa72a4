package openai

/*
	OPENAI CHAT COMPLETIONS API - REQUEST TYPES
*/

// chatCompletionsRequest is the request body for POST /chat/completions.
type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
	TopP        float32       `json:"top_p,omitempty"`
}

// chatMessage holds one role plus an ordered array of content parts. The API
// also accepts a plain string content; the array form is used unconditionally
// so text and images serialize the same way.
type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

// contentPart is a discriminated union via the Type field:
//   - "text": Text populated
//   - "image_url": ImageURL populated (https URL or base64 data URL)
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

/*
	OPENAI CHAT COMPLETIONS API - RESPONSE TYPES
*/

// chatCompletionsResponse covers both the success and the error envelope;
// the API reports application-level errors as {"error": {...}}, sometimes
// under HTTP 200 when fronted by compatibility proxies.
type chatCompletionsResponse struct {
	ID      string    `json:"id"`
	Object  string    `json:"object"`
	Created int64     `json:"created"`
	Model   string    `json:"model"`
	Choices []choice  `json:"choices"`
	Usage   *usage    `json:"usage"`
	Error   *apiError `json:"error"`
}

type choice struct {
	Index        int             `json:"index"`
	Message      responseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type responseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type apiError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	Type    string `json:"type,omitempty"`
}
