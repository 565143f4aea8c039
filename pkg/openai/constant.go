package openai

import "time"

const (
	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultAPIURL is the OpenAI API base endpoint.
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single completion call. Generation is a
	// best-effort enhancement; the caller falls back to local strategies
	// on timeout.
	DefaultTimeout = 10 * time.Second
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
