package gemini

const (
	// DefaultModel is the generation model used when none is configured.
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIURL is the Generative Language API base endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1"
)

// Content roles. Gemini uses "model" where OpenAI-style APIs use "assistant".
const (
	RoleUser  = "user"
	RoleModel = "model"
)
