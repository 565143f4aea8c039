package generative

// Exchange is one completed user/assistant turn kept as context for
// subsequent generations.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// GenerateInput carries everything a provider needs for one generation.
type GenerateInput struct {
	// Text is the current user message.
	Text string
	// Context is an optional hint prepended to the current turn, for
	// example the intent the local classifier leaned toward.
	Context string
	// History holds the most recent completed exchanges, oldest first.
	History []Exchange
	// SessionID scopes providers that keep server-side conversation
	// state, such as Dialogflow agent sessions.
	SessionID string
}

// Reply is a successful generation.
type Reply struct {
	Text       string
	Confidence float64
}
