package dialogflow

// DefaultLanguageCode is used when a detect request carries no language.
const DefaultLanguageCode = "en"

// DetectIntentRequest is the input for a single detect-intent round trip.
// SessionID scopes conversational context on the Dialogflow side; use one
// session per end user conversation.
type DetectIntentRequest struct {
	SessionID    string
	Text         string
	LanguageCode string
}

// IntentResult is a simplified detect-intent response.
type IntentResult struct {
	Intent          string
	Confidence      float64
	FulfillmentText string
	IsFallback      bool
}
