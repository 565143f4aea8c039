package chatbot

import (
	"time"

	"customer-support-chatbot/internal/model"
)

// ResolveInput is one user message to answer.
type ResolveInput struct {
	Text string
	// PreferGenerative lets a caller skip the generative stage and go
	// straight to local resolution.
	PreferGenerative bool
}

// ResolveOutput is the resolved reply with its provenance.
type ResolveOutput struct {
	Text         string
	Intent       string
	Confidence   float64
	Source       model.Source
	Model        string
	ResponseTime time.Duration
}

// SentimentInput is one text to classify.
type SentimentInput struct {
	Text string
}

// SentimentOutput is a sentiment label with a coarse confidence.
type SentimentOutput struct {
	Sentiment  string
	Confidence float64
}

// SummaryOutput is a short digest of the recent conversation.
type SummaryOutput struct {
	Summary string
}
