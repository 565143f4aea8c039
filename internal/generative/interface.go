package generative

import "context"

// Provider produces a free-form support reply for one user turn.
// Implementations are safe for concurrent use.
type Provider interface {
	// Name identifies the provider in logs and analytics.
	Name() string

	// Generate returns the reply text for the given input.
	Generate(ctx context.Context, input GenerateInput) (string, error)
}

// SentimentAnalyzer is an optional provider capability used by the
// dashboard endpoints.
type SentimentAnalyzer interface {
	// Sentiment classifies text as positive, negative or neutral.
	Sentiment(ctx context.Context, text string) (string, error)
}

// Summarizer is an optional provider capability used by the dashboard
// endpoints.
type Summarizer interface {
	// Summarize condenses a rendered conversation transcript.
	Summarize(ctx context.Context, transcript string) (string, error)
}
