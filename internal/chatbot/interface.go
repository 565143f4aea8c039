package chatbot

import (
	"context"

	"customer-support-chatbot/internal/analytics"
	"customer-support-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chatbot domain.
type UseCase interface {
	// Resolve answers one user message through the fallback chain:
	// generative, corpus-enhanced, keyword, generic.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ResolveOutput, error)

	// Analytics returns a consistent snapshot of counters and recent
	// conversations.
	Analytics(ctx context.Context) analytics.Snapshot

	// ResetAnalytics zeroes all counters and the conversation window.
	ResetAnalytics(ctx context.Context)

	// ExportConversations writes analytics plus the full conversation
	// window to a timestamped JSON file and returns its path.
	ExportConversations(ctx context.Context) (string, error)

	// ClearHistory drops the generative context window.
	ClearHistory(ctx context.Context)

	// Sentiment classifies one text as positive, negative or neutral.
	// Dashboard only; resolution never consults it.
	Sentiment(ctx context.Context, input SentimentInput) (SentimentOutput, error)

	// Summary condenses the recent conversation context. Dashboard only.
	Summary(ctx context.Context) (SummaryOutput, error)
}
