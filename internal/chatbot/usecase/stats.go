package usecase

import (
	"context"
	"errors"
	"strings"

	"customer-support-chatbot/internal/analytics"
	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/generative"
)

// Sentiment confidences mirror the coarse scores the dashboard displays:
// a provider answer is trusted, the neutral fallback is not.
const (
	sentimentConfidence        = 0.8
	sentimentDefaultConfidence = 0.5
)

const (
	summaryEmptyMessage = "No conversation to summarize."
	summaryErrorMessage = "Unable to generate summary."
)

func (uc *implUseCase) Analytics(ctx context.Context) analytics.Snapshot {
	return uc.recorder.Snapshot()
}

func (uc *implUseCase) ResetAnalytics(ctx context.Context) {
	uc.l.Info(ctx, "chatbot.ResetAnalytics: zeroing counters and conversation window")
	uc.recorder.Reset()
}

func (uc *implUseCase) ExportConversations(ctx context.Context) (string, error) {
	path, err := uc.recorder.ExportFile(uc.exportDir)
	if err != nil {
		uc.l.Errorf(ctx, "chatbot.ExportConversations: %v", err)
		return "", err
	}
	uc.l.Infof(ctx, "chatbot.ExportConversations: wrote %s", path)
	return path, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context) {
	uc.responder.ClearHistory()
}

func (uc *implUseCase) Sentiment(ctx context.Context, input chatbot.SentimentInput) (chatbot.SentimentOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return chatbot.SentimentOutput{}, chatbot.ErrEmptyText
	}

	label, err := uc.responder.Sentiment(ctx, input.Text)
	switch {
	case errors.Is(err, generative.ErrDisabled) || errors.Is(err, generative.ErrUnsupported):
		return chatbot.SentimentOutput{}, chatbot.ErrGenerativeDisabled
	case err != nil:
		uc.l.Warnf(ctx, "chatbot.Sentiment: provider failed, defaulting to neutral: %v", err)
		return chatbot.SentimentOutput{Sentiment: "neutral", Confidence: sentimentDefaultConfidence}, nil
	}

	return chatbot.SentimentOutput{Sentiment: label, Confidence: sentimentConfidence}, nil
}

func (uc *implUseCase) Summary(ctx context.Context) (chatbot.SummaryOutput, error) {
	summary, err := uc.responder.Summarize(ctx)
	switch {
	case errors.Is(err, generative.ErrDisabled) || errors.Is(err, generative.ErrUnsupported):
		return chatbot.SummaryOutput{}, chatbot.ErrGenerativeDisabled
	case errors.Is(err, generative.ErrEmptyReply):
		return chatbot.SummaryOutput{Summary: summaryEmptyMessage}, nil
	case err != nil:
		uc.l.Warnf(ctx, "chatbot.Summary: provider failed: %v", err)
		return chatbot.SummaryOutput{Summary: summaryErrorMessage}, nil
	}

	return chatbot.SummaryOutput{Summary: summary}, nil
}
