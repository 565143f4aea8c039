package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/model"
)

func TestSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text Rejected", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), &fullStubProvider{})
		if _, err := uc.Sentiment(ctx, chatbot.SentimentInput{Text: "  "}); !errors.Is(err, chatbot.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("No Provider Configured", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)
		if _, err := uc.Sentiment(ctx, chatbot.SentimentInput{Text: "great"}); !errors.Is(err, chatbot.ErrGenerativeDisabled) {
			t.Errorf("expected ErrGenerativeDisabled, got %v", err)
		}
	})

	t.Run("Provider Without Capability", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), &stubProvider{name: "stub"})
		if _, err := uc.Sentiment(ctx, chatbot.SentimentInput{Text: "great"}); !errors.Is(err, chatbot.ErrGenerativeDisabled) {
			t.Errorf("expected ErrGenerativeDisabled, got %v", err)
		}
	})

	t.Run("Successful Classification", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), &fullStubProvider{sentiment: "negative"})

		out, err := uc.Sentiment(ctx, chatbot.SentimentInput{Text: "the delivery took forever"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Sentiment != "negative" || out.Confidence != sentimentConfidence {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Provider Error Defaults To Neutral", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), &fullStubProvider{sentimentErr: errors.New("api down")})

		out, err := uc.Sentiment(ctx, chatbot.SentimentInput{Text: "whatever"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Sentiment != "neutral" || out.Confidence != sentimentDefaultConfidence {
			t.Errorf("unexpected fallback output: %+v", out)
		}
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionID: "s1"}

	t.Run("No Provider Configured", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)
		if _, err := uc.Summary(ctx); !errors.Is(err, chatbot.ErrGenerativeDisabled) {
			t.Errorf("expected ErrGenerativeDisabled, got %v", err)
		}
	})

	t.Run("Empty History", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), &fullStubProvider{summary: "unused"})

		out, err := uc.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary != summaryEmptyMessage {
			t.Errorf("unexpected summary: %q", out.Summary)
		}
	})

	t.Run("Summarizes Recorded Exchanges", func(t *testing.T) {
		stub := &fullStubProvider{summary: "Customer asked about an order."}
		stub.reply = "Checking that order now."
		uc := newTestUseCase(t.TempDir(), stub)

		uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "where is my order", PreferGenerative: true})

		out, err := uc.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary != "Customer asked about an order." {
			t.Errorf("unexpected summary: %q", out.Summary)
		}
	})

	t.Run("Provider Error Yields Apology", func(t *testing.T) {
		stub := &fullStubProvider{summaryErr: errors.New("api down")}
		stub.reply = "ok"
		uc := newTestUseCase(t.TempDir(), stub)
		uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "hello", PreferGenerative: true})

		out, err := uc.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary != summaryErrorMessage {
			t.Errorf("unexpected summary: %q", out.Summary)
		}
	})

	t.Run("Clear History Empties Context", func(t *testing.T) {
		stub := &fullStubProvider{summary: "unused"}
		stub.reply = "ok"
		uc := newTestUseCase(t.TempDir(), stub)
		uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "hello", PreferGenerative: true})

		uc.ClearHistory(ctx)

		out, err := uc.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary != summaryEmptyMessage {
			t.Errorf("history not cleared: %q", out.Summary)
		}
	})
}

func TestAnalyticsOperations(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionID: "s1"}

	t.Run("Snapshot And Reset", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)
		uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "hello"})

		if snap := uc.Analytics(ctx); snap.TotalRequests != 1 {
			t.Fatalf("expected 1 request, got %d", snap.TotalRequests)
		}

		uc.ResetAnalytics(ctx)
		if snap := uc.Analytics(ctx); snap.TotalRequests != 0 || snap.ConversationCount != 0 {
			t.Errorf("reset left state: %+v", snap)
		}
	})

	t.Run("Export Writes File", func(t *testing.T) {
		dir := t.TempDir()
		uc := newTestUseCase(dir, nil)
		uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "hello"})

		path, err := uc.ExportConversations(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(path, dir) {
			t.Errorf("export landed outside the export dir: %s", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("export file missing: %v", err)
		}
	})

	t.Run("Export Failure Surfaces", func(t *testing.T) {
		uc := newTestUseCase("/nonexistent-dir/nested", nil)
		if _, err := uc.ExportConversations(ctx); err == nil {
			t.Error("expected write error for missing directory")
		}
	})
}
