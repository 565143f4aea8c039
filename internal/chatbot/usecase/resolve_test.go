package usecase

import (
	"context"
	"errors"
	"testing"

	"customer-support-chatbot/internal/analytics"
	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/corpus"
	"customer-support-chatbot/internal/generative"
	"customer-support-chatbot/internal/intent"
	"customer-support-chatbot/internal/model"
)

func newTestUseCase(exportDir string, provider generative.Provider) *implUseCase {
	catalog := intent.DefaultCatalog()
	uc := New(
		&mockLogger{},
		catalog,
		intent.NewClassifier(catalog),
		corpus.NewMatcher(corpus.NewIndex(corpus.SeedExamples())),
		generative.NewResponder(&mockLogger{}, provider, 600),
		analytics.NewRecorder(analytics.DefaultWindowCapacity),
		exportDir,
	)
	uc.pick = func(n int) int { return 0 }
	return uc
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionID: "s1"}

	t.Run("Empty Input Short Circuits", func(t *testing.T) {
		stub := &stubProvider{name: "stub", reply: "should not be used"}
		uc := newTestUseCase(t.TempDir(), stub)

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "   ", PreferGenerative: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != emptyInputIntent || out.Text != emptyInputResponse {
			t.Errorf("unexpected empty-input result: %+v", out)
		}
		if out.Source != model.SourceGenericFallback || out.Confidence != 0 {
			t.Errorf("empty input should be a zero-confidence generic result: %+v", out)
		}
		if stub.calls != 0 {
			t.Error("empty input must not reach the provider")
		}

		snap := uc.recorder.Snapshot()
		if snap.EmptyInputs != 1 || snap.SuccessfulResponses != 0 {
			t.Errorf("empty input miscounted: %+v", snap)
		}
		if snap.TotalRequests != 0 {
			t.Errorf("empty input should not join the request total, got %d", snap.TotalRequests)
		}
	})

	t.Run("Generative Stage Wins", func(t *testing.T) {
		stub := &stubProvider{name: "openai", reply: "Let me check that order for you."}
		uc := newTestUseCase(t.TempDir(), stub)

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "Where is my order?", PreferGenerative: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != model.SourceGenerative {
			t.Fatalf("expected generative source, got %s", out.Source)
		}
		if out.Intent != "openai_response" || out.Model != "openai" {
			t.Errorf("unexpected provenance: %+v", out)
		}
		if out.Confidence != 0.95 {
			t.Errorf("expected confidence 0.95, got %v", out.Confidence)
		}
	})

	t.Run("Provider Failure Falls Back To Corpus", func(t *testing.T) {
		stub := &stubProvider{name: "openai", err: errors.New("api down")}
		uc := newTestUseCase(t.TempDir(), stub)

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "Where is my order", PreferGenerative: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != model.SourceCorpusEnhanced {
			t.Fatalf("expected corpus-enhanced source, got %s", out.Source)
		}
		if out.Intent != "order_status" || out.Confidence != 0.9 {
			t.Errorf("unexpected corpus match: %+v", out)
		}
		if stub.calls != 1 {
			t.Errorf("expected exactly one provider attempt, got %d", stub.calls)
		}
	})

	t.Run("Prefer Generative Off Skips Provider", func(t *testing.T) {
		stub := &stubProvider{name: "openai", reply: "should not be used"}
		uc := newTestUseCase(t.TempDir(), stub)

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "Where is my order"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != model.SourceCorpusEnhanced {
			t.Errorf("expected corpus-enhanced source, got %s", out.Source)
		}
		if stub.calls != 0 {
			t.Error("provider called despite PreferGenerative=false")
		}
	})

	t.Run("Keyword Stage Catches Corpus Miss", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)

		// "password" is a catalog keyword but no corpus example or
		// corpus keyword list covers the account intent.
		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "I forgot my password"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != model.SourceKeyword {
			t.Fatalf("expected keyword source, got %s", out.Source)
		}
		if out.Intent != "account" {
			t.Errorf("expected account intent, got %s", out.Intent)
		}
		want := intent.DefaultCatalog().Responses("account")[0]
		if out.Text != want {
			t.Errorf("pinned pick should select first response, got %q", out.Text)
		}
	})

	t.Run("No Match Uses Generic Pool", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "qwzzkt blorp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != model.SourceGenericFallback || out.Intent != intent.FallbackIntent {
			t.Fatalf("expected generic fallback, got %+v", out)
		}
		if out.Confidence != 0 {
			t.Errorf("fallback confidence should be 0, got %v", out.Confidence)
		}
		if out.Text != intent.FallbackResponses[0] {
			t.Errorf("pinned pick should select first generic response, got %q", out.Text)
		}

		snap := uc.recorder.Snapshot()
		if snap.TotalRequests != 1 || snap.SuccessfulResponses != 1 {
			t.Errorf("generic fallback should count as an answered request: %+v", snap)
		}
	})

	t.Run("Panic Degrades To Apology", func(t *testing.T) {
		uc := newTestUseCase(t.TempDir(), nil)
		uc.pick = func(n int) int { panic("chooser exploded") }

		out, err := uc.Resolve(ctx, sc, chatbot.ResolveInput{Text: "I forgot my password"})
		if err != nil {
			t.Fatalf("panic must not surface as an error: %v", err)
		}
		if out.Text != errorResponse || out.Intent != errorIntent {
			t.Errorf("unexpected degraded result: %+v", out)
		}

		snap := uc.recorder.Snapshot()
		if snap.FailedResponses != 1 {
			t.Errorf("expected 1 failure recorded, got %d", snap.FailedResponses)
		}
		if snap.TotalRequests != 0 {
			t.Errorf("failed resolution should not count as a request, got %d", snap.TotalRequests)
		}
	})

	t.Run("Every Outcome Is Recorded", func(t *testing.T) {
		stub := &stubProvider{name: "openai", reply: "Sure thing."}
		uc := newTestUseCase(t.TempDir(), stub)

		uc.Resolve(ctx, model.Scope{SessionID: "web_1", Username: "alex"}, chatbot.ResolveInput{Text: "hello", PreferGenerative: true})
		uc.Resolve(ctx, model.Scope{}, chatbot.ResolveInput{Text: "qwzzkt blorp"})

		snap := uc.recorder.Snapshot()
		if snap.TotalRequests != 2 {
			t.Fatalf("expected 2 recorded requests, got %d", snap.TotalRequests)
		}
		if snap.SourceCounts[model.SourceGenerative] != 1 || snap.SourceCounts[model.SourceGenericFallback] != 1 {
			t.Errorf("unexpected source counts: %v", snap.SourceCounts)
		}
		if snap.SuccessfulResponses != 2 || snap.SuccessRate != 100 {
			t.Errorf("every answered request should count successful: %+v", snap)
		}
		if snap.Recent[0].SessionID != "web_1" || snap.Recent[0].Username != "alex" {
			t.Errorf("scope identity not recorded: %+v", snap.Recent[0])
		}
		if snap.Recent[1].SessionID != model.DefaultSessionID {
			t.Errorf("missing scope should default session: %+v", snap.Recent[1])
		}
		if snap.Recent[0].ID == "" || snap.Recent[0].ID == snap.Recent[1].ID {
			t.Error("records should carry unique IDs")
		}
	})
}
