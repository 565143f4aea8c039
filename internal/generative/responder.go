package generative

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	pkgLog "customer-support-chatbot/pkg/log"
)

const (
	// generativeConfidence is reported for every successful generation.
	// Providers do not expose calibrated scores for free-form replies.
	generativeConfidence = 0.95

	// requestTimeout bounds one provider round trip. There is exactly one
	// attempt; on timeout the caller moves down the fallback chain.
	requestTimeout = 10 * time.Second

	defaultRequestsPerMinute = 30
)

// Responder wraps a provider with the service-side policy: one attempt,
// a hard timeout, a request budget, and a bounded history window.
type Responder struct {
	l        pkgLog.Logger
	provider Provider
	limiter  *rate.Limiter
	history  *History
}

// NewResponder creates a responder around the given provider. A nil
// provider produces a disabled responder whose Reply always fails fast.
func NewResponder(l pkgLog.Logger, provider Provider, requestsPerMinute int) *Responder {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &Responder{
		l:        l,
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
		history:  NewHistory(),
	}
}

// Enabled reports whether a provider is configured.
func (r *Responder) Enabled() bool {
	return r != nil && r.provider != nil
}

// Provider returns the configured provider name, or empty when disabled.
func (r *Responder) Provider() string {
	if !r.Enabled() {
		return ""
	}
	return r.provider.Name()
}

// Reply asks the provider for a free-form answer to one user turn.
// Successful replies are recorded in the history window.
func (r *Responder) Reply(ctx context.Context, sessionID, text, contextHint string) (Reply, error) {
	if !r.Enabled() {
		return Reply{}, ErrDisabled
	}
	if !r.limiter.Allow() {
		r.l.Warn(ctx, "generative.Responder.Reply: request budget exhausted")
		return Reply{}, ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	answer, err := r.provider.Generate(ctx, GenerateInput{
		Text:      text,
		Context:   contextHint,
		History:   r.history.Recent(),
		SessionID: sessionID,
	})
	if err != nil {
		r.l.Warnf(ctx, "generative.Responder.Reply: %s generation failed: %v", r.provider.Name(), err)
		return Reply{}, err
	}

	r.history.Append(text, answer)
	return Reply{Text: answer, Confidence: generativeConfidence}, nil
}

// ClearHistory drops the conversation context window.
func (r *Responder) ClearHistory() {
	if r != nil {
		r.history.Clear()
	}
}

// Sentiment classifies text via the provider, when it supports that.
func (r *Responder) Sentiment(ctx context.Context, text string) (string, error) {
	if !r.Enabled() {
		return "", ErrDisabled
	}
	analyzer, ok := r.provider.(SentimentAnalyzer)
	if !ok {
		return "", ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return analyzer.Sentiment(ctx, text)
}

// Summarize condenses the current history window via the provider, when
// it supports that.
func (r *Responder) Summarize(ctx context.Context) (string, error) {
	if !r.Enabled() {
		return "", ErrDisabled
	}
	summarizer, ok := r.provider.(Summarizer)
	if !ok {
		return "", ErrUnsupported
	}

	exchanges := r.history.Recent()
	if len(exchanges) == 0 {
		return "", ErrEmptyReply
	}

	var sb strings.Builder
	for _, ex := range exchanges {
		sb.WriteString("User: ")
		sb.WriteString(ex.User)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(ex.Assistant)
		sb.WriteString("\n")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return summarizer.Summarize(ctx, sb.String())
}
