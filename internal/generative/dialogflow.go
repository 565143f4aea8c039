package generative

import (
	"context"
	"strings"

	"customer-support-chatbot/pkg/dialogflow"
)

// dialogflowProvider adapts a Dialogflow ES agent. Conversation context
// lives server-side in the agent session, so History is ignored and
// SessionID carries the continuity instead.
type dialogflowProvider struct {
	client *dialogflow.Client
}

func newDialogflowProvider(client *dialogflow.Client) *dialogflowProvider {
	return &dialogflowProvider{client: client}
}

func (p *dialogflowProvider) Name() string { return "dialogflow" }

func (p *dialogflowProvider) Generate(ctx context.Context, input GenerateInput) (string, error) {
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = "default"
	}

	result, err := p.client.DetectIntent(ctx, dialogflow.DetectIntentRequest{
		SessionID: sessionID,
		Text:      input.Text,
	})
	if err != nil {
		return "", err
	}

	// A fallback match means the agent did not understand; let the local
	// strategies answer instead of relaying the agent's apology.
	if result.IsFallback {
		return "", ErrEmptyReply
	}

	text := strings.TrimSpace(result.FulfillmentText)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
