package generative

import (
	"context"
	"fmt"
	"strings"

	"customer-support-chatbot/pkg/openai"
)

// Generation parameters per capability. Replies get room to explain,
// sentiment wants a single low-variance label, summaries sit in between.
const (
	replyMaxTokens  = 150
	replyTemp       = 0.7
	sentimentTokens = 10
	sentimentTemp   = 0.1
	summaryTokens   = 100
	summaryTemp     = 0.3
)

// openaiProvider adapts the OpenAI chat completions client. It is the
// only provider implementing all three capabilities.
type openaiProvider struct {
	client *openai.Client
}

func newOpenAIProvider(apiKey, model string) *openaiProvider {
	client := openai.NewClient(apiKey)
	client.SetModel(model)
	return &openaiProvider{client: client}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Generate(ctx context.Context, input GenerateInput) (string, error) {
	messages := make([]openai.Message, 0, 2+2*len(input.History))
	messages = append(messages, openai.Message{Role: openai.RoleSystem, Content: supportSystemPrompt})

	for _, ex := range input.History {
		messages = append(messages,
			openai.Message{Role: openai.RoleUser, Content: ex.User},
			openai.Message{Role: openai.RoleAssistant, Content: ex.Assistant},
		)
	}

	turn := input.Text
	if input.Context != "" {
		turn = fmt.Sprintf("Context: %s\nUser: %s", input.Context, input.Text)
	}
	messages = append(messages, openai.Message{Role: openai.RoleUser, Content: turn})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemp,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Content())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func (p *openaiProvider) Sentiment(ctx context.Context, text string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: sentimentSystemPrompt},
			{Role: openai.RoleUser, Content: text},
		},
		MaxTokens:   sentimentTokens,
		Temperature: sentimentTemp,
	})
	if err != nil {
		return "", err
	}

	label := strings.ToLower(strings.TrimSpace(resp.Content()))
	switch label {
	case "positive", "negative", "neutral":
		return label, nil
	}
	// Chatty models sometimes wrap the label in a sentence.
	for _, known := range []string{"positive", "negative", "neutral"} {
		if strings.Contains(label, known) {
			return known, nil
		}
	}
	return "neutral", nil
}

func (p *openaiProvider) Summarize(ctx context.Context, transcript string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: summarySystemPrompt},
			{Role: openai.RoleUser, Content: transcript},
		},
		MaxTokens:   summaryTokens,
		Temperature: summaryTemp,
	})
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(resp.Content())
	if summary == "" {
		return "", ErrEmptyReply
	}
	return summary, nil
}
