package generative

import (
	"context"
	"fmt"
	"strings"

	"customer-support-chatbot/pkg/gemini"
)

// geminiProvider adapts the Gemini content generation client.
type geminiProvider struct {
	client *gemini.Client
}

func newGeminiProvider(apiKey, model string) *geminiProvider {
	client := gemini.NewClient(apiKey)
	client.SetModel(model)
	return &geminiProvider{client: client}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Generate(ctx context.Context, input GenerateInput) (string, error) {
	contents := make([]gemini.Content, 0, 1+2*len(input.History))

	for _, ex := range input.History {
		contents = append(contents,
			gemini.Content{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: ex.User}}},
			gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: ex.Assistant}}},
		)
	}

	turn := input.Text
	if input.Context != "" {
		turn = fmt.Sprintf("Context: %s\nUser: %s", input.Context, input.Text)
	}
	contents = append(contents, gemini.Content{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: turn}}})

	resp, err := p.client.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: supportSystemPrompt}}},
		Contents:          contents,
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     replyTemp,
			MaxOutputTokens: replyMaxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
