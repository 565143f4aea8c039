package generative

import (
	"context"
	"fmt"

	"customer-support-chatbot/pkg/dialogflow"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderDialogflow = "dialogflow"
)

// Config selects and configures one provider. An empty Provider disables
// generation entirely.
type Config struct {
	Provider string
	APIKey   string
	Model    string

	// Dialogflow only.
	ProjectID       string
	CredentialsFile string
}

// NewProvider builds the configured provider. Exactly one provider serves
// a deployment; switching providers is a restart, not a runtime fallback.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return newOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return newGeminiProvider(cfg.APIKey, cfg.Model), nil
	case ProviderDialogflow:
		if cfg.ProjectID == "" || cfg.CredentialsFile == "" {
			return nil, fmt.Errorf("dialogflow provider requires a project ID and credentials file")
		}
		client, err := dialogflow.NewClientFromCredentialsFile(ctx, cfg.ProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize dialogflow provider: %w", err)
		}
		return newDialogflowProvider(client), nil
	default:
		return nil, fmt.Errorf("unknown generative provider %q", cfg.Provider)
	}
}
