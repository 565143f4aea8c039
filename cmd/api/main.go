package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-support-chatbot/config"
	_ "customer-support-chatbot/docs" // Swagger docs
	"customer-support-chatbot/internal/analytics"
	chatbotHTTP "customer-support-chatbot/internal/chatbot/delivery/http"
	tgDelivery "customer-support-chatbot/internal/chatbot/delivery/telegram"
	"customer-support-chatbot/internal/chatbot/usecase"
	"customer-support-chatbot/internal/corpus"
	"customer-support-chatbot/internal/generative"
	"customer-support-chatbot/internal/httpserver"
	"customer-support-chatbot/internal/intent"
	"customer-support-chatbot/pkg/log"
	"customer-support-chatbot/pkg/telegram"
)

// @title       Customer Support Chatbot API
// @description Customer support intent resolution with keyword, corpus, and generative stages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Customer Support Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Local pipeline: intent catalog, keyword classifier, corpus matcher
	catalog := intent.DefaultCatalog()
	classifier := intent.NewClassifier(catalog)
	matcher := corpus.NewMatcher(corpus.NewIndex(corpus.SeedExamples()))

	// 4. Generative provider (optional)
	provider, err := generative.NewProvider(ctx, generative.Config{
		Provider:        cfg.LLM.Provider,
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		ProjectID:       cfg.LLM.ProjectID,
		CredentialsFile: cfg.LLM.CredentialsFile,
	})
	if err != nil {
		logger.Warnf(ctx, "Generative provider unavailable, continuing with local pipeline only: %v", err)
		provider = nil
	}
	if provider != nil {
		logger.Infof(ctx, "Generative provider: %s", provider.Name())
	} else {
		logger.Info(ctx, "Generative provider disabled")
	}
	responder := generative.NewResponder(logger, provider, cfg.LLM.RequestsPerMinute)

	// 5. Analytics
	recorder := analytics.NewRecorder(cfg.Analytics.WindowCapacity)

	// 6. Chatbot UseCase and HTTP delivery
	uc := usecase.New(logger, catalog, classifier, matcher, responder, recorder, cfg.Analytics.ExportDir)
	chatbotHandler := chatbotHTTP.New(logger, uc)

	// 7. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot)

		// Auto-detect ngrok when no public URL is configured.
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, Telegram delivery disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatbotHandler:  chatbotHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
