package telegram

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/model"
	pkgLog "customer-support-chatbot/pkg/log"
	pkgResponse "customer-support-chatbot/pkg/response"
	pkgTelegram "customer-support-chatbot/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chatbot.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an ack within a few seconds and
// the generative stage alone may take up to 10s.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts).
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled on response.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, processingFailedMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	if cmd, ok := msg.Command(); ok {
		return h.handleCommand(ctx, msg.Chat.ID, cmd)
	}

	// Best effort; the reply still goes out if the action fails.
	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	sc := model.Scope{Username: userName(msg)}
	if msg.From != nil {
		sc.SessionID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	output, err := h.uc.Resolve(ctx, sc, chatbot.ResolveInput{
		Text:             msg.Text,
		PreferGenerative: true,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Resolve failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, processingFailedMessage)
	}

	reply := fmt.Sprintf("%s\n\n🎯 Intent: %s\n📊 Confidence: %.2f\n⏱️ Response Time: %.2fs",
		output.Text, output.Intent, output.Confidence, output.ResponseTime.Seconds())

	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

func (h *handler) handleCommand(ctx context.Context, chatID int64, cmd string) error {
	switch cmd {
	case "start":
		return h.bot.SendMessage(ctx, chatID, welcomeMessage)
	case "help":
		return h.bot.SendMessage(ctx, chatID, helpMessage)
	case "stats":
		return h.bot.SendMessage(ctx, chatID, h.statsMessage(ctx))
	case "clear":
		// Clears the generative context and zeroes analytics, counters
		// and conversation window both.
		h.uc.ClearHistory(ctx)
		h.uc.ResetAnalytics(ctx)
		return h.bot.SendMessage(ctx, chatID, clearedMessage)
	case "export":
		path, err := h.uc.ExportConversations(ctx)
		if err != nil {
			return h.bot.SendMessage(ctx, chatID, "Export failed. Please try again later.")
		}
		return h.bot.SendMessage(ctx, chatID, fmt.Sprintf("📥 Conversation data exported to: %s", path))
	default:
		return h.bot.SendMessage(ctx, chatID, unknownCommandMessage)
	}
}

func (h *handler) statsMessage(ctx context.Context) string {
	snap := h.uc.Analytics(ctx)

	var sb strings.Builder
	sb.WriteString("📊 Bot Statistics:\n\n")
	sb.WriteString("📈 Performance Metrics:\n")
	fmt.Fprintf(&sb, "• Total Requests: %d\n", snap.TotalRequests)
	fmt.Fprintf(&sb, "• Success Rate: %.1f%%\n", snap.SuccessRate)
	fmt.Fprintf(&sb, "• Average Response Time: %.2fs\n", snap.AverageResponseTime)

	if len(snap.IntentDistribution) > 0 {
		sb.WriteString("\n🎯 Intent Distribution:\n")
		names := make([]string, 0, len(snap.IntentDistribution))
		for name := range snap.IntentDistribution {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&sb, "• %s: %d\n", name, snap.IntentDistribution[name])
		}
	}

	return sb.String()
}

func userName(msg *pkgTelegram.Message) string {
	if msg.From == nil {
		return ""
	}
	return msg.From.Username
}
