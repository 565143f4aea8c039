package telegram

import (
	"github.com/gin-gonic/gin"

	"customer-support-chatbot/internal/chatbot"
	pkgLog "customer-support-chatbot/pkg/log"
	pkgTelegram "customer-support-chatbot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chatbot.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
