package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-chatbot/internal/chatbot"
	pkgLog "customer-support-chatbot/pkg/log"
)

// Handler is the public interface for the chatbot HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Analytics(c *gin.Context)
	ResetAnalytics(c *gin.Context)
	Export(c *gin.Context)
	Sentiment(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chatbot domain.
func New(l pkgLog.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
