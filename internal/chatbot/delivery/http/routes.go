package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("", h.Analytics)
		analytics.POST("/reset", h.ResetAnalytics)
		analytics.POST("/export", h.Export)
	}

	rg.POST("/sentiment", h.Sentiment)
	rg.GET("/summary", h.Summary)
}
