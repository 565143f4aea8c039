package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Resolve a support message
// @Description Answers one user message through the fallback chain: generative, corpus-enhanced, keyword, generic.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Analytics godoc
// @Summary     Analytics snapshot
// @Description Returns counters, distributions, derived rates, and the most recent conversations.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} analytics.Snapshot
// @Router      /api/v1/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	response.OK(c, h.uc.Analytics(c.Request.Context()))
}

// ResetAnalytics godoc
// @Summary     Reset analytics
// @Description Zeroes all counters and the conversation window. Operator action.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/analytics/reset [POST]
func (h *handler) ResetAnalytics(c *gin.Context) {
	h.uc.ResetAnalytics(c.Request.Context())
	response.OK(c, nil)
}

// Export godoc
// @Summary     Export conversations
// @Description Writes analytics and the conversation window to a timestamped JSON file.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.uc.ExportConversations(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportConversations: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, exportResp{File: path})
}

// Sentiment godoc
// @Summary     Classify sentiment
// @Description Labels text as positive, negative or neutral via the generative provider. Dashboard only.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body sentimentReq true "Text to classify"
// @Success     200 {object} sentimentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sentiment [POST]
func (h *handler) Sentiment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSentimentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sentiment(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Sentiment: %v", err)
		response.Error(c, h.mapSentimentError(err), nil)
		return
	}

	response.OK(c, h.newSentimentResp(output))
}

// Summary godoc
// @Summary     Summarize recent conversation
// @Description Condenses the recent conversation context via the generative provider. Dashboard only.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx)
	if err != nil {
		if errors.Is(err, chatbot.ErrGenerativeDisabled) {
			response.Error(c, errSummaryUnavailable, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, summaryResp{Summary: output.Summary})
}
