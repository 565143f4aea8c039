package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. A missing or blank text is
// not a binding error; the use case answers it with a prompt response.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSentimentReq binds and validates the sentiment request body.
func (h *handler) processSentimentReq(c *gin.Context) (sentimentReq, error) {
	var req sentimentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
