package http

import (
	"errors"

	"customer-support-chatbot/internal/chatbot"
)

var errSentimentUnavailable = errors.New("sentiment analysis requires a generative provider")
var errSummaryUnavailable = errors.New("summary requires a generative provider")

// mapSentimentError translates domain errors into client-facing messages.
func (h *handler) mapSentimentError(err error) error {
	switch {
	case errors.Is(err, chatbot.ErrEmptyText):
		return err
	case errors.Is(err, chatbot.ErrGenerativeDisabled):
		return errSentimentUnavailable
	default:
		return err
	}
}
