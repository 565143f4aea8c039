package http

import (
	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
	// PreferGenerative defaults to true when absent; clients opt out to
	// exercise the local strategies only.
	PreferGenerative *bool `json:"prefer_generative"`
}

func (r chatReq) toInput() chatbot.ResolveInput {
	prefer := true
	if r.PreferGenerative != nil {
		prefer = *r.PreferGenerative
	}
	return chatbot.ResolveInput{
		Text:             r.Text,
		PreferGenerative: prefer,
	}
}

func (r chatReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

type sentimentReq struct {
	Text string `json:"text" binding:"required"`
}

func (r sentimentReq) toInput() chatbot.SentimentInput {
	return chatbot.SentimentInput{Text: r.Text}
}

// --- Response DTOs ---

type chatResp struct {
	Text         string  `json:"text"`
	Intent       string  `json:"intent"`
	Confidence   float64 `json:"confidence"`
	ResponseTime float64 `json:"response_time"`
	Source       string  `json:"source"`
	Model        string  `json:"model,omitempty"`
}

func (h *handler) newChatResp(out chatbot.ResolveOutput) chatResp {
	return chatResp{
		Text:         out.Text,
		Intent:       out.Intent,
		Confidence:   out.Confidence,
		ResponseTime: out.ResponseTime.Seconds(),
		Source:       string(out.Source),
		Model:        out.Model,
	}
}

type exportResp struct {
	File string `json:"file"`
}

type sentimentResp struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

func (h *handler) newSentimentResp(out chatbot.SentimentOutput) sentimentResp {
	return sentimentResp{
		Sentiment:  out.Sentiment,
		Confidence: out.Confidence,
	}
}

type summaryResp struct {
	Summary string `json:"summary"`
}
