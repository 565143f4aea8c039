package model

import "time"

// Source identifies which strategy in the fallback chain produced a result.
type Source string

const (
	SourceGenerative      Source = "generative"
	SourceCorpusEnhanced  Source = "corpus-enhanced"
	SourceKeyword         Source = "keyword"
	SourceGenericFallback Source = "generic-fallback"
)

// ConversationRecord is one resolved exchange, owned by the analytics recorder.
// Records are append-only; nothing mutates them after Record().
type ConversationRecord struct {
	ID           string        `json:"id"`
	Timestamp    time.Time     `json:"timestamp"`
	SessionID    string        `json:"session_id"`
	Username     string        `json:"username,omitempty"`
	UserInput    string        `json:"user_input"`
	Intent       string        `json:"intent"`
	Response     string        `json:"response"`
	Confidence   float64       `json:"confidence"`
	ResponseTime time.Duration `json:"response_time"`
	Source       Source        `json:"source"`
}
