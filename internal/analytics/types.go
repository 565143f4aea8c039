package analytics

import (
	"customer-support-chatbot/internal/model"
)

// recentLimit caps the `recent` view in snapshots, mirroring the
// short-history digest shown on dashboards.
const recentLimit = 10

// Snapshot is a consistent point-in-time copy of the recorder state plus
// derived metrics. Safe to serialize and hand to collaborators.
type Snapshot struct {
	TotalRequests       int                        `json:"total_requests"`
	SuccessfulResponses int                        `json:"successful_responses"`
	FailedResponses     int                        `json:"failed_responses"`
	EmptyInputs         int                        `json:"empty_inputs"`
	SourceCounts        map[model.Source]int       `json:"source_counts"`
	IntentDistribution  map[string]int             `json:"intent_distribution"`
	SuccessRate         float64                    `json:"success_rate"`
	AverageResponseTime float64                    `json:"average_response_time"`
	ConversationCount   int                        `json:"conversation_count"`
	Recent              []model.ConversationRecord `json:"recent_conversations"`
}

// Export is the on-disk analytics document written by ExportFile.
type Export struct {
	ExportTimestamp string                     `json:"export_timestamp"`
	Analytics       Snapshot                   `json:"analytics"`
	Conversations   []model.ConversationRecord `json:"conversations"`
}
