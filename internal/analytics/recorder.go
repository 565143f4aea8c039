package analytics

import (
	"sync"
	"time"

	"customer-support-chatbot/internal/model"
)

// DefaultWindowCapacity is the combined-view conversation window size.
// The baseline-only deployment uses BaselineWindowCapacity instead.
const (
	DefaultWindowCapacity  = 100
	BaselineWindowCapacity = 10
)

// Recorder is the single mutable state of the service: running counters,
// per-intent distribution, latency samples, and a bounded FIFO window of
// recent conversations. All access goes through one mutex; writers are the
// orchestrator, readers take consistent copies via Snapshot.
type Recorder struct {
	mu sync.Mutex

	capacity int

	total      int
	successful int
	failed     int
	empty      int

	sourceCounts map[model.Source]int
	intentCounts map[string]int
	latencies    []time.Duration

	// conversations is a FIFO window: append at tail, evict from head.
	conversations []model.ConversationRecord
}

// NewRecorder creates a recorder with the given conversation window
// capacity. Capacity values below 1 fall back to DefaultWindowCapacity.
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = DefaultWindowCapacity
	}
	return &Recorder{
		capacity:     capacity,
		sourceCounts: make(map[model.Source]int),
		intentCounts: make(map[string]int),
	}
}

// Record registers one resolved exchange. Every recorded exchange counts
// as answered, generic fallbacks included; only RecordFailure and
// RecordEmptyInput mark the non-answered paths. The total counter always
// equals the sum of per-source counts; eviction from the window is
// strictly FIFO.
func (r *Recorder) Record(rec model.ConversationRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	r.successful++
	r.sourceCounts[rec.Source]++
	r.intentCounts[rec.Intent]++
	r.latencies = append(r.latencies, rec.ResponseTime)

	r.conversations = append(r.conversations, rec)
	if overflow := len(r.conversations) - r.capacity; overflow > 0 {
		r.conversations = append(r.conversations[:0], r.conversations[overflow:]...)
	}
}

// RecordEmptyInput counts a blank message. Blank messages are answered with
// a fixed prompt before classification starts, so they stay out of the
// request total, the source counts, and the conversation window.
func (r *Recorder) RecordEmptyInput() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.empty++
}

// RecordFailure counts an unexpected internal failure that produced an
// apologetic generic response.
func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

// History returns a copy of the full conversation window, oldest first.
func (r *Recorder) History() []model.ConversationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ConversationRecord, len(r.conversations))
	copy(out, r.conversations)
	return out
}

// Snapshot returns a read-only copy of the state with derived metrics.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		TotalRequests:       r.total,
		SuccessfulResponses: r.successful,
		FailedResponses:     r.failed,
		EmptyInputs:         r.empty,
		SourceCounts:        make(map[model.Source]int, len(r.sourceCounts)),
		IntentDistribution:  make(map[string]int, len(r.intentCounts)),
		ConversationCount:   len(r.conversations),
	}

	for src, n := range r.sourceCounts {
		snap.SourceCounts[src] = n
	}
	for name, n := range r.intentCounts {
		snap.IntentDistribution[name] = n
	}

	if r.total > 0 {
		snap.SuccessRate = float64(r.successful) / float64(r.total) * 100
	}
	if len(r.latencies) > 0 {
		var sum time.Duration
		for _, d := range r.latencies {
			sum += d
		}
		snap.AverageResponseTime = (sum / time.Duration(len(r.latencies))).Seconds()
	}

	start := len(r.conversations) - recentLimit
	if start < 0 {
		start = 0
	}
	snap.Recent = make([]model.ConversationRecord, len(r.conversations)-start)
	copy(snap.Recent, r.conversations[start:])

	return snap
}

// Reset returns the recorder to its zero state. Used between test runs and
// on operator request.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = 0
	r.successful = 0
	r.failed = 0
	r.empty = 0
	r.sourceCounts = make(map[model.Source]int)
	r.intentCounts = make(map[string]int)
	r.latencies = nil
	r.conversations = nil
}
