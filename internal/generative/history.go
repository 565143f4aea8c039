package generative

import "sync"

// contextExchanges is how many completed exchanges are handed to the
// provider as conversation context.
const contextExchanges = 6

// History is a bounded, mutex-guarded window of completed exchanges.
// It only retains what the provider context needs.
type History struct {
	mu        sync.Mutex
	exchanges []Exchange
}

// NewHistory creates an empty history window.
func NewHistory() *History {
	return &History{}
}

// Append records one completed exchange, evicting the oldest entry once
// the window is full.
func (h *History) Append(user, assistant string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.exchanges = append(h.exchanges, Exchange{User: user, Assistant: assistant})
	if overflow := len(h.exchanges) - contextExchanges; overflow > 0 {
		h.exchanges = append(h.exchanges[:0], h.exchanges[overflow:]...)
	}
}

// Recent returns a copy of the window, oldest first.
func (h *History) Recent() []Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Exchange, len(h.exchanges))
	copy(out, h.exchanges)
	return out
}

// Clear empties the window.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchanges = nil
}
