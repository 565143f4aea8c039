package corpus

// Example is one labeled training exchange loaded at startup.
// Immutable once the index is built.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Intent string `json:"intent"`
}
