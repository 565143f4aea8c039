package intent

import "strings"

// classifier confidence saturates at 3 distinct keyword hits.
const saturationHits = 3.0

// Classifier scores input text against the catalog's keyword lists.
// It is the baseline strategy: it always produces a result, degrading to
// FallbackIntent with zero confidence when nothing matches.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier creates a keyword classifier over the given catalog.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify returns the best-matching intent name and a confidence in [0, 1].
// Matching is exact lowercase substring only; the intent with the strictly
// highest keyword hit count wins and catalog order breaks ties.
func (c *Classifier) Classify(text string) (string, float64) {
	normalized := strings.ToLower(text)

	bestIntent := FallbackIntent
	bestScore := 0

	for _, it := range c.catalog.Intents() {
		score := 0
		for _, keyword := range it.Keywords {
			if strings.Contains(normalized, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestIntent = it.Name
		}
	}

	if bestScore == 0 {
		return FallbackIntent, 0.0
	}

	confidence := float64(bestScore) / saturationHits
	if confidence > 1.0 {
		confidence = 1.0
	}
	return bestIntent, confidence
}
