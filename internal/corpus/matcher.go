package corpus

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Match tier confidences. Exact substring beats variation beats keyword
// overlap; keyword confidence grows 0.2 per hit capped below the variation
// tier so tier ordering always holds.
const (
	exactConfidence     = 0.9
	variationConfidence = 0.8
	keywordCapPerHit    = 0.2
	keywordConfidenceCap = 0.7
)

const defaultCacheSize = 512

// Match is the result of a corpus lookup.
type Match struct {
	Intent     string
	Confidence float64
	Response   string
}

// Matcher scores input against the corpus index using three tiers:
// exact-substring, known variation, and keyword overlap. It is the stronger
// local strategy in the fallback chain.
type Matcher struct {
	index *Index
	cache *lru.Cache[string, Match]
}

// NewMatcher creates a matcher over the index. Match results for a given
// normalized input are deterministic, so they are memoized in a small LRU.
func NewMatcher(index *Index) *Matcher {
	cache, _ := lru.New[string, Match](defaultCacheSize)
	return &Matcher{
		index: index,
		cache: cache,
	}
}

// Match returns the best candidate across all examples and tiers, or
// ok=false when nothing scores above zero. Callers treat a miss as
// continue-down-the-chain, not as an error.
func (m *Matcher) Match(text string) (Match, bool) {
	normalized := lower(text)
	if normalized == "" {
		return Match{}, false
	}

	if cached, ok := m.cache.Get(normalized); ok {
		return cached, true
	}

	var best Match

	for _, ex := range m.index.examples {
		// Tier 1: input contained in the stored example input. The reverse
		// direction is deliberately not checked.
		if strings.Contains(ex.inputLower, normalized) {
			if exactConfidence > best.Confidence {
				best = Match{Intent: ex.Intent, Confidence: exactConfidence, Response: ex.Output}
			}
		}

		// Tier 2: input contained in a generated surface variation.
		for _, variation := range ex.variationsLower {
			if strings.Contains(variation, normalized) {
				if variationConfidence > best.Confidence {
					best = Match{Intent: ex.Intent, Confidence: variationConfidence, Response: ex.Output}
				}
				break
			}
		}

		// Tier 3: keyword overlap against the corpus keyword list.
		hits := 0
		for _, keyword := range m.index.Keywords(ex.Intent) {
			if strings.Contains(normalized, keyword) {
				hits++
			}
		}
		if hits > 0 {
			confidence := float64(hits) * keywordCapPerHit
			if confidence > keywordConfidenceCap {
				confidence = keywordConfidenceCap
			}
			if confidence > best.Confidence {
				best = Match{Intent: ex.Intent, Confidence: confidence, Response: ex.Output}
			}
		}
	}

	if best.Confidence == 0 {
		return Match{}, false
	}

	m.cache.Add(normalized, best)
	return best, true
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
