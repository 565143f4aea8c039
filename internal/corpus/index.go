package corpus

// indexedExample is an Example plus its precomputed lowercase forms.
type indexedExample struct {
	Example
	inputLower      string
	variationsLower []string
}

// Index is the static collection of labeled examples plus per-intent keyword
// lists. Built once at startup from an external corpus load; read-only after.
type Index struct {
	examples []indexedExample
	keywords map[string][]string
}

// NewIndex builds an index over the supplied examples. Surface variations
// are generated eagerly so matching never allocates per request.
func NewIndex(examples []Example) *Index {
	idx := &Index{
		examples: make([]indexedExample, 0, len(examples)),
		keywords: intentKeywords,
	}
	for _, ex := range examples {
		ie := indexedExample{
			Example:    ex,
			inputLower: lower(ex.Input),
		}
		for _, v := range GenerateVariations(ex.Input, ex.Intent) {
			ie.variationsLower = append(ie.variationsLower, lower(v))
		}
		idx.examples = append(idx.examples, ie)
	}
	return idx
}

// Len returns the number of indexed examples.
func (idx *Index) Len() int {
	return len(idx.examples)
}

// Keywords returns the matcher's keyword list for an intent.
func (idx *Index) Keywords(intentName string) []string {
	return idx.keywords[intentName]
}

// ByIntent returns the examples labeled with the given intent.
func (idx *Index) ByIntent(intentName string) []Example {
	var out []Example
	for _, ex := range idx.examples {
		if ex.Intent == intentName {
			out = append(out, ex.Example)
		}
	}
	return out
}

// Distribution returns the example count per intent label.
func (idx *Index) Distribution() map[string]int {
	dist := make(map[string]int)
	for _, ex := range idx.examples {
		dist[ex.Intent]++
	}
	return dist
}
