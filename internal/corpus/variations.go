package corpus

import "strings"

// GenerateVariations produces deterministic surface variations of a base
// input. Which templates apply depends on the intent: greetings get
// punctuation/prefix variants, order and shipping queries get task-verb
// prefixes, everything else keeps only the base string.
func GenerateVariations(base string, intentName string) []string {
	variations := []string{base}

	switch intentName {
	case "greeting":
		variations = append(variations,
			base+" there",
			base+"!",
			"Hey "+strings.ToLower(base),
			"Good morning "+strings.ToLower(base),
		)
	case "order_status":
		variations = append(variations,
			"Where is "+base,
			"Status of "+base,
			"Track "+base,
			"Check "+base,
		)
	case "shipping":
		variations = append(variations,
			"How long for "+base,
			"When will "+base+" arrive",
			"Delivery time for "+base,
			"Shipping duration for "+base,
		)
	}

	return variations
}
