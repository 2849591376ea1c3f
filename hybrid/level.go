package hybrid

import (
	"strings"

	"github.com/dcrowell-labs/chronoverify/extractor"
)

var calculationWords = []string{"how long", "duration", "calculate", "total time"}
var orderingWords = []string{"order", "sequence", "before", "after", "when"}

// detectLevel infers the extraction level from the question's surface
// form when the caller hasn't pinned one down: calculation keywords win
// first, then ordering keywords, defaulting to plain extraction.
func detectLevel(question string) extractor.Level {
	lower := strings.ToLower(question)
	for _, w := range calculationWords {
		if strings.Contains(lower, w) {
			return extractor.LevelCalculation
		}
	}
	for _, w := range orderingWords {
		if strings.Contains(lower, w) {
			return extractor.LevelOrdering
		}
	}
	return extractor.LevelExtraction
}
