package hybrid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dcrowell-labs/chronoverify/constraint"
)

// synthesizeAnswer renders the solver state into a short natural
// language sentence, keyed off the question's apparent intent.
// orderedNames preserves the order events were extracted in, since a Go
// map has no iteration order and "the first interval with X" must mean
// something deterministic.
func synthesizeAnswer(s *constraint.Solver, question string, consistent bool, orderedNames []string) string {
	if !consistent {
		return "The temporal constraints are inconsistent."
	}

	lower := strings.ToLower(question)

	if strings.Contains(lower, "how long") || strings.Contains(lower, "duration") {
		for _, name := range orderedNames {
			iv, ok := s.Interval(name)
			if !ok || iv.Duration == nil {
				continue
			}
			hours := *iv.Duration
			switch {
			case hours < 1:
				return fmt.Sprintf("The duration is %.0f minutes.", hours*60)
			case hours < 24:
				return fmt.Sprintf("The duration is %.1f hours.", hours)
			default:
				return fmt.Sprintf("The duration is %.1f days.", hours/24)
			}
		}
	}

	if strings.Contains(lower, "order") || strings.Contains(lower, "sequence") {
		return fmt.Sprintf("The temporal sequence involves: %s.", strings.Join(orderedNames, ", "))
	}

	if strings.Contains(lower, "when") {
		for _, name := range orderedNames {
			iv, ok := s.Interval(name)
			if !ok || iv.Start == nil {
				continue
			}
			return fmt.Sprintf("%s starts at time %g.", name, *iv.Start)
		}
	}

	return "Symbolic reasoning completed successfully."
}

var integerPattern = regexp.MustCompile(`\d+`)

// numericMismatch reports whether two answer strings disagree on the
// set of integer substrings they each contain, when both sides actually
// contain at least one number. Matches the prototype's crude "do the
// numbers match" verification heuristic.
func numericMismatch(a, b string) bool {
	as := integerPattern.FindAllString(a, -1)
	bs := integerPattern.FindAllString(b, -1)
	if len(as) == 0 || len(bs) == 0 {
		return false
	}
	return !sameSet(as, bs)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int)
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
