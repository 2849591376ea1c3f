package extractor

import (
	"strings"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/dcrowell-labs/chronoverify/interval"
)

// LiftEvent converts an extractor Event into a solver interval.Interval.
// StartTime and EndTime are parsed via ParseTimeValue, Duration via
// ParseDuration; fields that fail to parse are simply left unknown
// rather than aborting the lift (per §4.4, unparseable fields yield an
// absent value, not an error).
func LiftEvent(e Event) (interval.Interval, error) {
	var start, end, duration *float64

	if v, ok := ParseTimeValue(e.StartTime).Float(); ok {
		start = interval.Ptr(v)
	}
	if v, ok := ParseTimeValue(e.EndTime).Float(); ok {
		end = interval.Ptr(v)
	}
	if secs, ok := ParseDuration(e.Duration); ok {
		d := secs / 3600
		duration = interval.Ptr(d)
	}

	return interval.New(e.Name, start, end, duration)
}

// MapRelation resolves a relation string from an extractor payload to
// an allen.Relation, accepting both hyphen and underscore spellings and
// matching case-insensitively. The bool is false for unknown strings,
// which callers should drop silently (per §4.4).
func MapRelation(s string) (allen.Relation, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	return allen.Parse(normalized)
}
