// Package allen implements Allen's interval algebra: the thirteen
// qualitative relations between two time intervals, their inverses, the
// composition table that lets two chained relations be combined into a
// disjunctive set of possible relations, and determination of the exact
// relation between two fully-known intervals.
package allen

import "fmt"

// Relation is one of Allen's thirteen basic relations between two time
// intervals X and Y.
type Relation uint8

const (
	Before Relation = iota
	After
	Meets
	MetBy
	Overlaps
	OverlappedBy
	During
	Contains
	Starts
	StartedBy
	Finishes
	FinishedBy
	Equals

	numRelations = int(Equals) + 1
)

// All lists all thirteen basic relations in a stable order.
var All = [numRelations]Relation{
	Before, After, Meets, MetBy, Overlaps, OverlappedBy,
	During, Contains, Starts, StartedBy, Finishes, FinishedBy, Equals,
}

var names = [numRelations]string{
	Before:       "before",
	After:        "after",
	Meets:        "meets",
	MetBy:        "met-by",
	Overlaps:     "overlaps",
	OverlappedBy: "overlapped-by",
	During:       "during",
	Contains:     "contains",
	Starts:       "starts",
	StartedBy:    "started-by",
	Finishes:     "finishes",
	FinishedBy:   "finished-by",
	Equals:       "equals",
}

func (r Relation) String() string {
	if int(r) >= numRelations {
		return fmt.Sprintf("allen.Relation(%d)", uint8(r))
	}
	return names[r]
}

var inverseTable = [numRelations]Relation{
	Before:       After,
	After:        Before,
	Meets:        MetBy,
	MetBy:        Meets,
	Overlaps:     OverlappedBy,
	OverlappedBy: Overlaps,
	During:       Contains,
	Contains:     During,
	Starts:       StartedBy,
	StartedBy:    Starts,
	Finishes:     FinishedBy,
	FinishedBy:   Finishes,
	Equals:       Equals,
}

// Inverse returns the unique relation r' such that "Y r' X" holds whenever
// "X r Y" holds.
func (r Relation) Inverse() Relation {
	return inverseTable[r]
}

var byName map[string]Relation

func init() {
	byName = make(map[string]Relation, numRelations*2)
	for _, r := range All {
		byName[r.String()] = r
		byName[underscored(r.String())] = r
	}
}

func underscored(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			out[i] = '_'
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}

// Parse resolves a relation name, accepting both the canonical hyphenated
// spelling ("met-by") and the underscored spelling ("met_by"). Matching is
// case-sensitive on the lower-case canonical form; callers normalize case
// themselves if needed.
func Parse(s string) (Relation, bool) {
	r, ok := byName[s]
	return r, ok
}
