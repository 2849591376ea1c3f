// Package constraint implements a disjunctive temporal constraint solver
// over Allen's interval algebra: a set of named intervals plus a set of
// possible-relation constraints between pairs of them, with
// path-consistency propagation and bound inference for partially-known
// interval values.
package constraint

import (
	"fmt"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/dcrowell-labs/chronoverify/interval"
)

// DefaultGapConstant is the default minimal separation assumed between
// two intervals inferred to be strictly before/after one another when no
// tighter bound is known.
const DefaultGapConstant = 1.0

// pairKey canonicalizes an unordered pair of interval names to a fixed
// lexicographic orientation, so a constraint between A and B is always
// stored once regardless of the order callers mention them in.
type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) (key pairKey, reversed bool) {
	if a <= b {
		return pairKey{lo: a, hi: b}, false
	}
	return pairKey{lo: b, hi: a}, true
}

// Solver holds a temporal constraint satisfaction problem: a set of
// named intervals and the disjunctive Allen relations known to hold
// between pairs of them.
type Solver struct {
	intervals   map[string]*interval.Interval
	constraints map[pairKey]allen.Set
	// GapConstant is the minimal separation, in the caller's time unit,
	// assumed between two intervals known only to be strictly before or
	// after one another. Configurable in place of a hardcoded constant.
	GapConstant float64
}

// NewSolver constructs an empty Solver with DefaultGapConstant.
func NewSolver() *Solver {
	return &Solver{
		intervals:   make(map[string]*interval.Interval),
		constraints: make(map[pairKey]allen.Set),
		GapConstant: DefaultGapConstant,
	}
}

// AddInterval registers an interval with the solver, keyed by its Name.
// Adding an interval with a name already present replaces it.
func (s *Solver) AddInterval(iv interval.Interval) {
	cp := iv
	s.intervals[iv.Name] = &cp
}

// Interval returns the registered interval by name.
func (s *Solver) Interval(name string) (*interval.Interval, bool) {
	iv, ok := s.intervals[name]
	return iv, ok
}

// Intervals returns every registered interval, in no particular order.
func (s *Solver) Intervals() []*interval.Interval {
	out := make([]*interval.Interval, 0, len(s.intervals))
	for _, iv := range s.intervals {
		out = append(out, iv)
	}
	return out
}

// AddConstraint restricts the relation between a and b to rels,
// intersecting with whatever constraint (if any) is already stored for
// that pair. Both names must already be registered via AddInterval.
func (s *Solver) AddConstraint(a, b string, rels allen.Set) error {
	if _, ok := s.intervals[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterval, a)
	}
	if _, ok := s.intervals[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterval, b)
	}

	key, reversed := newPairKey(a, b)
	if reversed {
		rels = rels.Inverse()
	}

	if existing, ok := s.constraints[key]; ok {
		s.constraints[key] = existing.Intersect(rels)
	} else {
		s.constraints[key] = rels
	}
	return nil
}

// AddSingleRelation is a convenience for AddConstraint with a
// single-member relation set.
func (s *Solver) AddSingleRelation(a, b string, r allen.Relation) error {
	return s.AddConstraint(a, b, allen.NewSet(r))
}

// Relation returns the set of relations currently possible between a and
// b, from a's point of view ("a ? b"), or false if no constraint between
// them has been recorded.
func (s *Solver) Relation(a, b string) (allen.Set, bool) {
	key, reversed := newPairKey(a, b)
	rels, ok := s.constraints[key]
	if !ok {
		return 0, false
	}
	if reversed {
		return rels.Inverse(), true
	}
	return rels, true
}

// pairNames returns the distinct interval names that appear in at least
// one constraint.
func (s *Solver) pairNames() []string {
	seen := make(map[string]bool)
	for k := range s.constraints {
		seen[k.lo] = true
		seen[k.hi] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	return names
}
