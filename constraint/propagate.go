package constraint

import (
	"fmt"

	"github.com/dcrowell-labs/chronoverify/allen"
)

const propagateMaxIterations = 100

// Propagate runs path-consistency (an AC-3-style algebraic closure) over
// every triple of intervals that appear in at least one constraint,
// tightening each constraint by intersecting it with the composition of
// the two constraints that reach it transitively. It returns
// ErrInconsistent as soon as any constraint narrows to the empty set,
// and ErrIterationCapExceeded if the iteration cap is reached before a
// fixed point (no further narrowing) is found.
//
// Path-consistency is necessary but not sufficient for full consistency
// over the Allen algebra: a constraint set can pass this check and still
// have no concrete solution. That limitation is accepted here rather
// than worked around with a full backtracking search.
func (s *Solver) Propagate() error {
	names := s.pairNames()

	for key, rels := range s.constraints {
		if rels.IsEmpty() {
			return fmt.Errorf("%w: between %q and %q", ErrInconsistent, key.lo, key.hi)
		}
	}

	changed := true
	iterations := 0

	for changed && iterations < propagateMaxIterations {
		changed = false
		iterations++

		for _, i := range names {
			for _, j := range names {
				if i == j {
					continue
				}
				ijRels, ok := s.Relation(i, j)
				if !ok {
					continue
				}
				for _, k := range names {
					if k == i || k == j {
						continue
					}
					jkRels, ok := s.Relation(j, k)
					if !ok {
						continue
					}
					ikRels, ok := s.Relation(i, k)
					if !ok {
						continue
					}

					composed := allen.ComposeSets(ijRels, jkRels)
					narrowed := ikRels.Intersect(composed)

					if narrowed.IsEmpty() {
						return fmt.Errorf("%w: between %q and %q", ErrInconsistent, i, k)
					}
					if narrowed.Len() < ikRels.Len() {
						s.setRelation(i, k, narrowed)
						changed = true
					}
				}
			}
		}
	}

	if changed {
		return ErrIterationCapExceeded
	}
	return nil
}

// setRelation stores rels as the relation from a to b, inverting onto
// the pair's canonical orientation as needed.
func (s *Solver) setRelation(a, b string, rels allen.Set) {
	key, reversed := newPairKey(a, b)
	if reversed {
		rels = rels.Inverse()
	}
	s.constraints[key] = rels
}
