package constraint

import (
	"fmt"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/dcrowell-labs/chronoverify/interval"
)

const boundsMaxIterations = 50

// ComputeBounds fills in missing start/end values for incomplete
// intervals by inferring them from a fully-known interval and a single,
// unambiguous relation to it. Only before/after/meets/met-by/equals/
// starts/finishes are used to pin down a bound this way; any other single
// relation (or a disjunctive constraint with more than one member) leaves
// the interval untouched. before/after infer a boundary offset by
// GapConstant in the absence of a tighter bound; meets/met-by align
// exactly; equals copies both endpoints, starts the start, finishes the end.
//
// It returns ErrIterationCapExceeded only when the iteration cap is
// reached while a round still found something to narrow; intervals
// that simply have no usable singleton relation to infer from converge
// immediately (changed goes false) and are left incomplete with a nil
// error, since that is not a cap failure at all.
func (s *Solver) ComputeBounds() error {
	complete := make(map[string]*interval.Interval)
	incomplete := make(map[string]*interval.Interval)
	for name, iv := range s.intervals {
		if iv.IsComplete() {
			complete[name] = iv
		} else {
			incomplete[name] = iv
		}
	}

	changed := true
	iterations := 0

	for changed && len(incomplete) > 0 && iterations < boundsMaxIterations {
		changed = false
		iterations++

		for name, iv := range incomplete {
			for completeName, completeIv := range complete {
				if name == completeName {
					continue
				}
				rels, ok := s.Relation(name, completeName)
				if !ok || rels.Len() != 1 {
					continue
				}

				filled, err := s.inferBound(iv, completeIv, rels.Slice()[0])
				if err != nil {
					return fmt.Errorf("%w: %w", ErrIllFormedInterval, err)
				}
				if filled {
					changed = true
				}
				if iv.IsComplete() {
					complete[name] = iv
					delete(incomplete, name)
					changed = true
					break
				}
			}
		}
	}

	if changed && len(incomplete) > 0 && iterations >= boundsMaxIterations {
		return ErrIterationCapExceeded
	}
	return nil
}

// inferBound applies one of the seven bound-inference rules to iv, using
// known as the fully-known interval it relates to via rel (from iv's
// point of view: "iv rel known").
func (s *Solver) inferBound(iv, known *interval.Interval, rel allen.Relation) (bool, error) {
	switch rel {
	case allen.Before:
		if iv.End != nil {
			return false, nil
		}
		end := *known.Start - s.GapConstant
		return iv.Fill(nil, &end, nil)
	case allen.After:
		if iv.Start != nil {
			return false, nil
		}
		start := *known.End + s.GapConstant
		return iv.Fill(&start, nil, nil)
	case allen.Meets:
		if iv.End != nil {
			return false, nil
		}
		end := *known.Start
		return iv.Fill(nil, &end, nil)
	case allen.MetBy:
		if iv.Start != nil {
			return false, nil
		}
		start := *known.End
		return iv.Fill(&start, nil, nil)
	case allen.Equals:
		return iv.Fill(known.Start, known.End, nil)
	case allen.Starts:
		return iv.Fill(known.Start, nil, nil)
	case allen.Finishes:
		return iv.Fill(nil, known.End, nil)
	default:
		return false, nil
	}
}
