package constraint

import (
	"testing"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagateEndToEndScenario mirrors the "event_A before event_B,
// event_B meets event_C" walkthrough: propagation must derive that A is
// before C and accept the problem as consistent.
func TestPropagateEndToEndScenario(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "event_A", nil, nil)
	addInterval(t, s, "event_B", nil, nil)
	addInterval(t, s, "event_C", nil, nil)

	require.NoError(t, s.AddSingleRelation("event_A", "event_B", allen.Before))
	require.NoError(t, s.AddSingleRelation("event_B", "event_C", allen.Meets))
	require.NoError(t, s.AddConstraint("event_A", "event_C", allen.Full()))

	require.NoError(t, s.Propagate())

	rels, ok := s.Relation("event_A", "event_C")
	require.True(t, ok)
	assert.Equal(t, allen.NewSet(allen.Before), rels)
}

func TestPropagateDetectsInconsistency(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "A", nil, nil)
	addInterval(t, s, "B", nil, nil)
	addInterval(t, s, "C", nil, nil)

	require.NoError(t, s.AddSingleRelation("A", "B", allen.Before))
	require.NoError(t, s.AddSingleRelation("B", "C", allen.Before))
	// A-C constrained to the impossible: after, contradicting A before B before C.
	require.NoError(t, s.AddSingleRelation("A", "C", allen.After))

	err := s.Propagate()
	assert.ErrorIs(t, err, ErrInconsistent)
}

func TestPropagateLeavesUnconstrainedTriplesAlone(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "A", nil, nil)
	addInterval(t, s, "B", nil, nil)

	require.NoError(t, s.AddSingleRelation("A", "B", allen.Meets))
	require.NoError(t, s.Propagate())

	rels, ok := s.Relation("A", "B")
	require.True(t, ok)
	assert.Equal(t, allen.NewSet(allen.Meets), rels)
}

func TestSetRelationRoundTripsThroughCanonicalOrientation(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "Z", nil, nil)
	addInterval(t, s, "A", nil, nil)

	s.setRelation("Z", "A", allen.NewSet(allen.Before))
	rels, ok := s.Relation("A", "Z")
	require.True(t, ok)
	assert.Equal(t, allen.NewSet(allen.After), rels)
}
