package constraint

import (
	"testing"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/dcrowell-labs/chronoverify/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeBoundsInfersAfterBoundary checks that a duration-only
// interval known to be strictly after a complete one gets its start
// pinned GapConstant past the known interval's end.
func TestComputeBoundsInfersAfterBoundary(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "event_A", interval.Ptr(0), interval.Ptr(10))

	evB, err := interval.New("event_B", nil, nil, interval.Ptr(5))
	require.NoError(t, err)
	s.AddInterval(evB)

	require.NoError(t, s.AddSingleRelation("event_B", "event_A", allen.After))

	require.NoError(t, s.ComputeBounds())

	got, ok := s.Interval("event_B")
	require.True(t, ok)
	require.True(t, got.IsComplete())
	assert.InDelta(t, 10+s.GapConstant, *got.Start, interval.Epsilon)
	assert.InDelta(t, 10+s.GapConstant+5, *got.End, interval.Epsilon)
}

func TestComputeBoundsMeetsAlignsExactly(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "event_A", interval.Ptr(0), interval.Ptr(10))

	evB, err := interval.New("event_B", nil, nil, interval.Ptr(5))
	require.NoError(t, err)
	s.AddInterval(evB)

	require.NoError(t, s.AddSingleRelation("event_A", "event_B", allen.Meets))

	require.NoError(t, s.ComputeBounds())

	got, ok := s.Interval("event_B")
	require.True(t, ok)
	require.True(t, got.IsComplete())
	assert.InDelta(t, 10, *got.Start, interval.Epsilon)
	assert.InDelta(t, 15, *got.End, interval.Epsilon)
}

// TestComputeBoundsLeavesAmbiguousConstraintsAlone checks that an
// interval with no usable singleton relation converges immediately
// (nothing to infer from) rather than being reported as an iteration-cap
// failure: it stays incomplete, but with a nil error.
func TestComputeBoundsLeavesAmbiguousConstraintsAlone(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "event_A", interval.Ptr(0), interval.Ptr(10))
	addInterval(t, s, "event_B", nil, nil)

	require.NoError(t, s.AddConstraint("event_A", "event_B", allen.NewSet(allen.Before, allen.Meets)))

	require.NoError(t, s.ComputeBounds())

	got, ok := s.Interval("event_B")
	require.True(t, ok)
	assert.False(t, got.IsComplete())
}

func TestComputeBoundsChainsThroughMultipleIntervals(t *testing.T) {
	s := NewSolver()
	addInterval(t, s, "event_A", interval.Ptr(0), interval.Ptr(10))

	evB, err := interval.New("event_B", nil, nil, interval.Ptr(5))
	require.NoError(t, err)
	s.AddInterval(evB)

	evC, err := interval.New("event_C", nil, nil, interval.Ptr(3))
	require.NoError(t, err)
	s.AddInterval(evC)

	require.NoError(t, s.AddSingleRelation("event_A", "event_B", allen.Meets))
	require.NoError(t, s.AddSingleRelation("event_B", "event_C", allen.Meets))

	require.NoError(t, s.ComputeBounds())

	b, _ := s.Interval("event_B")
	c, _ := s.Interval("event_C")
	require.True(t, b.IsComplete())
	require.True(t, c.IsComplete())
	assert.InDelta(t, 10, *b.Start, interval.Epsilon)
	assert.InDelta(t, 15, *c.Start, interval.Epsilon)
	assert.InDelta(t, 18, *c.End, interval.Epsilon)
}
