package extractor

import (
	"testing"

	"github.com/dcrowell-labs/chronoverify/allen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftEventWeekdayOnly(t *testing.T) {
	iv, err := LiftEvent(Event{Name: "admission", StartTime: "monday"})
	require.NoError(t, err)
	require.NotNil(t, iv.Start)
	assert.Equal(t, 0.0, *iv.Start)
	assert.Nil(t, iv.End)
}

func TestLiftEventWithDuration(t *testing.T) {
	iv, err := LiftEvent(Event{Name: "qa", Duration: "30 minutes"})
	require.NoError(t, err)
	require.NotNil(t, iv.Duration)
	assert.InDelta(t, 0.5, *iv.Duration, 1e-9)
}

func TestLiftEventUnparseableFieldsLeaveIntervalPartial(t *testing.T) {
	iv, err := LiftEvent(Event{Name: "vague", StartTime: "eventually"})
	require.NoError(t, err)
	assert.Nil(t, iv.Start)
	assert.False(t, iv.IsComplete())
}

func TestMapRelationAcceptsHyphenAndUnderscore(t *testing.T) {
	r, ok := MapRelation("met-by")
	require.True(t, ok)
	assert.Equal(t, allen.MetBy, r)

	r, ok = MapRelation("met_by")
	require.True(t, ok)
	assert.Equal(t, allen.MetBy, r)

	r, ok = MapRelation("BEFORE")
	require.True(t, ok)
	assert.Equal(t, allen.Before, r)
}

func TestMapRelationUnknownStringReturnsFalse(t *testing.T) {
	_, ok := MapRelation("nonsense")
	assert.False(t, ok)
}
