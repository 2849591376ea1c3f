package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesDurationFromStartEnd(t *testing.T) {
	iv, err := New("meeting", Ptr(1), Ptr(3), nil)
	require.NoError(t, err)
	require.NotNil(t, iv.Duration)
	assert.InDelta(t, 2, *iv.Duration, Epsilon)
}

func TestNewDerivesEndFromStartDuration(t *testing.T) {
	iv, err := New("meeting", Ptr(1), nil, Ptr(2))
	require.NoError(t, err)
	require.NotNil(t, iv.End)
	assert.InDelta(t, 3, *iv.End, Epsilon)
}

func TestNewDerivesStartFromEndDuration(t *testing.T) {
	iv, err := New("meeting", nil, Ptr(3), Ptr(2))
	require.NoError(t, err)
	require.NotNil(t, iv.Start)
	assert.InDelta(t, 1, *iv.Start, Epsilon)
}

func TestNewRejectsInconsistentTriple(t *testing.T) {
	_, err := New("meeting", Ptr(1), Ptr(3), Ptr(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllFormed)
}

func TestNewAllowsFullyUnknownInterval(t *testing.T) {
	iv, err := New("meeting", nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, iv.IsComplete())
}

func TestFillNeverOverwritesKnownValue(t *testing.T) {
	iv, err := New("meeting", Ptr(1), Ptr(3), nil)
	require.NoError(t, err)

	changed, err := iv.Fill(Ptr(99), nil, nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.InDelta(t, 1, *iv.Start, Epsilon)
}

func TestFillCompletesAndDerivesThirdValue(t *testing.T) {
	iv, err := New("meeting", Ptr(1), nil, nil)
	require.NoError(t, err)

	changed, err := iv.Fill(nil, Ptr(5), nil)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, iv.Duration)
	assert.InDelta(t, 4, *iv.Duration, Epsilon)
	assert.True(t, iv.IsComplete())
}

func TestFillRejectsInconsistentCompletion(t *testing.T) {
	iv, err := New("meeting", Ptr(1), Ptr(3), nil)
	require.NoError(t, err)

	_, err = iv.Fill(nil, nil, Ptr(99))
	assert.ErrorIs(t, err, ErrIllFormed)
}

func TestIsCompleteRequiresBothEnds(t *testing.T) {
	iv, err := New("meeting", Ptr(1), nil, nil)
	require.NoError(t, err)
	assert.False(t, iv.IsComplete())
}
