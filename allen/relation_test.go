package allen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseIsAnInvolutiveBijection(t *testing.T) {
	seen := make(map[Relation]bool, numRelations)
	for _, r := range All {
		inv := r.Inverse()
		assert.Equalf(t, r, inv.Inverse(), "inverse of inverse of %s must be %s", r, r)
		seen[inv] = true
	}
	assert.Len(t, seen, numRelations, "Inverse must be a bijection over all thirteen relations")
}

func TestEqualsIsSelfInverse(t *testing.T) {
	assert.Equal(t, Equals, Equals.Inverse())
}

func TestStringRoundTripsThroughParse(t *testing.T) {
	for _, r := range All {
		got, ok := Parse(r.String())
		require.True(t, ok, "Parse must accept %s", r)
		assert.Equal(t, r, got)
	}
}

func TestParseAcceptsUnderscoreVariant(t *testing.T) {
	r, ok := Parse("met_by")
	require.True(t, ok)
	assert.Equal(t, MetBy, r)

	r, ok = Parse("finished_by")
	require.True(t, ok)
	assert.Equal(t, FinishedBy, r)
}

func TestParseRejectsUnknownName(t *testing.T) {
	_, ok := Parse("sideways")
	assert.False(t, ok)
}
