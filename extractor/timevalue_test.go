package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeValueNumeric(t *testing.T) {
	v := ParseTimeValue("3.5")
	f, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
}

func TestParseTimeValueWeekday(t *testing.T) {
	v := ParseTimeValue("Friday")
	f, ok := v.Float()
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)
}

func TestParseTimeValueUnparsed(t *testing.T) {
	v := ParseTimeValue("sometime next week")
	_, ok := v.Float()
	assert.False(t, ok)
	assert.Equal(t, Unparsed, v.Kind)
}

func TestParseTimeValueAbsent(t *testing.T) {
	v := ParseTimeValue("")
	assert.Equal(t, Absent, v.Kind)
}

func TestParseDurationWithUnit(t *testing.T) {
	secs, ok := ParseDuration("45 minutes")
	assert.True(t, ok)
	assert.Equal(t, 2700.0, secs)
}

func TestParseDurationPluralAndSingular(t *testing.T) {
	secs, ok := ParseDuration("1 day")
	assert.True(t, ok)
	assert.Equal(t, 86400.0, secs)

	secs, ok = ParseDuration("2 days")
	assert.True(t, ok)
	assert.Equal(t, 172800.0, secs)
}

func TestParseDurationBareNumberDefaultsToHours(t *testing.T) {
	secs, ok := ParseDuration("2")
	assert.True(t, ok)
	assert.Equal(t, 7200.0, secs)
}

func TestParseDurationUnknownUnitFails(t *testing.T) {
	_, ok := ParseDuration("5 fortnights")
	assert.False(t, ok)
}

func TestParseDurationNoLeadingNumberFails(t *testing.T) {
	_, ok := ParseDuration("a while")
	assert.False(t, ok)
}

func TestParseRelativeDurationMatchesParseDuration(t *testing.T) {
	secs, ok := ParseRelativeDuration("2 hours")
	assert.True(t, ok)
	assert.Equal(t, 7200.0, secs)
}
