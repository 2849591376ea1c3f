package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseConfidenceFallsBackToDefault(t *testing.T) {
	r := Response{}
	assert.Equal(t, 0.8, r.Confidence(0.8))
}

func TestResponseConfidenceReadsMetadata(t *testing.T) {
	r := Response{Metadata: map[string]any{"confidence": 0.95}}
	assert.Equal(t, 0.95, r.Confidence(0.8))
}

func TestResponseConfidenceIgnoresNonNumeric(t *testing.T) {
	r := Response{Metadata: map[string]any{"confidence": "high"}}
	assert.Equal(t, 0.8, r.Confidence(0.8))
}
