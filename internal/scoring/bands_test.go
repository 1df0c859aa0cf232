package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

func TestDefaultTaxonomyTotalCoverage(t *testing.T) {
	for score := 0; score <= 100; score++ {
		matches := 0
		for _, r := range DefaultBands {
			if score >= r.Min && score <= r.Max {
				matches++
			}
		}
		require.Equal(t, 1, matches, "score %d must land in exactly one default band", score)
	}
}

func TestResolveBandFallback(t *testing.T) {
	b := ResolveBand(50, nil)
	assert.Equal(t, "Developing", b.Label)
	assert.Nil(t, b.MatchedRange, "fallback resolution leaves MatchedRange nil")

	b = ResolveBand(0, nil)
	assert.Equal(t, "Critical", b.Label)

	b = ResolveBand(100, nil)
	assert.Equal(t, "Highly Effective", b.Label)
}

func TestResolveBandOutOfScaleScoresStillResolve(t *testing.T) {
	assert.Equal(t, "Critical", ResolveBand(-5, nil).Label)
	assert.Equal(t, "Highly Effective", ResolveBand(130, nil).Label)
}

func TestResolveBandFirstMatchOnDeclaredRanges(t *testing.T) {
	ranges := []model.ScoreRange{
		{ID: "low", Min: 0, Max: 49, Label: "Low"},
		{ID: "high", Min: 50, Max: 100, Label: "High"},
	}

	b := ResolveBand(49, ranges)
	require.NotNil(t, b.MatchedRange)
	assert.Equal(t, "low", b.BandID)
	assert.Equal(t, "Low", b.Label)
	assert.Equal(t, *b.MatchedRange, ranges[0])

	b = ResolveBand(50, ranges)
	require.NotNil(t, b.MatchedRange)
	assert.Equal(t, "high", b.BandID)
}

func TestResolveBandMisconfiguredScopeFallsBack(t *testing.T) {
	// Declared ranges that leave a gap at the score.
	ranges := []model.ScoreRange{{ID: "top", Min: 90, Max: 100, Label: "Top"}}

	b := ResolveBand(42, ranges)
	assert.Nil(t, b.MatchedRange)
	assert.Equal(t, "Developing", b.Label)
}
