package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

func TestAggregatorEmptyCategoryNeverDividesByZero(t *testing.T) {
	agg := NewAggregator([]model.ScoringCategory{{ID: "cat1", Name: "Culture"}})

	scores := agg.Snapshot(model.ScoreConfig{Categories: []model.ScoringCategory{{ID: "cat1", Name: "Culture"}}})
	require.Len(t, scores, 1)
	assert.Equal(t, 0, scores[0].NormalizedScore)
	assert.Equal(t, 0, scores[0].AnsweredCount)
	assert.Equal(t, 0, scores[0].MaxTotal)
}

func TestAggregatorRejectsUndeclaredCategory(t *testing.T) {
	agg := NewAggregator([]model.ScoringCategory{{ID: "cat1"}})

	assert.False(t, agg.Add("ghost", 3, 5))
	assert.True(t, agg.Add("cat1", 3, 5))
}

func TestAggregatorNormalizesAndCounts(t *testing.T) {
	cats := []model.ScoringCategory{{ID: "cat1", Name: "Culture"}}
	agg := NewAggregator(cats)
	agg.Add("cat1", 8, 10)
	agg.Add("cat1", 4, 10)

	scores := agg.Snapshot(model.ScoreConfig{Categories: cats})
	require.Len(t, scores, 1)
	assert.Equal(t, 12, scores[0].RawTotal)
	assert.Equal(t, 20, scores[0].MaxTotal)
	assert.Equal(t, 2, scores[0].AnsweredCount)
	assert.Equal(t, 60, scores[0].NormalizedScore)
}

func TestNormalizeRounds(t *testing.T) {
	assert.Equal(t, 67, Normalize(2, 3))
	assert.Equal(t, 33, Normalize(1, 3))
	assert.Equal(t, 0, Normalize(5, 0))
	assert.Equal(t, 100, Normalize(10, 10))
}

func TestSnapshotBandsFromCategoryRanges(t *testing.T) {
	cats := []model.ScoringCategory{{ID: "cat1", Name: "Culture"}}
	cfg := model.ScoreConfig{
		Categories: cats,
		Ranges: []model.ScoreRange{
			{ID: "c1-low", Min: 0, Max: 5, Label: "Low", CategoryID: "cat1"},
			{ID: "c1-high", Min: 6, Max: 10, Label: "High", CategoryID: "cat1"},
		},
	}

	agg := NewAggregator(cats)
	agg.Add("cat1", 8, 10)

	scores := agg.Snapshot(cfg)
	require.Len(t, scores, 1)
	require.NotNil(t, scores[0].Band.MatchedRange, "raw total 8 matches a declared raw-scale range")
	assert.Equal(t, "c1-high", scores[0].Band.BandID)
}

func TestSnapshotFallsBackToTaxonomyOnNormalizedScore(t *testing.T) {
	cats := []model.ScoringCategory{{ID: "cat1", Name: "Culture"}}
	agg := NewAggregator(cats)
	agg.Add("cat1", 8, 10) // normalized 80

	scores := agg.Snapshot(model.ScoreConfig{Categories: cats})
	require.Len(t, scores, 1)
	assert.Nil(t, scores[0].Band.MatchedRange)
	assert.Equal(t, "Highly Effective", scores[0].Band.Label)
}
