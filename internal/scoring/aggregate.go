package scoring

import (
	"math"

	"pulsecheck/internal/model"
)

type categoryTotals struct {
	raw      int
	max      int
	answered int
}

// Aggregator accumulates weighted contributions per declared category.
// Category order follows the configuration, so snapshots are deterministic.
type Aggregator struct {
	categories []model.ScoringCategory
	totals     map[string]*categoryTotals
}

// NewAggregator creates an aggregator for the declared categories.
func NewAggregator(categories []model.ScoringCategory) *Aggregator {
	totals := make(map[string]*categoryTotals, len(categories))
	for _, c := range categories {
		totals[c.ID] = &categoryTotals{}
	}
	return &Aggregator{categories: categories, totals: totals}
}

// Has reports whether the category is declared.
func (a *Aggregator) Has(categoryID string) bool {
	_, ok := a.totals[categoryID]
	return ok
}

// Add records a weighted contribution. Returns false for an undeclared
// category; the caller records the diagnostic and skips the question.
func (a *Aggregator) Add(categoryID string, weightedScore, weightedMax int) bool {
	t, ok := a.totals[categoryID]
	if !ok {
		return false
	}
	t.raw += weightedScore
	t.max += weightedMax
	t.answered++
	return true
}

// Snapshot produces per-category breakdowns in declaration order. Bands are
// resolved against the category-scoped ranges of the given config.
func (a *Aggregator) Snapshot(cfg model.ScoreConfig) []model.CategoryScore {
	scores := make([]model.CategoryScore, 0, len(a.categories))
	for _, c := range a.categories {
		t := a.totals[c.ID]
		cs := model.CategoryScore{
			CategoryID:      c.ID,
			Name:            c.Name,
			RawTotal:        t.raw,
			MaxTotal:        t.max,
			AnsweredCount:   t.answered,
			NormalizedScore: Normalize(t.raw, t.max),
		}
		cs.Band = resolveCategoryBand(&cs, scopeRanges(cfg.Ranges, c.ID))
		scores = append(scores, cs)
	}
	return scores
}

// Normalize maps a raw/max pair onto the 0-100 scale. A zero max yields 0,
// never a division error.
func Normalize(raw, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(max) * 100))
}

// resolveCategoryBand matches the raw total against the category's raw-scale
// ranges; when none match, the default taxonomy is applied on the normalized
// score since the taxonomy covers 0-100.
func resolveCategoryBand(cs *model.CategoryScore, ranges []model.ScoreRange) model.BandResolution {
	for i := range ranges {
		if cs.RawTotal >= ranges[i].Min && cs.RawTotal <= ranges[i].Max {
			r := ranges[i]
			return model.BandResolution{
				BandID:       r.ID,
				Label:        r.Label,
				Color:        r.Color,
				MatchedRange: &r,
			}
		}
	}
	return ResolveBand(cs.NormalizedScore, nil)
}
