package scoring

import (
	"context"
	"fmt"
	"math"

	"pulsecheck/internal/model"
)

// semanticMaxPoints is the fixed denominator added per semantically scored item.
const semanticMaxPoints = 5

// SemanticItem is one free-text answer handed to the external scorer.
type SemanticItem struct {
	QuestionKey  string `json:"questionKey"`
	QuestionText string `json:"questionText"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ResponseText string `json:"responseText"`
}

// SemanticScore is one scored item returned by the external scorer.
// Value is expected in [0,5]; anything else is coerced at the boundary.
type SemanticScore struct {
	QuestionKey string  `json:"questionKey"`
	CategoryID  string  `json:"categoryId"`
	Value       float64 `json:"value"`
}

// SemanticScorer scores a batch of free-text answers. Implementations live
// outside the engine; the engine only defends against their output.
type SemanticScorer interface {
	ScoreBatch(ctx context.Context, items []SemanticItem) ([]SemanticScore, error)
}

// clampSemanticValue coerces a scorer value into an integer in [0,5].
// Non-finite values collapse to the nearest bound (NaN to 0).
func clampSemanticValue(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) || v > semanticMaxPoints {
		return semanticMaxPoints
	}
	if math.IsInf(v, -1) || v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// applySemanticScores folds accepted scorer output into the aggregator and
// the trace. Entries for undeclared categories are ignored with a diagnostic.
func applySemanticScores(agg *Aggregator, scores []SemanticScore) ([]model.Contribution, []model.Diagnostic) {
	var contributions []model.Contribution
	var diags []model.Diagnostic
	for _, s := range scores {
		if !agg.Has(s.CategoryID) {
			diags = append(diags, model.Diagnostic{
				Code:        model.DiagUnknownCategoryReference,
				QuestionKey: s.QuestionKey,
				CategoryID:  s.CategoryID,
				Message:     fmt.Sprintf("semantic scorer returned undeclared category %q", s.CategoryID),
			})
			continue
		}
		value := clampSemanticValue(s.Value)
		agg.Add(s.CategoryID, value, semanticMaxPoints)
		contributions = append(contributions, model.Contribution{
			QuestionKey:   s.QuestionKey,
			CategoryID:    s.CategoryID,
			Score:         value,
			MaxPoints:     semanticMaxPoints,
			Weight:        1,
			WeightedScore: value,
			WeightedMax:   semanticMaxPoints,
			Semantic:      true,
		})
	}
	return contributions, diags
}

// collectSemanticItems gathers the answered free-text questions tagged with a
// scoring category, in survey order, for one batched scorer call.
func collectSemanticItems(survey *model.Survey, answers model.Answers) []SemanticItem {
	names := make(map[string]string, len(survey.ScoreConfig.Categories))
	for _, c := range survey.ScoreConfig.Categories {
		names[c.ID] = c.Name
	}

	var items []SemanticItem
	for i := range survey.Questions {
		q := &survey.Questions[i]
		if q.Type != model.QuestionTypeFreeText || !q.Scorable || q.ScoringCategory == "" {
			continue
		}
		values, ok := answers[q.Key]
		if !ok || values.First() == "" {
			continue
		}
		items = append(items, SemanticItem{
			QuestionKey:  q.Key,
			QuestionText: q.Text,
			CategoryID:   q.ScoringCategory,
			CategoryName: names[q.ScoringCategory],
			ResponseText: values.First(),
		})
	}
	return items
}
