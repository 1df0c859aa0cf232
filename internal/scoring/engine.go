// Package scoring implements the survey scoring and band-resolution engine.
//
// The engine is a pure, synchronous computation over immutable inputs: every
// invocation normalizes the configuration, computes per-question
// contributions, aggregates weighted category totals, resolves bands and the
// overall score, and assembles one fresh, immutable ScoringResult. The same
// code path serves production scoring at submission time and the read-only
// debug trace, so the two can never disagree.
//
// Malformed domain input never produces an error; the engine repairs or skips
// and records diagnostics on the result instead.
package scoring

import (
	"context"
	"fmt"
	"math"

	"pulsecheck/internal/model"
)

// Engine scores responses. The optional semantic scorer is the engine's only
// external collaborator and its only suspension point.
type Engine struct {
	semantic SemanticScorer
}

// NewEngine creates a scoring engine. semantic may be nil, in which case
// free-text questions simply do not contribute.
func NewEngine(semantic SemanticScorer) *Engine {
	return &Engine{semantic: semantic}
}

// Score derives the full scoring result for one response. The context only
// bounds the semantic scorer call; a scorer failure or timeout degrades to a
// numeric-only partial result rather than aborting.
func (e *Engine) Score(ctx context.Context, survey *model.Survey, answers model.Answers) *model.ScoringResult {
	cfg, diags := NormalizeConfig(survey.ScoreConfig, survey.Questions)

	agg := NewAggregator(cfg.Categories)
	contributions := []model.Contribution{}

	for i := range survey.Questions {
		q := &survey.Questions[i]
		if q.ScoringCategory == "" {
			continue
		}
		values, present := answers[q.Key]
		c, ok := Contribute(q, values, present)
		if !ok {
			continue
		}
		if !agg.Add(c.CategoryID, c.WeightedScore, c.WeightedMax) {
			diags = append(diags, model.Diagnostic{
				Code:        model.DiagUnknownCategoryReference,
				QuestionKey: q.Key,
				CategoryID:  c.CategoryID,
				Message:     fmt.Sprintf("skipped question %s: category %q not declared", q.Key, c.CategoryID),
			})
			continue
		}
		if c.Unparseable {
			diags = append(diags, model.Diagnostic{
				Code:        model.DiagUnparseableAnswer,
				QuestionKey: q.Key,
				CategoryID:  c.CategoryID,
				Message:     fmt.Sprintf("answer to %s not parseable; scored 0 of %d", q.Key, c.WeightedMax),
			})
		}
		contributions = append(contributions, c)
	}

	if items := collectSemanticItems(survey, answers); len(items) > 0 && e.semantic != nil {
		scores, err := e.semantic.ScoreBatch(ctx, items)
		if err != nil {
			diags = append(diags, model.Diagnostic{
				Code:    model.DiagExternalScorerFailure,
				Message: fmt.Sprintf("semantic scorer unavailable, numeric-only result: %v", err),
			})
		} else {
			semContribs, semDiags := applySemanticScores(agg, scores)
			contributions = append(contributions, semContribs...)
			diags = append(diags, semDiags...)
		}
	}

	categories := agg.Snapshot(cfg)
	overall, overallDiag := resolveOverall(categories, cfg)
	if overallDiag != nil {
		diags = append(diags, *overallDiag)
	}

	if diags == nil {
		diags = []model.Diagnostic{}
	}
	return &model.ScoringResult{
		Config:        cfg,
		Contributions: contributions,
		Categories:    categories,
		Overall:       overall,
		Errors:        diags,
	}
}

// resolveOverall combines category scores into the survey-level resolution:
// the rounded mean of normalized scores over categories with at least one
// answered question, banded against the global-scope ranges. With no
// answered categories the score is nil and a diagnostic is recorded; callers
// decide how to present insufficient data.
func resolveOverall(categories []model.CategoryScore, cfg model.ScoreConfig) (model.OverallScore, *model.Diagnostic) {
	sum, n := 0, 0
	for _, c := range categories {
		if c.AnsweredCount > 0 {
			sum += c.NormalizedScore
			n++
		}
	}
	if n == 0 {
		return model.OverallScore{}, &model.Diagnostic{
			Code:    model.DiagNoScorableData,
			Message: "no category had any answered scorable question",
		}
	}

	score := int(math.Round(float64(sum) / float64(n)))
	band := ResolveBand(score, scopeRanges(cfg.Ranges, ""))
	return model.OverallScore{Score: &score, Band: &band}, nil
}
