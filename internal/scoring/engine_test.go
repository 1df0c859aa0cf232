package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

type stubSemanticScorer struct {
	scores []SemanticScore
	err    error
	calls  int
}

func (s *stubSemanticScorer) ScoreBatch(_ context.Context, items []SemanticItem) ([]SemanticScore, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func twoCategorySurvey() *model.Survey {
	return &model.Survey{
		ID: "s1",
		Questions: []model.Question{
			// cat1: 8/10 answered -> 80%
			{Key: "Q1", Type: model.QuestionTypeRating, Scorable: true, ScoringCategory: "cat1", RatingScale: 5, ScoreWeight: 2},
			// cat2: 3/15 answered -> 20%
			{Key: "Q2", Type: model.QuestionTypeLikert, Scorable: true, ScoringCategory: "cat2", LikertPoints: 5, ScoreWeight: 3},
		},
		ScoreConfig: model.ScoreConfig{
			Enabled: true,
			Categories: []model.ScoringCategory{
				{ID: "cat1", Name: "Culture"},
				{ID: "cat2", Name: "Leadership"},
			},
		},
	}
}

func TestScoreTwoCategoryOverall(t *testing.T) {
	engine := NewEngine(nil)
	answers := model.Answers{
		"Q1": {"4"},
		"Q2": {"1"},
	}

	result := engine.Score(context.Background(), twoCategorySurvey(), answers)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, 8, result.Categories[0].RawTotal)
	assert.Equal(t, 10, result.Categories[0].MaxTotal)
	assert.Equal(t, 80, result.Categories[0].NormalizedScore)
	assert.Equal(t, 3, result.Categories[1].RawTotal)
	assert.Equal(t, 15, result.Categories[1].MaxTotal)
	assert.Equal(t, 20, result.Categories[1].NormalizedScore)

	require.NotNil(t, result.Overall.Score)
	assert.Equal(t, 50, *result.Overall.Score)
	require.NotNil(t, result.Overall.Band)
	assert.Equal(t, "Developing", result.Overall.Band.Label)
	assert.Nil(t, result.Overall.Band.MatchedRange, "no global ranges declared, default taxonomy applies")
}

func TestScoreIdempotent(t *testing.T) {
	engine := NewEngine(nil)
	survey := twoCategorySurvey()
	answers := model.Answers{"Q1": {"4"}, "Q2": {"1"}}

	first := engine.Score(context.Background(), survey, answers)
	second := engine.Score(context.Background(), survey, answers)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical inputs must produce byte-identical results")
}

func TestScoreNoScorableData(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Score(context.Background(), twoCategorySurvey(), model.Answers{})

	assert.Nil(t, result.Overall.Score)
	assert.Nil(t, result.Overall.Band)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, model.DiagNoScorableData, result.Errors[len(result.Errors)-1].Code)
}

func TestScoreUnansweredExcludedFromOverall(t *testing.T) {
	engine := NewEngine(nil)
	answers := model.Answers{"Q1": {"4"}} // cat2 unanswered

	result := engine.Score(context.Background(), twoCategorySurvey(), answers)

	require.NotNil(t, result.Overall.Score)
	assert.Equal(t, 80, *result.Overall.Score, "unanswered category excluded from the mean")
	assert.Equal(t, 0, result.Categories[1].AnsweredCount)
	assert.Equal(t, 0, result.Categories[1].NormalizedScore)
}

func TestScoreUnknownCategorySkipsQuestion(t *testing.T) {
	survey := twoCategorySurvey()
	survey.Questions = append(survey.Questions, model.Question{
		Key: "Q3", Type: model.QuestionTypeRating, Scorable: true, ScoringCategory: "ghost", RatingScale: 5,
	})
	engine := NewEngine(nil)
	answers := model.Answers{"Q1": {"4"}, "Q3": {"5"}}

	result := engine.Score(context.Background(), survey, answers)

	for _, c := range result.Contributions {
		assert.NotEqual(t, "Q3", c.QuestionKey, "skipped question leaves no contribution")
	}
	found := false
	for _, d := range result.Errors {
		if d.Code == model.DiagUnknownCategoryReference && d.QuestionKey == "Q3" {
			found = true
		}
	}
	assert.True(t, found)
	require.NotNil(t, result.Overall.Score, "the rest of the computation proceeds")
}

func TestScoreUnparseableAnswerDiagnostic(t *testing.T) {
	engine := NewEngine(nil)
	answers := model.Answers{"Q1": {"???"}, "Q2": {"1"}}

	result := engine.Score(context.Background(), twoCategorySurvey(), answers)

	assert.Equal(t, 0, result.Categories[0].RawTotal)
	assert.Equal(t, 10, result.Categories[0].MaxTotal, "unparseable answer still counts toward the denominator")
	found := false
	for _, d := range result.Errors {
		if d.Code == model.DiagUnparseableAnswer && d.QuestionKey == "Q1" {
			found = true
		}
	}
	assert.True(t, found)
}

func semanticSurvey() *model.Survey {
	survey := twoCategorySurvey()
	survey.Questions = append(survey.Questions, model.Question{
		Key: "Q3", Type: model.QuestionTypeFreeText, Scorable: true, ScoringCategory: "cat1",
		Text: "What would you improve?",
	})
	return survey
}

func TestScoreSemanticContributions(t *testing.T) {
	scorer := &stubSemanticScorer{scores: []SemanticScore{
		{QuestionKey: "Q3", CategoryID: "cat1", Value: 7.2}, // clamped to 5
	}}
	engine := NewEngine(scorer)
	answers := model.Answers{"Q1": {"4"}, "Q3": {"More pairing time would help."}}

	result := engine.Score(context.Background(), semanticSurvey(), answers)

	assert.Equal(t, 1, scorer.calls, "one batched call per pass")
	assert.Equal(t, 13, result.Categories[0].RawTotal, "8 numeric + 5 clamped semantic")
	assert.Equal(t, 15, result.Categories[0].MaxTotal, "fixed 5 added per scored item")
	assert.Equal(t, 2, result.Categories[0].AnsweredCount)

	last := result.Contributions[len(result.Contributions)-1]
	assert.True(t, last.Semantic)
	assert.Equal(t, 5, last.Score)
}

func TestScoreSemanticUnknownCategoryIgnored(t *testing.T) {
	scorer := &stubSemanticScorer{scores: []SemanticScore{
		{QuestionKey: "Q3", CategoryID: "ghost", Value: 3},
	}}
	engine := NewEngine(scorer)
	answers := model.Answers{"Q1": {"4"}, "Q3": {"Some feedback."}}

	result := engine.Score(context.Background(), semanticSurvey(), answers)

	assert.Equal(t, 8, result.Categories[0].RawTotal, "rejected entry contributes nothing")
	found := false
	for _, d := range result.Errors {
		if d.Code == model.DiagUnknownCategoryReference && d.CategoryID == "ghost" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreSemanticFailureYieldsPartialResult(t *testing.T) {
	scorer := &stubSemanticScorer{err: errors.New("upstream timeout")}
	engine := NewEngine(scorer)
	answers := model.Answers{"Q1": {"4"}, "Q3": {"Some feedback."}}

	result := engine.Score(context.Background(), semanticSurvey(), answers)

	require.NotNil(t, result.Overall.Score, "numeric-only partial result, not an abort")
	assert.Equal(t, 8, result.Categories[0].RawTotal)
	found := false
	for _, d := range result.Errors {
		if d.Code == model.DiagExternalScorerFailure {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreNilScorerSkipsSemanticPass(t *testing.T) {
	engine := NewEngine(nil)
	answers := model.Answers{"Q1": {"4"}, "Q3": {"Some feedback."}}

	result := engine.Score(context.Background(), semanticSurvey(), answers)

	for _, d := range result.Errors {
		assert.NotEqual(t, model.DiagExternalScorerFailure, d.Code)
	}
	assert.Equal(t, 8, result.Categories[0].RawTotal)
}

func TestClampSemanticValue(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{3.4, 3},
		{3.5, 4},
		{-2, 0},
		{7.2, 5},
		{0, 0},
		{5, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampSemanticValue(tt.in))
	}
}
