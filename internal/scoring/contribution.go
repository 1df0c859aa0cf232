package scoring

import (
	"strconv"

	"pulsecheck/internal/model"
)

// MaxPoints returns the theoretical maximum raw score for a question.
// Types with no numeric scoring rule (free text, statements) return 0.
func MaxPoints(q *model.Question) int {
	switch q.Type {
	case model.QuestionTypeRating:
		return orDefault(q.RatingScale, 5)
	case model.QuestionTypeNPS:
		return 10
	case model.QuestionTypeLikert:
		return orDefault(q.LikertPoints, 5)
	case model.QuestionTypeOpinionScale:
		return orDefault(q.RatingScale, 5)
	case model.QuestionTypeSlider:
		return orDefault(q.SliderMax-q.SliderMin, 10)
	case model.QuestionTypeMultipleChoice, model.QuestionTypeDropdown:
		return orDefault(len(q.Options), 5)
	case model.QuestionTypeCheckbox:
		return orDefault(q.MaxSelections, 5)
	case model.QuestionTypeImageChoice:
		if len(q.ImageOptions) > 0 {
			return len(q.ImageOptions)
		}
		return orDefault(len(q.Options), 5)
	case model.QuestionTypeYesNo:
		return 1
	case model.QuestionTypeMatrix:
		rows := orDefault(len(q.RowLabels), 1)
		cols := orDefault(len(q.ColLabels), 5)
		return rows * cols
	case model.QuestionTypeRanking:
		return orDefault(len(q.Options), 5)
	case model.QuestionTypeConstantSum:
		return orDefault(q.TotalPoints, 100)
	case model.QuestionTypeNumber:
		return 10
	default:
		return 0
	}
}

// Contribute computes one question's raw score and theoretical max for the
// given answer. ok is false when the question does not participate: not
// scorable, a zero-max type, or no answer present.
//
// Raw-score resolution order:
//  1. an explicit optionScores entry for the (first) answer text, verbatim
//  2. the answer text parsed as an integer
//  3. the 1-based position in the option list (choice types only)
//  4. zero, flagged Unparseable; the max still counts toward the denominator
func Contribute(q *model.Question, values model.AnswerValue, present bool) (model.Contribution, bool) {
	if !q.Scorable || !present {
		return model.Contribution{}, false
	}
	max := MaxPoints(q)
	if max <= 0 {
		return model.Contribution{}, false
	}

	c := model.Contribution{
		QuestionKey: q.Key,
		CategoryID:  q.ScoringCategory,
		MaxPoints:   max,
		Weight:      q.Weight(),
	}

	text := values.First()
	switch {
	case hasOptionScore(q, text):
		c.Score = q.OptionScores[text]
		c.UsedOptionScore = true
	default:
		if n, err := strconv.Atoi(text); err == nil {
			c.Score = n
		} else if pos := optionPosition(q, text); pos > 0 {
			c.Score = pos
		} else {
			c.Unparseable = true
		}
	}

	c.WeightedScore = c.Score * c.Weight
	c.WeightedMax = c.MaxPoints * c.Weight
	return c, true
}

func hasOptionScore(q *model.Question, text string) bool {
	if q.OptionScores == nil {
		return false
	}
	_, ok := q.OptionScores[text]
	return ok
}

// optionPosition returns the 1-based index of text in the declared option
// list, or 0. Position fallback only applies to single-choice types.
func optionPosition(q *model.Question, text string) int {
	if q.Type != model.QuestionTypeMultipleChoice && q.Type != model.QuestionTypeDropdown {
		return 0
	}
	for i, opt := range q.Options {
		if opt == text {
			return i + 1
		}
	}
	return 0
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
