package scoring

import (
	"fmt"
	"sort"

	"pulsecheck/internal/model"
)

// perQuestionCeiling is the default point ceiling used when sizing a
// category's theoretical scale.
const perQuestionCeiling = 5

// canonicalLabels is the ascending progression used to repair duplicate
// band labels and to name synthesized fallback ranges.
var canonicalLabels = []string{"Needs Development", "Developing", "Excellent", "Outstanding"}

// CategoryScaleMax returns the raw-scale ceiling for a category: the number
// of scorable questions mapped to it times the per-question ceiling. A
// category with no mapped questions falls back to the normalized scale.
func CategoryScaleMax(questions []model.Question, categoryID string) int {
	count := 0
	for i := range questions {
		if questions[i].Scorable && questions[i].ScoringCategory == categoryID {
			count++
		}
	}
	if count == 0 {
		return 100
	}
	return count * perQuestionCeiling
}

// NormalizeConfig validates and repairs a user-edited scoring configuration.
// It runs once per scoring pass (and once per configuration edit) so the
// pipeline downstream never re-checks shapes. Repairs are reported as
// diagnostics, never silently trusted and never fatal:
//
//   - range bounds are clamped into [0, scope-max] and swapped if inverted
//   - overlapping or gapped ranges are made contiguous across [0, scope-max]
//   - duplicate labels within a scope are reassigned from the canonical
//     ascending progression by position
//   - a category left with no valid range gets three synthesized equal-width
//     ranges spanning its theoretical max
//   - question references to undeclared categories are flagged
func NormalizeConfig(cfg model.ScoreConfig, questions []model.Question) (model.ScoreConfig, []model.Diagnostic) {
	var diags []model.Diagnostic

	out := cfg
	out.Categories = append([]model.ScoringCategory(nil), cfg.Categories...)
	out.Ranges = nil

	declared := make(map[string]bool, len(out.Categories))
	for _, c := range out.Categories {
		declared[c.ID] = true
	}
	for i := range questions {
		q := &questions[i]
		if q.Scorable && q.ScoringCategory != "" && !declared[q.ScoringCategory] {
			diags = append(diags, model.Diagnostic{
				Code:        model.DiagUnknownCategoryReference,
				QuestionKey: q.Key,
				CategoryID:  q.ScoringCategory,
				Message:     fmt.Sprintf("question %s references undeclared category %q", q.Key, q.ScoringCategory),
			})
		}
	}

	// Global scope first, then categories in declaration order.
	global, gd := normalizeScope("", 100, scopeRanges(cfg.Ranges, ""))
	diags = append(diags, gd...)
	out.Ranges = append(out.Ranges, global...)

	for _, c := range out.Categories {
		scaleMax := CategoryScaleMax(questions, c.ID)
		repaired, cd := normalizeScope(c.ID, scaleMax, scopeRanges(cfg.Ranges, c.ID))
		diags = append(diags, cd...)
		if len(repaired) == 0 {
			repaired = synthesizeRanges(c.ID, scaleMax)
			diags = append(diags, model.Diagnostic{
				Code:       model.DiagConfigurationError,
				CategoryID: c.ID,
				Message:    fmt.Sprintf("category %q had no valid ranges; synthesized default bands", c.ID),
			})
		}
		out.Ranges = append(out.Ranges, repaired...)
	}

	return out, diags
}

func scopeRanges(ranges []model.ScoreRange, categoryID string) []model.ScoreRange {
	var out []model.ScoreRange
	for _, r := range ranges {
		if r.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	return out
}

// normalizeScope repairs one scope's ranges. Global ranges live on the 0-100
// normalized scale, category ranges on the category's raw scale. A zero-width
// range is dropped unless it is exactly [0,0].
func normalizeScope(categoryID string, scaleMax int, ranges []model.ScoreRange) ([]model.ScoreRange, []model.Diagnostic) {
	var diags []model.Diagnostic
	scopeDiag := func(format string, args ...interface{}) {
		diags = append(diags, model.Diagnostic{
			Code:       model.DiagConfigurationError,
			CategoryID: categoryID,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	repaired := make([]model.ScoreRange, 0, len(ranges))
	for _, r := range ranges {
		orig := r
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
		}
		r.Min = clamp(r.Min, 0, scaleMax)
		r.Max = clamp(r.Max, 0, scaleMax)
		if r != orig {
			scopeDiag("range %q bounds repaired from [%d,%d] to [%d,%d]", orig.Label, orig.Min, orig.Max, r.Min, r.Max)
		}
		if r.Max == r.Min && r.Min != 0 {
			scopeDiag("dropped zero-width range %q at %d", r.Label, r.Min)
			continue
		}
		repaired = append(repaired, r)
	}
	if len(repaired) == 0 {
		return nil, diags
	}

	sort.SliceStable(repaired, func(i, j int) bool { return repaired[i].Min < repaired[j].Min })

	// Make the scope contiguous across [0, scaleMax]. Ranges fully swallowed
	// by a predecessor are dropped.
	contiguous := repaired[:0]
	for _, r := range repaired {
		if len(contiguous) == 0 {
			r.Min = 0
		} else {
			prev := &contiguous[len(contiguous)-1]
			if r.Min != prev.Max+1 {
				r.Min = prev.Max + 1
			}
			if r.Max < r.Min {
				scopeDiag("dropped range %q swallowed by overlap repair", r.Label)
				continue
			}
		}
		contiguous = append(contiguous, r)
	}
	if len(contiguous) == 0 {
		return nil, diags
	}
	contiguous[len(contiguous)-1].Max = scaleMax

	if hasDuplicateLabels(contiguous) {
		for i := range contiguous {
			contiguous[i].Label = canonicalLabel(i)
		}
		scopeDiag("duplicate labels reassigned from canonical progression")
	}

	return contiguous, diags
}

func hasDuplicateLabels(ranges []model.ScoreRange) bool {
	seen := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		if seen[r.Label] {
			return true
		}
		seen[r.Label] = true
	}
	return false
}

func canonicalLabel(position int) string {
	if position >= len(canonicalLabels) {
		return canonicalLabels[len(canonicalLabels)-1]
	}
	return canonicalLabels[position]
}

// synthesizeRanges builds three equal-width ranges spanning [0, scaleMax] so
// every category always has a usable range set.
func synthesizeRanges(categoryID string, scaleMax int) []model.ScoreRange {
	width := scaleMax / 3
	ranges := []model.ScoreRange{
		{Min: 0, Max: width},
		{Min: width + 1, Max: 2 * width},
		{Min: 2*width + 1, Max: scaleMax},
	}
	out := ranges[:0]
	for i, r := range ranges {
		if r.Max < r.Min {
			continue
		}
		r.ID = fmt.Sprintf("%s-band-%d", categoryID, i+1)
		r.Label = canonicalLabel(i)
		r.CategoryID = categoryID
		out = append(out, r)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
