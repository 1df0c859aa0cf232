package scoring

import "pulsecheck/internal/model"

// DefaultBands is the fixed fallback taxonomy. It covers 0-100 with no gaps
// and no overlaps, so resolution always terminates with a band.
var DefaultBands = []model.ScoreRange{
	{ID: "critical", Min: 0, Max: 19, Label: "Critical", Color: "#dc2626"},
	{ID: "needs-improvement", Min: 20, Max: 39, Label: "Needs Improvement", Color: "#f59e0b"},
	{ID: "developing", Min: 40, Max: 59, Label: "Developing", Color: "#eab308"},
	{ID: "effective", Min: 60, Max: 79, Label: "Effective", Color: "#22c55e"},
	{ID: "highly-effective", Min: 80, Max: 100, Label: "Highly Effective", Color: "#16a34a"},
}

// ResolveBand maps a score onto the first declared range containing it.
// Ranges are contiguous and non-overlapping after normalization, so
// first-match is deterministic. With no match (empty or misconfigured
// scope) the default taxonomy applies and MatchedRange stays nil, letting
// callers distinguish custom from fallback resolution.
func ResolveBand(score int, ranges []model.ScoreRange) model.BandResolution {
	for i := range ranges {
		if score >= ranges[i].Min && score <= ranges[i].Max {
			r := ranges[i]
			return model.BandResolution{
				BandID:       r.ID,
				Label:        r.Label,
				Color:        r.Color,
				MatchedRange: &r,
			}
		}
	}

	clamped := score
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	for _, r := range DefaultBands {
		if clamped >= r.Min && clamped <= r.Max {
			return model.BandResolution{BandID: r.ID, Label: r.Label, Color: r.Color}
		}
	}
	// Unreachable: the taxonomy has total coverage.
	last := DefaultBands[len(DefaultBands)-1]
	return model.BandResolution{BandID: last.ID, Label: last.Label, Color: last.Color}
}
