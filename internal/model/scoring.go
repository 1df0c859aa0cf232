package model

// ScoringCategory is a named grouping of questions whose contributions are
// summed and normalized together.
type ScoringCategory struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// ScoreRange is a labeled band. Global ranges (empty CategoryID) are on the
// 0-100 normalized scale; category-scoped ranges are on that category's raw
// scale. Bounds are inclusive.
type ScoreRange struct {
	ID         string `json:"id" bson:"id"`
	Min        int    `json:"min" bson:"min"`
	Max        int    `json:"max" bson:"max"`
	Label      string `json:"label" bson:"label"`
	Color      string `json:"color,omitempty" bson:"color,omitempty"`
	CategoryID string `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
}

// ScoreConfig is the survey's scoring configuration. User-edited, so it is
// normalized once at the edge before any computation trusts it.
type ScoreConfig struct {
	Enabled        bool              `json:"enabled" bson:"enabled"`
	Categories     []ScoringCategory `json:"categories" bson:"categories"`
	Ranges         []ScoreRange      `json:"ranges" bson:"ranges"`
	ResultsTitle   string            `json:"resultsTitle,omitempty" bson:"resultsTitle,omitempty"`
	ResultsMessage string            `json:"resultsMessage,omitempty" bson:"resultsMessage,omitempty"`
}

// DiagnosticCode classifies a non-fatal scoring diagnostic
type DiagnosticCode string

const (
	DiagConfigurationError       DiagnosticCode = "ConfigurationError"
	DiagUnknownCategoryReference DiagnosticCode = "UnknownCategoryReference"
	DiagUnparseableAnswer        DiagnosticCode = "UnparseableAnswer"
	DiagNoScorableData           DiagnosticCode = "NoScorableData"
	DiagExternalScorerFailure    DiagnosticCode = "ExternalScorerFailure"
)

// Diagnostic records a non-fatal issue observed during a scoring pass.
type Diagnostic struct {
	Code        DiagnosticCode `json:"code" bson:"code"`
	QuestionKey string         `json:"questionKey,omitempty" bson:"questionKey,omitempty"`
	CategoryID  string         `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Message     string         `json:"message" bson:"message"`
}

// Contribution is one question's entry in the scoring trace.
type Contribution struct {
	QuestionKey     string `json:"questionKey" bson:"questionKey"`
	CategoryID      string `json:"categoryId" bson:"categoryId"`
	Score           int    `json:"score" bson:"score"`
	MaxPoints       int    `json:"maxPoints" bson:"maxPoints"`
	Weight          int    `json:"weight" bson:"weight"`
	WeightedScore   int    `json:"weightedScore" bson:"weightedScore"`
	WeightedMax     int    `json:"weightedMax" bson:"weightedMax"`
	UsedOptionScore bool   `json:"usedOptionScore" bson:"usedOptionScore"`
	Unparseable     bool   `json:"unparseable,omitempty" bson:"unparseable,omitempty"`
	Semantic        bool   `json:"semantic,omitempty" bson:"semantic,omitempty"`
}

// BandResolution is the outcome of mapping a score onto ranges.
// MatchedRange is nil exactly when the default taxonomy was used.
type BandResolution struct {
	BandID       string      `json:"bandId" bson:"bandId"`
	Label        string      `json:"label" bson:"label"`
	Color        string      `json:"color,omitempty" bson:"color,omitempty"`
	MatchedRange *ScoreRange `json:"matchedRange,omitempty" bson:"matchedRange,omitempty"`
}

// CategoryScore is the per-category breakdown.
type CategoryScore struct {
	CategoryID      string         `json:"categoryId" bson:"categoryId"`
	Name            string         `json:"name" bson:"name"`
	RawTotal        int            `json:"rawTotal" bson:"rawTotal"`
	MaxTotal        int            `json:"maxTotal" bson:"maxTotal"`
	AnsweredCount   int            `json:"answeredCount" bson:"answeredCount"`
	NormalizedScore int            `json:"normalizedScore" bson:"normalizedScore"`
	Band            BandResolution `json:"band" bson:"band"`
}

// OverallScore is the survey-level resolution. Score is nil when no category
// had any answered question.
type OverallScore struct {
	Score *int            `json:"score" bson:"score"`
	Band  *BandResolution `json:"band,omitempty" bson:"band,omitempty"`
}

// ScoringResult is the full auditable outcome of one scoring pass. It is
// created fresh on every invocation and never mutated afterwards.
type ScoringResult struct {
	Config        ScoreConfig     `json:"config" bson:"config"` // normalized snapshot
	Contributions []Contribution  `json:"contributions" bson:"contributions"`
	Categories    []CategoryScore `json:"categories" bson:"categories"`
	Overall       OverallScore    `json:"overall" bson:"overall"`
	Errors        []Diagnostic    `json:"errors" bson:"errors"`
}
