package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeRating         QuestionType = "RATING"          // Star/numeric rating on a fixed scale
	QuestionTypeNPS            QuestionType = "NPS"             // Net promoter score, 0-10
	QuestionTypeLikert         QuestionType = "LIKERT"          // Agreement scale
	QuestionTypeOpinionScale   QuestionType = "OPINION_SCALE"   // Numeric opinion scale
	QuestionTypeSlider         QuestionType = "SLIDER"          // Value between min/max
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE" // Single pick from options
	QuestionTypeDropdown       QuestionType = "DROPDOWN"        // Single pick, dropdown UI
	QuestionTypeCheckbox       QuestionType = "CHECKBOX"        // Multi-select
	QuestionTypeImageChoice    QuestionType = "IMAGE_CHOICE"    // Single pick from images
	QuestionTypeYesNo          QuestionType = "YES_NO"          // Binary
	QuestionTypeMatrix         QuestionType = "MATRIX"          // Row x column grid
	QuestionTypeRanking        QuestionType = "RANKING"         // Ordered options
	QuestionTypeConstantSum    QuestionType = "CONSTANT_SUM"    // Points distributed across options
	QuestionTypeNumber         QuestionType = "NUMBER"          // Free numeric entry
	QuestionTypeFreeText       QuestionType = "FREE_TEXT"       // Essay, scored by the semantic scorer
	QuestionTypeStatement      QuestionType = "STATEMENT"       // Display only, never scored
)

// Question is a survey question template. Immutable during a scoring pass.
type Question struct {
	Key             string         `json:"key" bson:"key"` // e.g. "Q1", "Q2"
	Type            QuestionType   `json:"type" bson:"type"`
	Text            string         `json:"text" bson:"text"`
	Scorable        bool           `json:"scorable" bson:"scorable"`
	ScoringCategory string         `json:"scoringCategory,omitempty" bson:"scoringCategory,omitempty"`
	ScoreWeight     int            `json:"scoreWeight,omitempty" bson:"scoreWeight,omitempty"` // defaults to 1
	OptionScores    map[string]int `json:"optionScores,omitempty" bson:"optionScores,omitempty"`

	// Type-specific parameters
	RatingScale   int      `json:"ratingScale,omitempty" bson:"ratingScale,omitempty"` // RATING, OPINION_SCALE
	LikertPoints  int      `json:"likertPoints,omitempty" bson:"likertPoints,omitempty"`
	SliderMin     int      `json:"sliderMin,omitempty" bson:"sliderMin,omitempty"`
	SliderMax     int      `json:"sliderMax,omitempty" bson:"sliderMax,omitempty"`
	Options       []string `json:"options,omitempty" bson:"options,omitempty"`
	MaxSelections int      `json:"maxSelections,omitempty" bson:"maxSelections,omitempty"` // CHECKBOX
	ImageOptions  []string `json:"imageOptions,omitempty" bson:"imageOptions,omitempty"`
	RowLabels     []string `json:"rowLabels,omitempty" bson:"rowLabels,omitempty"` // MATRIX
	ColLabels     []string `json:"colLabels,omitempty" bson:"colLabels,omitempty"` // MATRIX
	TotalPoints   int      `json:"totalPoints,omitempty" bson:"totalPoints,omitempty"` // CONSTANT_SUM
}

// Weight returns the effective score weight (never below 1).
func (q *Question) Weight() int {
	if q.ScoreWeight < 1 {
		return 1
	}
	return q.ScoreWeight
}
