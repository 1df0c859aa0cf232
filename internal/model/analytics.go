package model

import "time"

// DistributionBucket is one histogram bucket of overall scores
type DistributionBucket struct {
	Min   int `json:"min" bson:"min"`
	Max   int `json:"max" bson:"max"`
	Count int `json:"count" bson:"count"`
}

// ScoreDistribution is the histogram of overall scores for a survey
type ScoreDistribution struct {
	SurveyID string               `json:"surveyId" bson:"surveyId"`
	Total    int                  `json:"total" bson:"total"`
	Unscored int                  `json:"unscored" bson:"unscored"` // responses with no scorable data
	Buckets  []DistributionBucket `json:"buckets" bson:"buckets"`
}

// BandCount is a band label with its response count
type BandCount struct {
	Label string `json:"label" bson:"label"`
	Count int    `json:"count" bson:"count"`
}

// BandSummary counts responses per resolved band
type BandSummary struct {
	SurveyID string      `json:"surveyId" bson:"surveyId"`
	Total    int         `json:"total" bson:"total"`
	Bands    []BandCount `json:"bands" bson:"bands"`
}

// TrendPoint is one day in the score trend series
type TrendPoint struct {
	Date     string  `json:"date" bson:"date"` // YYYY-MM-DD
	Count    int     `json:"count" bson:"count"`
	AvgScore float64 `json:"avgScore" bson:"avgScore"`
}

// ScoreTrend is the daily average score series for a survey
type ScoreTrend struct {
	SurveyID string       `json:"surveyId" bson:"surveyId"`
	Points   []TrendPoint `json:"points" bson:"points"`
}

// SegmentBreakdown aggregates scores for one respondent segment
type SegmentBreakdown struct {
	Segment  string      `json:"segment" bson:"segment"`
	Count    int         `json:"count" bson:"count"`
	AvgScore float64     `json:"avgScore" bson:"avgScore"`
	Bands    []BandCount `json:"bands" bson:"bands"`
}

// SegmentReport is the per-segment breakdown for a survey
type SegmentReport struct {
	SurveyID string             `json:"surveyId" bson:"surveyId"`
	Segments []SegmentBreakdown `json:"segments" bson:"segments"`
}

// AnalyticsSummary is the cached rollup for a survey dashboard
type AnalyticsSummary struct {
	SurveyID     string            `json:"surveyId" bson:"surveyId"`
	Distribution ScoreDistribution `json:"distribution" bson:"distribution"`
	Trend        ScoreTrend        `json:"trend" bson:"trend"`
	Segments     SegmentReport     `json:"segments" bson:"segments"`
	UpdatedAt    time.Time         `json:"updatedAt" bson:"updatedAt"`
}
