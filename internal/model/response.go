package model

import "time"

// Response is a stored respondent submission with its persisted score+band.
// The full trace is re-derived on demand, never stored.
type Response struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SurveyID    string    `json:"surveyId" bson:"surveyId"`
	Respondent  string    `json:"respondent,omitempty" bson:"respondent,omitempty"`
	Segment     string    `json:"segment,omitempty" bson:"segment,omitempty"` // e.g. team or manager group
	Answers     Answers   `json:"answers" bson:"answers"`
	Score       *int      `json:"score" bson:"score"` // nil when no scorable data
	Band        string    `json:"band,omitempty" bson:"band,omitempty"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	Respondent string  `json:"respondent,omitempty"`
	Segment    string  `json:"segment,omitempty"`
	Answers    Answers `json:"answers"`
}

// SubmitResponseResponse is returned to the respondent after scoring
type SubmitResponseResponse struct {
	ResponseID     string       `json:"responseId"`
	Score          *int         `json:"score"`
	Band           string       `json:"band,omitempty"`
	ResultsTitle   string       `json:"resultsTitle,omitempty"`
	ResultsMessage string       `json:"resultsMessage,omitempty"`
	Errors         []Diagnostic `json:"errors,omitempty"`
}
