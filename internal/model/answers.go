package model

import "encoding/json"

// AnswerValue holds the texts given for one question. Scalar answers decode
// to a single-element list so handlers accept both `"4"` and `["A","B"]`.
type AnswerValue []string

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = AnswerValue{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*v = AnswerValue(list)
	return nil
}

// First returns the first answer text, or "" when empty.
func (v AnswerValue) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Answers maps question key to the respondent's answer.
// An absent key means the question was not answered.
type Answers map[string]AnswerValue
