package model

import "time"

// Survey is a persistent template created by a host
type Survey struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	HostID      string      `json:"hostId" bson:"hostId"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Questions   []Question  `json:"questions" bson:"questions"`
	ScoreConfig ScoreConfig `json:"scoreConfig" bson:"scoreConfig"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// QuestionByKey returns the question with the given key, or nil.
func (s *Survey) QuestionByKey(key string) *Question {
	for i := range s.Questions {
		if s.Questions[i].Key == key {
			return &s.Questions[i]
		}
	}
	return nil
}
