package service

import (
	"context"
	"fmt"
	"log"

	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/scoring"
)

// SurveyService handles survey CRUD. Scoring configurations are normalized
// once per edit here, so stored configs are always usable downstream.
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo}
}

// Create normalizes the scoring config and stores the survey
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	s.normalizeConfig(survey)
	return s.surveyRepo.Create(ctx, survey)
}

// Update normalizes the scoring config and replaces the survey
func (s *SurveyService) Update(ctx context.Context, survey *model.Survey) error {
	existing, err := s.surveyRepo.GetByID(ctx, survey.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("survey %s not found", survey.ID)
	}
	if existing.HostID != survey.HostID {
		return fmt.Errorf("survey %s not owned by host", survey.ID)
	}

	s.normalizeConfig(survey)
	return s.surveyRepo.Update(ctx, survey)
}

// GetByID returns one survey, or nil
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// GetByHostID lists a host's surveys
func (s *SurveyService) GetByHostID(ctx context.Context, hostID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByHostID(ctx, hostID)
}

// Delete removes a survey
func (s *SurveyService) Delete(ctx context.Context, id string) error {
	return s.surveyRepo.Delete(ctx, id)
}

func (s *SurveyService) normalizeConfig(survey *model.Survey) {
	if !survey.ScoreConfig.Enabled {
		return
	}
	normalized, diags := scoring.NormalizeConfig(survey.ScoreConfig, survey.Questions)
	for _, d := range diags {
		log.Printf("[Survey] config repair on %q: %s: %s", survey.Title, d.Code, d.Message)
	}
	survey.ScoreConfig = normalized
}
