package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/scoring"
)

// scoreTimeout bounds one scoring pass; only the semantic scorer leg can
// actually block on it.
const scoreTimeout = 15 * time.Second

// ResponseService handles response submission and trace inspection. Both go
// through the same engine call, so the persisted score and the debug trace
// can never disagree.
type ResponseService struct {
	surveyRepo     repository.SurveyRepo
	responseRepo   repository.ResponseRepo
	analyticsCache cache.AnalyticsCache
	engine         *scoring.Engine
	broadcaster    Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	analyticsCache cache.AnalyticsCache,
	engine *scoring.Engine,
) *ResponseService {
	return &ResponseService{
		surveyRepo:     surveyRepo,
		responseRepo:   responseRepo,
		analyticsCache: analyticsCache,
		engine:         engine,
	}
}

// SetBroadcaster sets the broadcaster for dashboard events
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit scores and persists one response
func (s *ResponseService) Submit(ctx context.Context, surveyID string, req *model.SubmitResponseRequest) (*model.SubmitResponseResponse, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load survey: %w", err)
	}
	if survey == nil {
		return nil, fmt.Errorf("survey not found")
	}

	scoreCtx, cancel := context.WithTimeout(ctx, scoreTimeout)
	defer cancel()
	result := s.engine.Score(scoreCtx, survey, req.Answers)

	response := &model.Response{
		ID:          uuid.New().String(),
		SurveyID:    surveyID,
		Respondent:  req.Respondent,
		Segment:     req.Segment,
		Answers:     req.Answers,
		Score:       result.Overall.Score,
		SubmittedAt: time.Now(),
	}
	if result.Overall.Band != nil {
		response.Band = result.Overall.Band.Label
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to persist response: %w", err)
	}

	// Roll the dashboard counters forward. Best effort: a cache failure
	// must not fail the submission.
	if err := s.analyticsCache.IncrementBandCount(ctx, surveyID, response.Band); err != nil {
		log.Printf("[Response] band count update failed for survey %s: %v", surveyID, err)
	}
	if err := s.analyticsCache.InvalidateSummary(ctx, surveyID); err != nil {
		log.Printf("[Response] summary invalidation failed for survey %s: %v", surveyID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDashboard(surveyID, "response_scored", map[string]interface{}{
			"responseId": response.ID,
			"segment":    response.Segment,
			"score":      response.Score,
			"band":       response.Band,
		})
	}

	return &model.SubmitResponseResponse{
		ResponseID:     response.ID,
		Score:          response.Score,
		Band:           response.Band,
		ResultsTitle:   result.Config.ResultsTitle,
		ResultsMessage: result.Config.ResultsMessage,
		Errors:         result.Errors,
	}, nil
}

// Get returns one stored response
func (s *ResponseService) Get(ctx context.Context, surveyID, responseID string) (*model.Response, error) {
	response, err := s.responseRepo.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil || response.SurveyID != surveyID {
		return nil, nil
	}
	return response, nil
}

// List returns all stored responses for a survey
func (s *ResponseService) List(ctx context.Context, surveyID string) ([]*model.Response, error) {
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}

// Trace re-derives the full scoring result for one stored response. It runs
// the exact same engine call as Submit against the stored answers and never
// touches the persisted score.
func (s *ResponseService) Trace(ctx context.Context, surveyID, responseID string) (*model.ScoringResult, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, fmt.Errorf("survey not found")
	}

	response, err := s.Get(ctx, surveyID, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, nil
	}

	scoreCtx, cancel := context.WithTimeout(ctx, scoreTimeout)
	defer cancel()
	return s.engine.Score(scoreCtx, survey, response.Answers), nil
}
