package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pulsecheck/internal/config"
	"pulsecheck/internal/scoring"
)

// SemanticScorerClient scores free-text answers via the configured
// generative API. It implements scoring.SemanticScorer; the engine defends
// against its output, so this client only has to deliver the batch.
type SemanticScorerClient struct {
	config *config.ScorerConfig
	client *http.Client
}

// NewSemanticScorerClient creates a new semantic scorer client
func NewSemanticScorerClient(cfg *config.ScorerConfig) *SemanticScorerClient {
	return &SemanticScorerClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// ScoreBatch scores all free-text items in one call
func (s *SemanticScorerClient) ScoreBatch(ctx context.Context, items []scoring.SemanticItem) ([]scoring.SemanticScore, error) {
	if !s.config.IsEnabled() {
		return nil, fmt.Errorf("semantic scorer not configured")
	}

	prompt := s.buildBatchPrompt(items)
	response, err := s.callModel(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Scores []scoring.SemanticScore `json:"scores"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable scorer response: %w", err)
	}

	return parsed.Scores, nil
}

// callModel makes a request to the generative API
func (s *SemanticScorerClient) callModel(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var apiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", err
	}

	if len(apiResp.Candidates) > 0 && len(apiResp.Candidates[0].Content.Parts) > 0 {
		return apiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from scorer")
}

func (s *SemanticScorerClient) buildBatchPrompt(items []scoring.SemanticItem) string {
	var sb strings.Builder
	sb.WriteString(`You are scoring free-text survey answers. Return ONLY valid JSON:
{
  "scores": [
    {"questionKey": "Q1", "categoryId": "cat-id", "value": 0}
  ]
}

Score each answer from 0 (no signal) to 5 (strong, specific signal) for how
positively it reflects on its scoring category. One entry per item, keeping
the given questionKey and categoryId.

Items:
`)
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- questionKey: %s\n  category: %s (%s)\n  question: %s\n  answer: %q\n",
			item.QuestionKey, item.CategoryName, item.CategoryID, item.QuestionText, item.ResponseText))
	}
	return sb.String()
}
