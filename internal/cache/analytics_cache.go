package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// AnalyticsCache handles Redis operations for survey analytics rollups
type AnalyticsCache interface {
	GetSummary(ctx context.Context, surveyID string) (*model.AnalyticsSummary, error)
	SetSummary(ctx context.Context, summary *model.AnalyticsSummary) error
	InvalidateSummary(ctx context.Context, surveyID string) error

	// Band counts are rolled forward on every submission so the dashboard
	// band summary never requires a full recompute.
	IncrementBandCount(ctx context.Context, surveyID, bandLabel string) error
	GetBandCounts(ctx context.Context, surveyID string) (map[string]int64, error)
}

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

// Key helpers
func (c *analyticsCache) summaryKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:analytics", surveyID)
}

func (c *analyticsCache) bandsKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:bands", surveyID)
}

func (c *analyticsCache) GetSummary(ctx context.Context, surveyID string) (*model.AnalyticsSummary, error) {
	data, err := c.client.Get(ctx, c.summaryKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.AnalyticsSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *analyticsCache) SetSummary(ctx context.Context, summary *model.AnalyticsSummary) error {
	summary.UpdatedAt = time.Now()
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.summaryKey(summary.SurveyID), data, c.ttl).Err()
}

func (c *analyticsCache) InvalidateSummary(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.summaryKey(surveyID)).Err()
}

func (c *analyticsCache) IncrementBandCount(ctx context.Context, surveyID, bandLabel string) error {
	if bandLabel == "" {
		bandLabel = "unscored"
	}
	return c.client.HIncrBy(ctx, c.bandsKey(surveyID), bandLabel, 1).Err()
}

func (c *analyticsCache) GetBandCounts(ctx context.Context, surveyID string) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, c.bandsKey(surveyID)).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for label, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		counts[label] = n
	}
	return counts, nil
}
