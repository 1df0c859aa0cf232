package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

type fakeResponseRepo struct {
	responses []*model.Response
}

func (f *fakeResponseRepo) Create(ctx context.Context, r *model.Response) error { return nil }
func (f *fakeResponseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	for _, r := range f.responses {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}
func (f *fakeResponseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	return f.responses, nil
}
func (f *fakeResponseRepo) CountBySurveyID(ctx context.Context, surveyID string) (int64, error) {
	return int64(len(f.responses)), nil
}

type fakeAnalyticsCache struct {
	summary map[string]*model.AnalyticsSummary
	bands   map[string]map[string]int64
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{
		summary: make(map[string]*model.AnalyticsSummary),
		bands:   make(map[string]map[string]int64),
	}
}

func (f *fakeAnalyticsCache) GetSummary(ctx context.Context, surveyID string) (*model.AnalyticsSummary, error) {
	return f.summary[surveyID], nil
}
func (f *fakeAnalyticsCache) SetSummary(ctx context.Context, summary *model.AnalyticsSummary) error {
	f.summary[summary.SurveyID] = summary
	return nil
}
func (f *fakeAnalyticsCache) InvalidateSummary(ctx context.Context, surveyID string) error {
	delete(f.summary, surveyID)
	return nil
}
func (f *fakeAnalyticsCache) IncrementBandCount(ctx context.Context, surveyID, band string) error {
	if band == "" {
		band = "unscored"
	}
	if f.bands[surveyID] == nil {
		f.bands[surveyID] = make(map[string]int64)
	}
	f.bands[surveyID][band]++
	return nil
}
func (f *fakeAnalyticsCache) GetBandCounts(ctx context.Context, surveyID string) (map[string]int64, error) {
	return f.bands[surveyID], nil
}

func intPtr(v int) *int { return &v }

func sampleResponses() []*model.Response {
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	return []*model.Response{
		{ID: "r1", SurveyID: "s1", Segment: "engineering", Score: intPtr(80), Band: "Highly Effective", SubmittedAt: day1},
		{ID: "r2", SurveyID: "s1", Segment: "engineering", Score: intPtr(60), Band: "Effective", SubmittedAt: day1},
		{ID: "r3", SurveyID: "s1", Segment: "sales", Score: intPtr(100), Band: "Highly Effective", SubmittedAt: day2},
		{ID: "r4", SurveyID: "s1", Segment: "", Score: nil, Band: "", SubmittedAt: day2},
	}
}

func TestSummaryDistributionBuckets(t *testing.T) {
	svc := NewAnalyticsService(&fakeResponseRepo{responses: sampleResponses()}, newFakeAnalyticsCache())

	summary, err := svc.Summary(context.Background(), "s1")
	require.NoError(t, err)

	dist := summary.Distribution
	assert.Equal(t, 4, dist.Total)
	assert.Equal(t, 1, dist.Unscored)
	require.Len(t, dist.Buckets, 10)

	// 80 lands in [80,89], 60 in [60,69], 100 in the widened top bucket [90,100]
	assert.Equal(t, 1, dist.Buckets[8].Count)
	assert.Equal(t, 1, dist.Buckets[6].Count)
	assert.Equal(t, 100, dist.Buckets[9].Max)
	assert.Equal(t, 1, dist.Buckets[9].Count)
}

func TestSummaryTrendDailyAverages(t *testing.T) {
	svc := NewAnalyticsService(&fakeResponseRepo{responses: sampleResponses()}, newFakeAnalyticsCache())

	summary, err := svc.Summary(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, summary.Trend.Points, 2)
	assert.Equal(t, "2026-03-01", summary.Trend.Points[0].Date)
	assert.Equal(t, 2, summary.Trend.Points[0].Count)
	assert.InDelta(t, 70.0, summary.Trend.Points[0].AvgScore, 0.001)
	assert.Equal(t, "2026-03-02", summary.Trend.Points[1].Date)
	assert.Equal(t, 1, summary.Trend.Points[1].Count) // unscored response excluded
}

func TestSummarySegmentBreakdown(t *testing.T) {
	svc := NewAnalyticsService(&fakeResponseRepo{responses: sampleResponses()}, newFakeAnalyticsCache())

	summary, err := svc.Summary(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, summary.Segments.Segments, 3)
	eng := summary.Segments.Segments[0]
	assert.Equal(t, "engineering", eng.Segment)
	assert.Equal(t, 2, eng.Count)
	assert.InDelta(t, 70.0, eng.AvgScore, 0.001)

	// Empty segment is reported under a stable label
	assert.Equal(t, "unsegmented", summary.Segments.Segments[2].Segment)
	assert.Equal(t, 0.0, summary.Segments.Segments[2].AvgScore)
}

func TestSummaryServedFromCache(t *testing.T) {
	cache := newFakeAnalyticsCache()
	cache.summary["s1"] = &model.AnalyticsSummary{SurveyID: "s1"}
	repo := &fakeResponseRepo{responses: sampleResponses()}
	svc := NewAnalyticsService(repo, cache)

	summary, err := svc.Summary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Distribution.Total) // cached copy, not recomputed
}

func TestBandsPreferCachedCounters(t *testing.T) {
	cache := newFakeAnalyticsCache()
	require.NoError(t, cache.IncrementBandCount(context.Background(), "s1", "Effective"))
	require.NoError(t, cache.IncrementBandCount(context.Background(), "s1", "Effective"))
	svc := NewAnalyticsService(&fakeResponseRepo{responses: sampleResponses()}, cache)

	bands, err := svc.Bands(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, bands.Total)
	require.Len(t, bands.Bands, 1)
	assert.Equal(t, "Effective", bands.Bands[0].Label)
}

func TestBandsRecomputeFromStorage(t *testing.T) {
	svc := NewAnalyticsService(&fakeResponseRepo{responses: sampleResponses()}, newFakeAnalyticsCache())

	bands, err := svc.Bands(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, bands.Total)

	counts := make(map[string]int)
	for _, b := range bands.Bands {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, 2, counts["Highly Effective"])
	assert.Equal(t, 1, counts["Effective"])
	assert.Equal(t, 1, counts["unscored"])
}
