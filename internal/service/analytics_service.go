package service

import (
	"context"
	"sort"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

// AnalyticsService aggregates stored scoring outcomes across responses.
// It is a pure consumer of the engine's output contract: everything here is
// derived from the persisted score+band pairs.
type AnalyticsService struct {
	responseRepo   repository.ResponseRepo
	analyticsCache cache.AnalyticsCache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(responseRepo repository.ResponseRepo, analyticsCache cache.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{
		responseRepo:   responseRepo,
		analyticsCache: analyticsCache,
	}
}

// Summary returns the cached rollup for a survey, recomputing on miss
func (s *AnalyticsService) Summary(ctx context.Context, surveyID string) (*model.AnalyticsSummary, error) {
	cached, err := s.analyticsCache.GetSummary(ctx, surveyID)
	if err == nil && cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	summary := &model.AnalyticsSummary{
		SurveyID:     surveyID,
		Distribution: buildDistribution(surveyID, responses),
		Trend:        buildTrend(surveyID, responses),
		Segments:     buildSegments(surveyID, responses),
	}

	// Best effort: serving the summary matters more than caching it.
	_ = s.analyticsCache.SetSummary(ctx, summary)
	return summary, nil
}

// Distribution returns the overall-score histogram for a survey
func (s *AnalyticsService) Distribution(ctx context.Context, surveyID string) (*model.ScoreDistribution, error) {
	summary, err := s.Summary(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &summary.Distribution, nil
}

// Trend returns the daily average score series for a survey
func (s *AnalyticsService) Trend(ctx context.Context, surveyID string) (*model.ScoreTrend, error) {
	summary, err := s.Summary(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &summary.Trend, nil
}

// Segments returns the per-segment breakdown for a survey
func (s *AnalyticsService) Segments(ctx context.Context, surveyID string) (*model.SegmentReport, error) {
	summary, err := s.Summary(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &summary.Segments, nil
}

// Bands returns the band-count summary. The rolled-forward Redis counters
// are preferred; an empty hash falls back to a recompute from storage.
func (s *AnalyticsService) Bands(ctx context.Context, surveyID string) (*model.BandSummary, error) {
	counts, err := s.analyticsCache.GetBandCounts(ctx, surveyID)
	if err == nil && len(counts) > 0 {
		return bandSummaryFromCounts(surveyID, counts), nil
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	counts = make(map[string]int64)
	for _, r := range responses {
		label := r.Band
		if label == "" {
			label = "unscored"
		}
		counts[label]++
	}
	return bandSummaryFromCounts(surveyID, counts), nil
}

func bandSummaryFromCounts(surveyID string, counts map[string]int64) *model.BandSummary {
	summary := &model.BandSummary{SurveyID: surveyID, Bands: []model.BandCount{}}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		summary.Bands = append(summary.Bands, model.BandCount{Label: label, Count: int(counts[label])})
		summary.Total += int(counts[label])
	}
	return summary
}

func buildDistribution(surveyID string, responses []*model.Response) model.ScoreDistribution {
	dist := model.ScoreDistribution{SurveyID: surveyID, Buckets: []model.DistributionBucket{}}
	for lo := 0; lo < 100; lo += 10 {
		hi := lo + 9
		if hi == 99 {
			hi = 100 // top bucket absorbs a perfect score
		}
		dist.Buckets = append(dist.Buckets, model.DistributionBucket{Min: lo, Max: hi})
	}

	for _, r := range responses {
		dist.Total++
		if r.Score == nil {
			dist.Unscored++
			continue
		}
		for i := range dist.Buckets {
			if *r.Score >= dist.Buckets[i].Min && *r.Score <= dist.Buckets[i].Max {
				dist.Buckets[i].Count++
				break
			}
		}
	}
	return dist
}

func buildTrend(surveyID string, responses []*model.Response) model.ScoreTrend {
	type daily struct {
		sum   int
		count int
	}
	byDay := make(map[string]*daily)
	for _, r := range responses {
		if r.Score == nil {
			continue
		}
		day := r.SubmittedAt.Format("2006-01-02")
		if byDay[day] == nil {
			byDay[day] = &daily{}
		}
		byDay[day].sum += *r.Score
		byDay[day].count++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := model.ScoreTrend{SurveyID: surveyID, Points: []model.TrendPoint{}}
	for _, day := range days {
		d := byDay[day]
		trend.Points = append(trend.Points, model.TrendPoint{
			Date:     day,
			Count:    d.count,
			AvgScore: float64(d.sum) / float64(d.count),
		})
	}
	return trend
}

func buildSegments(surveyID string, responses []*model.Response) model.SegmentReport {
	type segAgg struct {
		sum    int
		scored int
		count  int
		bands  map[string]int
	}
	bySegment := make(map[string]*segAgg)
	for _, r := range responses {
		segment := r.Segment
		if segment == "" {
			segment = "unsegmented"
		}
		if bySegment[segment] == nil {
			bySegment[segment] = &segAgg{bands: make(map[string]int)}
		}
		agg := bySegment[segment]
		agg.count++
		if r.Score != nil {
			agg.sum += *r.Score
			agg.scored++
		}
		if r.Band != "" {
			agg.bands[r.Band]++
		}
	}

	segments := make([]string, 0, len(bySegment))
	for segment := range bySegment {
		segments = append(segments, segment)
	}
	sort.Strings(segments)

	report := model.SegmentReport{SurveyID: surveyID, Segments: []model.SegmentBreakdown{}}
	for _, segment := range segments {
		agg := bySegment[segment]
		breakdown := model.SegmentBreakdown{
			Segment: segment,
			Count:   agg.count,
			Bands:   []model.BandCount{},
		}
		if agg.scored > 0 {
			breakdown.AvgScore = float64(agg.sum) / float64(agg.scored)
		}
		labels := make([]string, 0, len(agg.bands))
		for label := range agg.bands {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			breakdown.Bands = append(breakdown.Bands, model.BandCount{Label: label, Count: agg.bands[label]})
		}
		report.Segments = append(report.Segments, breakdown)
	}
	return report
}
