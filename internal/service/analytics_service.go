package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultAnalyticsWindowDays is the trend window used when the caller
	// does not specify one.
	DefaultAnalyticsWindowDays = 30

	// RecentWindowDays is the short window used by the insights service.
	RecentWindowDays = 7

	dateLayout = "2006-01-02"
)

// AnalyticsService compresses raw samples into daily and overall statistics.
// Summaries are recomputed on every request and never persisted.
type AnalyticsService interface {
	// Summarize aggregates the last windowDays of buckets.
	Summarize(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.AnalyticsSummary, error)
	// SummarizeWindow aggregates buckets with dates in [from, to].
	SummarizeWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) (*domain.AnalyticsSummary, error)
}

type analyticsService struct {
	bucketRepo  repository.BucketRepository
	patientRepo repository.PatientRepository
}

func NewAnalyticsService(bucketRepo repository.BucketRepository, patientRepo repository.PatientRepository) AnalyticsService {
	return &analyticsService{
		bucketRepo:  bucketRepo,
		patientRepo: patientRepo,
	}
}

func (s *analyticsService) Summarize(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.AnalyticsSummary, error) {
	if windowDays <= 0 {
		windowDays = DefaultAnalyticsWindowDays
	}
	now := time.Now().UTC()
	return s.SummarizeWindow(ctx, patientID, now.AddDate(0, 0, -windowDays), now)
}

func (s *analyticsService) SummarizeWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) (*domain.AnalyticsSummary, error) {
	tracer := otel.Tracer("healthify-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.SummarizeWindow",
		trace.WithAttributes(
			attribute.String("patient.id", patientID.String()),
			attribute.String("window.from", from.Format(time.RFC3339)),
			attribute.String("window.to", to.Format(time.RFC3339)),
		),
	)
	defer span.End()

	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	buckets, err := s.bucketRepo.ListByDateRange(ctx, patientID, from, to)
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, domain.ErrNoHealthData
	}
	span.SetAttributes(attribute.Int("window.buckets", len(buckets)))

	summary := summarizeBuckets(buckets)
	summary.Window.From = from
	summary.Window.To = to
	return summary, nil
}

// summarizeBuckets aggregates a date-ordered bucket sequence. Days without
// samples for a metric are skipped, and a metric with no samples anywhere in
// the window omits its block instead of reporting zeros.
func summarizeBuckets(buckets []domain.DailyBucket) *domain.AnalyticsSummary {
	summary := &domain.AnalyticsSummary{}
	summary.HeartRate = summarizeScalar(buckets, domain.MetricHeartRate, 0)
	summary.BloodPressure = summarizeBloodPressure(buckets)
	summary.BloodOxygen = summarizeScalar(buckets, domain.MetricBloodOxygen, 0)
	summary.Sleep = summarizeSleep(buckets)
	summary.Hydration = summarizeScalar(buckets, domain.MetricHydration, 0)
	summary.Steps = summarizeSteps(buckets)
	return summary
}

// summarizeScalar computes the daily means plus the overall stats for a
// scalar metric. The overall block is computed over the flattened set of
// every sample in the window, not as a mean of the daily means.
func summarizeScalar(buckets []domain.DailyBucket, kind domain.MetricKind, decimals int) *domain.ScalarSummary {
	result := &domain.ScalarSummary{}
	var pool []float64

	for _, bucket := range buckets {
		samples := bucket.SamplesFor(kind)
		if len(samples) == 0 {
			continue
		}
		var sum float64
		for _, s := range samples {
			sum += s.Value
			pool = append(pool, s.Value)
		}
		result.DailyAverages = append(result.DailyAverages, domain.DailyPoint{
			Date:  bucket.BucketDate.Format(dateLayout),
			Value: roundTo(sum/float64(len(samples)), decimals),
		})
	}

	if len(pool) == 0 {
		return nil
	}
	result.Overall = overallStats(pool, decimals)
	return result
}

func summarizeBloodPressure(buckets []domain.DailyBucket) *domain.BloodPressureSummary {
	result := &domain.BloodPressureSummary{}
	var systolic, diastolic []float64

	for _, bucket := range buckets {
		samples := bucket.SamplesFor(domain.MetricBloodPressure)
		if len(samples) == 0 {
			continue
		}
		var sumSys, sumDia float64
		for _, s := range samples {
			sumSys += float64(s.Systolic)
			sumDia += float64(s.Diastolic)
			systolic = append(systolic, float64(s.Systolic))
			diastolic = append(diastolic, float64(s.Diastolic))
		}
		n := float64(len(samples))
		result.DailyAverages = append(result.DailyAverages, domain.BloodPressurePoint{
			Date:      bucket.BucketDate.Format(dateLayout),
			Systolic:  roundTo(sumSys/n, 0),
			Diastolic: roundTo(sumDia/n, 0),
		})
	}

	if len(systolic) == 0 {
		return nil
	}
	result.Overall.Systolic = overallStats(systolic, 0)
	result.Overall.Diastolic = overallStats(diastolic, 0)
	return result
}

// summarizeSleep treats sleep as at most one entry per day and keeps
// duration and quality as two independent overall blocks, averaged to one
// decimal.
func summarizeSleep(buckets []domain.DailyBucket) *domain.SleepSummary {
	result := &domain.SleepSummary{}
	var durations, qualities []float64

	for _, bucket := range buckets {
		samples := bucket.SamplesFor(domain.MetricSleep)
		if len(samples) == 0 {
			continue
		}
		entry := samples[0]
		result.DailyValues = append(result.DailyValues, domain.SleepPoint{
			Date:     bucket.BucketDate.Format(dateLayout),
			Duration: entry.Duration,
			Quality:  entry.Quality,
		})
		durations = append(durations, entry.Duration)
		qualities = append(qualities, float64(entry.Quality))
	}

	if len(durations) == 0 {
		return nil
	}
	result.Overall.Duration = overallStats(durations, 1)
	result.Overall.Quality = overallStats(qualities, 1)
	return result
}

func summarizeSteps(buckets []domain.DailyBucket) *domain.StepsSummary {
	result := &domain.StepsSummary{}
	var pool []float64

	for _, bucket := range buckets {
		samples := bucket.SamplesFor(domain.MetricSteps)
		if len(samples) == 0 {
			continue
		}
		entry := samples[0]
		result.DailyValues = append(result.DailyValues, domain.StepsPoint{
			Date:  bucket.BucketDate.Format(dateLayout),
			Count: entry.Value,
		})
		pool = append(pool, entry.Value)
	}

	if len(pool) == 0 {
		return nil
	}
	result.Overall = overallStats(pool, 0)
	return result
}

// overallStats computes min/max/avg over a non-empty pool. Min and max are
// reported raw; only the average is rounded.
func overallStats(values []float64, decimals int) domain.OverallStats {
	minVal := values[0]
	maxVal := values[0]
	sum := 0.0
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}
	return domain.OverallStats{
		Min: minVal,
		Max: maxVal,
		Avg: roundTo(sum/float64(len(values)), decimals),
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
