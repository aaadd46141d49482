package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MetricKind identifies a tracked vital sign or activity metric.
// @Description Kind of health metric recorded in a daily bucket.
type MetricKind string

const (
	MetricHeartRate     MetricKind = "heart-rate"
	MetricBloodPressure MetricKind = "blood-pressure"
	MetricBloodOxygen   MetricKind = "blood-oxygen"
	MetricTemperature   MetricKind = "temperature"
	MetricSleep         MetricKind = "sleep"
	MetricHydration     MetricKind = "hydration"
	MetricSteps         MetricKind = "steps"
)

// MetricSample is a single immutable observation inside a daily bucket.
// Scalar metrics carry Value; blood pressure carries Systolic/Diastolic;
// sleep carries Duration/Quality.
type MetricSample struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BucketID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_metric_samples_bucket" json:"-"`
	Metric     MetricKind `gorm:"type:varchar(20);not null" json:"metric"`
	Value      float64    `gorm:"not null;default:0" json:"value,omitempty"`
	Systolic   int        `gorm:"not null;default:0" json:"systolic,omitempty"`
	Diastolic  int        `gorm:"not null;default:0" json:"diastolic,omitempty"`
	Duration   float64    `gorm:"not null;default:0" json:"duration,omitempty"`
	Quality    int        `gorm:"not null;default:0" json:"quality,omitempty"`
	RecordedAt time.Time  `gorm:"not null" json:"recorded_at"`
}

func (MetricSample) TableName() string {
	return "metric_samples"
}

// DailyBucket holds every sample recorded for one patient on one calendar
// day. At most one bucket exists per (patient, date); enforcement happens in
// the repository with an atomic upsert.
type DailyBucket struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_daily_buckets_patient_date" json:"patient_id"`
	BucketDate time.Time      `gorm:"type:date;not null;uniqueIndex:idx_daily_buckets_patient_date" json:"date"`
	Samples    []MetricSample `gorm:"foreignKey:BucketID;constraint:OnDelete:CASCADE" json:"samples"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyBucket) TableName() string {
	return "daily_buckets"
}

// SamplesFor returns the bucket's samples of one metric in arrival order.
func (b *DailyBucket) SamplesFor(kind MetricKind) []MetricSample {
	var out []MetricSample
	for _, s := range b.Samples {
		if s.Metric == kind {
			out = append(out, s)
		}
	}
	return out
}

// Latest returns the most recently appended sample of one metric, or nil if
// none was recorded in this bucket.
func (b *DailyBucket) Latest(kind MetricKind) *MetricSample {
	var latest *MetricSample
	for i := range b.Samples {
		if b.Samples[i].Metric == kind {
			latest = &b.Samples[i]
		}
	}
	return latest
}

// BucketDay truncates a timestamp to its calendar day in UTC, the bucket key
// granularity.
func BucketDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BloodPressureReading is the composite blood pressure input. Both fields
// are required for the reading to be recorded; partial readings are ignored.
type BloodPressureReading struct {
	Systolic  *int `json:"systolic" validate:"omitempty,gt=0"`
	Diastolic *int `json:"diastolic" validate:"omitempty,gt=0"`
}

// SleepReading is the composite sleep input. Duration is in hours, quality
// on a 1-10 scale. Partial readings are ignored.
type SleepReading struct {
	Duration *float64 `json:"duration" validate:"omitempty,gt=0"`
	Quality  *int     `json:"quality" validate:"omitempty,min=1,max=10"`
}

// RecordVitalsRequest is the request body for recording vitals. Every field
// is optional; readings present in the payload are appended to today's
// bucket.
// @Description Request payload for recording one or more vital readings.
type RecordVitalsRequest struct {
	// Heart rate in bpm
	HeartRate *float64 `json:"heart_rate,omitempty" validate:"omitempty,gt=0" example:"72"`
	// Blood pressure reading (both systolic and diastolic required)
	BloodPressure *BloodPressureReading `json:"blood_pressure,omitempty"`
	// Blood oxygen saturation percentage
	BloodOxygen *float64 `json:"blood_oxygen,omitempty" validate:"omitempty,gt=0,lte=100" example:"98"`
	// Body temperature in Celsius
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gt=20,lt=45" example:"36.6"`
	// Sleep reading (both duration and quality required)
	Sleep *SleepReading `json:"sleep,omitempty"`
	// Hydration percentage
	Hydration *float64 `json:"hydration,omitempty" validate:"omitempty,gt=0,lte=100" example:"65"`
	// Step count for the day
	Steps *int `json:"steps,omitempty" validate:"omitempty,gt=0" example:"8500"`
}

// Samples converts the request into metric samples stamped with now.
// Composite readings missing a required sub-field produce no sample, which
// mirrors the permissive ingestion behavior of the historical system.
func (r *RecordVitalsRequest) Samples(now time.Time) []MetricSample {
	var samples []MetricSample

	if r.HeartRate != nil {
		samples = append(samples, MetricSample{Metric: MetricHeartRate, Value: *r.HeartRate, RecordedAt: now})
	}
	if bp := r.BloodPressure; bp != nil && bp.Systolic != nil && bp.Diastolic != nil {
		samples = append(samples, MetricSample{
			Metric:     MetricBloodPressure,
			Systolic:   *bp.Systolic,
			Diastolic:  *bp.Diastolic,
			RecordedAt: now,
		})
	}
	if r.BloodOxygen != nil {
		samples = append(samples, MetricSample{Metric: MetricBloodOxygen, Value: *r.BloodOxygen, RecordedAt: now})
	}
	if r.Temperature != nil {
		samples = append(samples, MetricSample{Metric: MetricTemperature, Value: *r.Temperature, RecordedAt: now})
	}
	if sl := r.Sleep; sl != nil && sl.Duration != nil && sl.Quality != nil {
		samples = append(samples, MetricSample{
			Metric:     MetricSleep,
			Duration:   *sl.Duration,
			Quality:    *sl.Quality,
			RecordedAt: now,
		})
	}
	if r.Hydration != nil {
		samples = append(samples, MetricSample{Metric: MetricHydration, Value: *r.Hydration, RecordedAt: now})
	}
	if r.Steps != nil {
		samples = append(samples, MetricSample{Metric: MetricSteps, Value: float64(*r.Steps), RecordedAt: now})
	}

	return samples
}

// RecordVitalsResponse is returned after recording vitals.
// @Description Updated daily bucket plus any alerts raised by the readings.
type RecordVitalsResponse struct {
	// Updated bucket for today
	Bucket DailyBucket `json:"bucket"`
	// Alerts raised by this ingestion (empty when all values are normal)
	Alerts []Alert `json:"alerts"`
}

// Observed renders the sample's value the way alert and UI surfaces show it.
func (s *MetricSample) Observed() string {
	switch s.Metric {
	case MetricHeartRate:
		return fmt.Sprintf("%g bpm", s.Value)
	case MetricBloodPressure:
		return fmt.Sprintf("%d/%d", s.Systolic, s.Diastolic)
	case MetricBloodOxygen:
		return fmt.Sprintf("%g%%", s.Value)
	case MetricTemperature:
		return fmt.Sprintf("%g°C", s.Value)
	case MetricHydration:
		return fmt.Sprintf("%g%%", s.Value)
	case MetricSleep:
		return fmt.Sprintf("%gh, quality %d/10", s.Duration, s.Quality)
	case MetricSteps:
		return fmt.Sprintf("%.0f steps", s.Value)
	default:
		return fmt.Sprintf("%g", s.Value)
	}
}
