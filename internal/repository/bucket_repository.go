package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BucketRepository is the metric sample store. Buckets are append-only: new
// readings for a day merge into that day's bucket, values are never mutated
// or deleted.
type BucketRepository interface {
	// Upsert returns the bucket for (patient, day), creating it atomically
	// when absent. Concurrent callers for the same day converge on one row.
	Upsert(ctx context.Context, patientID uuid.UUID, day time.Time) (*domain.DailyBucket, error)
	// AppendSamples durably appends samples to a bucket.
	AppendSamples(ctx context.Context, bucketID uuid.UUID, samples []domain.MetricSample) error
	// GetByID reloads a bucket with its samples in arrival order.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyBucket, error)
	// Latest returns the most recent bucket for a patient.
	Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error)
	// ListRecent returns up to n most recent buckets, newest first.
	ListRecent(ctx context.Context, patientID uuid.UUID, n int) ([]domain.DailyBucket, error)
	// ListByDateRange returns buckets with dates in [from, to], oldest
	// first, samples in arrival order.
	ListByDateRange(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]domain.DailyBucket, error)
}

type bucketRepository struct {
	db *gorm.DB
}

func NewBucketRepository(db *gorm.DB) BucketRepository {
	return &bucketRepository{db: db}
}

func (r *bucketRepository) Upsert(ctx context.Context, patientID uuid.UUID, day time.Time) (*domain.DailyBucket, error) {
	bucket := domain.DailyBucket{
		PatientID:  patientID,
		BucketDate: domain.BucketDay(day),
	}

	// ON CONFLICT DO NOTHING keeps the invariant of at most one bucket per
	// (patient, date) without application-level locking. The losing writer
	// falls through to the reload below and picks up the winning row.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}, {Name: "bucket_date"}},
			DoNothing: true,
		}).
		Create(&bucket).Error
	if err != nil {
		return nil, err
	}

	var out domain.DailyBucket
	err = r.db.WithContext(ctx).
		Preload("Samples", sampleOrder).
		Where("patient_id = ? AND bucket_date = ?", patientID, bucket.BucketDate).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *bucketRepository) AppendSamples(ctx context.Context, bucketID uuid.UUID, samples []domain.MetricSample) error {
	if len(samples) == 0 {
		return nil
	}
	for i := range samples {
		samples[i].BucketID = bucketID
	}
	return r.db.WithContext(ctx).Create(&samples).Error
}

func (r *bucketRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyBucket, error) {
	var bucket domain.DailyBucket
	err := r.db.WithContext(ctx).
		Preload("Samples", sampleOrder).
		First(&bucket, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &bucket, nil
}

func (r *bucketRepository) Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error) {
	var bucket domain.DailyBucket
	err := r.db.WithContext(ctx).
		Preload("Samples", sampleOrder).
		Where("patient_id = ?", patientID).
		Order("bucket_date DESC").
		First(&bucket).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &bucket, nil
}

func (r *bucketRepository) ListRecent(ctx context.Context, patientID uuid.UUID, n int) ([]domain.DailyBucket, error) {
	var buckets []domain.DailyBucket
	err := r.db.WithContext(ctx).
		Preload("Samples", sampleOrder).
		Where("patient_id = ?", patientID).
		Order("bucket_date DESC").
		Limit(n).
		Find(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *bucketRepository) ListByDateRange(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]domain.DailyBucket, error) {
	var buckets []domain.DailyBucket
	err := r.db.WithContext(ctx).
		Preload("Samples", sampleOrder).
		Where("patient_id = ? AND bucket_date >= ? AND bucket_date <= ?",
			patientID, domain.BucketDay(from), domain.BucketDay(to)).
		Order("bucket_date ASC").
		Find(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// sampleOrder keeps per-metric sequences in arrival order when preloading.
func sampleOrder(db *gorm.DB) *gorm.DB {
	return db.Order("metric_samples.recorded_at ASC, metric_samples.id ASC")
}
