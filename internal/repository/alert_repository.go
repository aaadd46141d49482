package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/pkg/pagination"
	"gorm.io/gorm"
)

type AlertRepository interface {
	// Create inserts one alert per call; repeated breaches insert repeated
	// rows, there is no deduplication against prior alerts.
	Create(ctx context.Context, alert *domain.Alert) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) ([]domain.Alert, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) ([]domain.Alert, error) {
	query := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC")

	if filter.UnreadOnly {
		query = query.Where("is_read = false")
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: everything strictly older than the cursor row.
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var alerts []domain.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "is_read")
}

func (r *alertRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, "is_resolved")
}

func (r *alertRepository) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Alert{}).
		Where("id = ?", id).
		Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
