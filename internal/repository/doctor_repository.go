package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) error
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	var doctor domain.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *doctorRepository) UpdateWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) error {
	doctor, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	doctor.WorkStart = hours.Start
	doctor.WorkEnd = hours.End
	doctor.WorkDays = hours.DaysAvailable
	return r.db.WithContext(ctx).Save(doctor).Error
}
