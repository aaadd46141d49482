package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SetAssignedDoctor(ctx context.Context, patientID uuid.UUID, doctorID *uuid.UUID) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	var patient domain.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Patient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) SetAssignedDoctor(ctx context.Context, patientID uuid.UUID, doctorID *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Patient{}).
		Where("id = ?", patientID).
		Update("assigned_doctor_id", doctorID).Error
}
