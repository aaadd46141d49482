package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/repository"
)

type PatientService interface {
	Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error) {
	patient := &domain.Patient{
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		HeightCm:  req.HeightCm,
		WeightKg:  req.WeightKg,
		BloodType: req.BloodType,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *patientService) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}
