package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/repository"
)

type DoctorService interface {
	Create(ctx context.Context, req *domain.CreateDoctorRequest) (*domain.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	SetWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) (*domain.Doctor, error)
	// AssignPatient points the patient's assigned-doctor reference at this
	// doctor, which arms the threshold alert engine for that patient.
	AssignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error
	// UnassignPatient clears the reference; subsequent ingestions for the
	// patient stop producing alerts.
	UnassignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error
}

type doctorService struct {
	repo        repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewDoctorService(repo repository.DoctorRepository, patientRepo repository.PatientRepository) DoctorService {
	return &doctorService{repo: repo, patientRepo: patientRepo}
}

func (s *doctorService) Create(ctx context.Context, req *domain.CreateDoctorRequest) (*domain.Doctor, error) {
	doctor := &domain.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		ExperienceYrs:  req.ExperienceYrs,
	}
	if req.WorkingHours != nil {
		doctor.WorkStart = req.WorkingHours.Start
		doctor.WorkEnd = req.WorkingHours.End
		doctor.WorkDays = req.WorkingHours.DaysAvailable
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) Get(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *doctorService) SetWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) (*domain.Doctor, error) {
	if err := s.repo.UpdateWorkingHours(ctx, id, hours); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *doctorService) AssignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, doctorID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient.AssignedDoctorID != nil && *patient.AssignedDoctorID == doctorID {
		return domain.ErrAlreadyAssigned
	}

	return s.patientRepo.SetAssignedDoctor(ctx, patientID, &doctorID)
}

func (s *doctorService) UnassignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, doctorID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient.AssignedDoctorID == nil || *patient.AssignedDoctorID != doctorID {
		return domain.ErrNotAssigned
	}

	return s.patientRepo.SetAssignedDoctor(ctx, patientID, nil)
}
