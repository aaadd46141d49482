package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/repository"
	"github.com/healthify/healthify-api/pkg/pagination"
)

type AlertService interface {
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) (*domain.AlertListResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertService struct {
	repo        repository.AlertRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewAlertService(repo repository.AlertRepository, doctorRepo repository.DoctorRepository, patientRepo repository.PatientRepository) AlertService {
	return &alertService{repo: repo, doctorRepo: doctorRepo, patientRepo: patientRepo}
}

func (s *alertService) ListForDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) (*domain.AlertListResponse, error) {
	exists, err := s.doctorRepo.Exists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	alerts, err := s.repo.ListByDoctor(ctx, doctorID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(alerts) > limit
	if hasMore {
		alerts = alerts[:limit]
	}

	response := &domain.AlertListResponse{
		Data:       alerts,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	if hasMore && len(alerts) > 0 {
		last := alerts[len(alerts)-1]
		cursor := &pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}
	return response, nil
}

func (s *alertService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *alertService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *alertService) Resolve(ctx context.Context, id uuid.UUID) error {
	return s.repo.Resolve(ctx, id)
}
