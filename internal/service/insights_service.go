package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/llm"
	"github.com/healthify/healthify-api/internal/repository"
)

// InsightsService generates AI health insights from analytics windows.
type InsightsService interface {
	Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	analyticsService AnalyticsService
	llmClient        llm.InsightsLLM
	patientRepo      repository.PatientRepository
}

func NewInsightsService(
	analyticsService AnalyticsService,
	llmClient llm.InsightsLLM,
	patientRepo repository.PatientRepository,
) InsightsService {
	return &insightsService{
		analyticsService: analyticsService,
		llmClient:        llmClient,
		patientRepo:      patientRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()

	trend, err := s.analyticsService.SummarizeWindow(ctx, patientID, now.AddDate(0, 0, -DefaultAnalyticsWindowDays), now)
	if err != nil {
		return nil, err
	}

	recent, err := s.analyticsService.SummarizeWindow(ctx, patientID, now.AddDate(0, 0, -RecentWindowDays), now)
	if err != nil && !errors.Is(err, domain.ErrNoHealthData) {
		return nil, err
	}
	if recent == nil {
		// No samples in the last week; insights run off the trend window
		// with an empty recent block.
		recent = &domain.AnalyticsSummary{}
		recent.Window.From = now.AddDate(0, 0, -RecentWindowDays)
		recent.Window.To = now
	}

	insightsCtx := &domain.InsightsContext{
		Trend:  *trend,
		Recent: *recent,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{Insights: *output}
	response.Metrics.Trend = *trend
	response.Metrics.Recent = *recent
	return response, nil
}
