package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/llm"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Generate handles GET /v1/patients/{patientId}/insights
// @Summary Generate health insights
// @Description Generate AI insights from the patient's 30-day trend and 7-day recent analytics windows.
// @Tags insights
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Success 200 {object} domain.InsightsResponse "Generated insights"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient or health data not found"
// @Failure 502 {object} problem.Problem "Upstream AI request failed"
// @Failure 503 {object} problem.Problem "Insights service not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/insights [get]
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	insights, err := h.service.Generate(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Patient not found").Write(w)
		case errors.Is(err, domain.ErrNoHealthData):
			problem.NotFound("No health data found for analysis").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("AI insights are not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("AI insights request failed").Write(w)
		default:
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	if span := trace.SpanFromContext(r.Context()); span.SpanContext().HasTraceID() {
		insights.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insights)
}
