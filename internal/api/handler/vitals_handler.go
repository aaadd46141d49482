package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/api/validation"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/pkg/problem"
)

type VitalsHandler struct {
	vitalsService    service.VitalsService
	analyticsService service.AnalyticsService
}

func NewVitalsHandler(vitalsService service.VitalsService, analyticsService service.AnalyticsService) *VitalsHandler {
	return &VitalsHandler{
		vitalsService:    vitalsService,
		analyticsService: analyticsService,
	}
}

// Record handles POST /v1/patients/{patientId}/vitals
// @Summary Record vital readings
// @Description Append readings to today's bucket and evaluate alert thresholds on the result. Composite readings missing a sub-field are silently skipped.
// @Tags vitals
// @Accept json
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Param request body domain.RecordVitalsRequest true "Vital readings"
// @Success 201 {object} domain.RecordVitalsResponse "Updated bucket and raised alerts"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/vitals [post]
func (h *VitalsHandler) Record(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	var req domain.RecordVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.vitalsService.Record(r.Context(), patientID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		problem.InternalError("Failed to record vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// History handles GET /v1/patients/{patientId}/vitals
// @Summary Get vitals history
// @Description Fetch the most recent daily buckets, newest first.
// @Tags vitals
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Param days query integer false "Number of recent days" default(7) minimum(1) maximum(90)
// @Success 200 {array} domain.DailyBucket "Daily buckets"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "Patient or health data not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/vitals [get]
func (h *VitalsHandler) History(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	days := parseIntParam(r, "days", service.DefaultHistoryDays)
	if days < 1 || days > 90 {
		problem.BadRequest("days must be between 1 and 90").Write(w)
		return
	}

	buckets, err := h.vitalsService.History(r.Context(), patientID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoHealthData) {
			problem.NotFound("Health data not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buckets)
}

// Latest handles GET /v1/patients/{patientId}/vitals/latest
// @Summary Get latest bucket
// @Description Fetch the most recent daily bucket for the patient.
// @Tags vitals
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Success 200 {object} domain.DailyBucket "Latest daily bucket"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient or health data not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/vitals/latest [get]
func (h *VitalsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	bucket, err := h.vitalsService.Latest(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Health data not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bucket)
}

// Analytics handles GET /v1/patients/{patientId}/analytics
// @Summary Get window analytics
// @Description Compute daily and overall statistics per metric over a rolling window. Metrics without samples in the window are absent from the response.
// @Tags vitals
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Param window_days query integer false "Window length in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.AnalyticsSummary "Analytics summary"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "Patient or health data not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/analytics [get]
func (h *VitalsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultAnalyticsWindowDays)
	if windowDays < 1 || windowDays > 365 {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	summary, err := h.analyticsService.Summarize(r.Context(), patientID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoHealthData) {
			problem.NotFound("No health data found for analysis").Write(w)
			return
		}
		problem.InternalError("Failed to compute analytics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// parseIntParam parses a query parameter as an int with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
