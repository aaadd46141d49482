package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/pkg/problem"
)

type AlertHandler struct {
	service service.AlertService
}

func NewAlertHandler(service service.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

// ListByDoctor handles GET /v1/doctors/{doctorId}/alerts
// @Summary List doctor alerts
// @Description List alerts for a doctor's patients, newest first, with cursor pagination.
// @Tags alerts
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Param unread query boolean false "Only unread alerts"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} domain.AlertListResponse "Alerts page"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "Doctor not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/alerts [get]
func (h *AlertHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	filter := domain.AlertFilter{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      parseIntParam(r, "limit", 0),
		Cursor:     r.URL.Query().Get("cursor"),
	}

	alerts, err := h.service.ListForDoctor(r.Context(), doctorID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch alerts").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alerts)
}

// ListByPatient handles GET /v1/patients/{patientId}/alerts
// @Summary List patient alerts
// @Tags alerts
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Success 200 {array} domain.Alert "Alerts, newest first"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/alerts [get]
func (h *AlertHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	alerts, err := h.service.ListForPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch alerts").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alerts)
}

// MarkRead handles PUT /v1/alerts/{alertId}/read
// @Summary Mark alert as read
// @Tags alerts
// @Param alertId path string true "Alert UUID" format(uuid)
// @Success 204 "Alert marked as read"
// @Failure 400 {object} problem.Problem "Invalid alert ID"
// @Failure 404 {object} problem.Problem "Alert not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /alerts/{alertId}/read [put]
func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	alertID, err := uuid.Parse(chi.URLParam(r, "alertId"))
	if err != nil {
		problem.BadRequest("Invalid alert ID format").Write(w)
		return
	}

	if err := h.service.MarkRead(r.Context(), alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alert not found").Write(w)
			return
		}
		problem.InternalError("Failed to update alert").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Resolve handles PUT /v1/alerts/{alertId}/resolve
// @Summary Resolve alert
// @Tags alerts
// @Param alertId path string true "Alert UUID" format(uuid)
// @Success 204 "Alert resolved"
// @Failure 400 {object} problem.Problem "Invalid alert ID"
// @Failure 404 {object} problem.Problem "Alert not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /alerts/{alertId}/resolve [put]
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	alertID, err := uuid.Parse(chi.URLParam(r, "alertId"))
	if err != nil {
		problem.BadRequest("Invalid alert ID format").Write(w)
		return
	}

	if err := h.service.Resolve(r.Context(), alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alert not found").Write(w)
			return
		}
		problem.InternalError("Failed to update alert").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
