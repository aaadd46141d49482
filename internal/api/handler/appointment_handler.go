package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/api/validation"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/pkg/problem"
)

const slotDateLayout = "2006-01-02"

type AppointmentHandler struct {
	service service.ScheduleService
}

func NewAppointmentHandler(service service.ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Slots handles GET /v1/doctors/{doctorId}/slots
// @Summary Get available slots
// @Description List the open 30-minute slots for a doctor on a date. A weekday outside the doctor's schedule returns available=false with a message.
// @Tags appointments
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Param date query string true "Date in YYYY-MM-DD" example(2026-09-07)
// @Success 200 {object} domain.AvailableSlotsResponse "Slot availability"
// @Failure 400 {object} problem.Problem "Invalid parameters or working hours not configured"
// @Failure 404 {object} problem.Problem "Doctor not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/slots [get]
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	date, err := time.Parse(slotDateLayout, r.URL.Query().Get("date"))
	if err != nil {
		problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Doctor not found").Write(w)
		case errors.Is(err, domain.ErrWorkingHoursNotSet):
			problem.BadRequest("Doctor has no working hours configured").Write(w)
		default:
			problem.InternalError("Failed to compute slots").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

// Book handles POST /v1/appointments
// @Summary Book appointment
// @Description Book a slot with a doctor. The exact slot must be free; cancelled bookings do not block it.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body domain.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} domain.Appointment "Appointment booked"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "Patient or doctor not found"
// @Failure 409 {object} problem.Problem "Slot already booked"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	appointment, err := h.service.Book(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Patient or doctor not found").Write(w)
		case errors.Is(err, domain.ErrSlotTaken):
			problem.Conflict("The requested slot is already booked").Write(w)
		default:
			problem.InternalError("Failed to book appointment").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(appointment)
}

// UpdateStatus handles PUT /v1/appointments/{appointmentId}/status
// @Summary Update appointment status
// @Description Move a booking through its lifecycle. Completed and cancelled bookings are terminal.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentId path string true "Appointment UUID" format(uuid)
// @Param request body domain.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} domain.Appointment "Updated appointment"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Appointment not found"
// @Failure 409 {object} problem.Problem "Appointment is in a terminal state"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /appointments/{appointmentId}/status [put]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentId"))
	if err != nil {
		problem.BadRequest("Invalid appointment ID format").Write(w)
		return
	}

	var req domain.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Appointment not found").Write(w)
		case errors.Is(err, domain.ErrConflict):
			problem.Conflict("Appointment is already completed or cancelled").Write(w)
		default:
			problem.InternalError("Failed to update appointment").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(appointment)
}

// Cancel handles DELETE /v1/appointments/{appointmentId}
// @Summary Cancel appointment
// @Description Soft-cancel a booking, freeing its slot. The record is kept for history.
// @Tags appointments
// @Param appointmentId path string true "Appointment UUID" format(uuid)
// @Success 204 "Appointment cancelled"
// @Failure 400 {object} problem.Problem "Invalid appointment ID"
// @Failure 404 {object} problem.Problem "Appointment not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /appointments/{appointmentId} [delete]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentId"))
	if err != nil {
		problem.BadRequest("Invalid appointment ID format").Write(w)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Appointment not found").Write(w)
			return
		}
		problem.InternalError("Failed to cancel appointment").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByDoctor handles GET /v1/doctors/{doctorId}/appointments
// @Summary List doctor appointments
// @Tags appointments
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Success 200 {array} domain.Appointment "Appointments"
// @Failure 400 {object} problem.Problem "Invalid doctor ID"
// @Failure 404 {object} problem.Problem "Doctor not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/appointments [get]
func (h *AppointmentHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	appointments, err := h.service.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch appointments").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(appointments)
}

// ListByPatient handles GET /v1/patients/{patientId}/appointments
// @Summary List patient appointments
// @Tags appointments
// @Produce json
// @Param patientId path string true "Patient UUID" format(uuid)
// @Success 200 {array} domain.Appointment "Appointments"
// @Failure 400 {object} problem.Problem "Invalid patient ID"
// @Failure 404 {object} problem.Problem "Patient not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patients/{patientId}/appointments [get]
func (h *AppointmentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	appointments, err := h.service.ListByPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Patient not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch appointments").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(appointments)
}
