package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/api/validation"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/pkg/problem"
)

type DoctorHandler struct {
	service service.DoctorService
}

func NewDoctorHandler(service service.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// Create handles POST /v1/doctors
// @Summary Register doctor
// @Description Create a doctor profile, optionally with working hours.
// @Tags doctors
// @Accept json
// @Produce json
// @Param request body domain.CreateDoctorRequest true "Doctor profile"
// @Success 201 {object} domain.DoctorResponse "Doctor created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors [post]
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	doctor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create doctor").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doctor.ToResponse())
}

// GetByID handles GET /v1/doctors/{doctorId}
// @Summary Get doctor
// @Tags doctors
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Success 200 {object} domain.DoctorResponse "Doctor profile"
// @Failure 400 {object} problem.Problem "Invalid doctor ID"
// @Failure 404 {object} problem.Problem "Doctor not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId} [get]
func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	doctor, err := h.service.Get(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch doctor").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctor.ToResponse())
}

// SetWorkingHours handles PUT /v1/doctors/{doctorId}/working-hours
// @Summary Set working hours
// @Description Replace the doctor's availability window; slots are generated from it at a 30-minute stride.
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Param request body domain.WorkingHours true "Working hours"
// @Success 200 {object} domain.DoctorResponse "Updated doctor profile"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Doctor not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/working-hours [put]
func (h *DoctorHandler) SetWorkingHours(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	var req domain.WorkingHours
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	doctor, err := h.service.SetWorkingHours(r.Context(), doctorID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor not found").Write(w)
			return
		}
		problem.InternalError("Failed to update working hours").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctor.ToResponse())
}

// AssignPatient handles POST /v1/doctors/{doctorId}/patients
// @Summary Assign patient
// @Description Assign a patient to this doctor. Assignment arms threshold alerts for the patient.
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Param request body domain.AssignPatientRequest true "Patient to assign"
// @Success 204 "Patient assigned"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Doctor or patient not found"
// @Failure 409 {object} problem.Problem "Patient already assigned to this doctor"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/patients [post]
func (h *DoctorHandler) AssignPatient(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}

	var req domain.AssignPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.AssignPatient(r.Context(), doctorID, req.PatientID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Doctor or patient not found").Write(w)
		case errors.Is(err, domain.ErrAlreadyAssigned):
			problem.Conflict("Patient is already assigned to this doctor").Write(w)
		default:
			problem.InternalError("Failed to assign patient").Write(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnassignPatient handles DELETE /v1/doctors/{doctorId}/patients/{patientId}
// @Summary Unassign patient
// @Description Remove the assignment; subsequent vital ingestions for the patient stop producing alerts.
// @Tags doctors
// @Param doctorId path string true "Doctor UUID" format(uuid)
// @Param patientId path string true "Patient UUID" format(uuid)
// @Success 204 "Patient unassigned"
// @Failure 400 {object} problem.Problem "Invalid IDs"
// @Failure 404 {object} problem.Problem "Doctor or patient not found"
// @Failure 409 {object} problem.Problem "Patient is not assigned to this doctor"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctors/{doctorId}/patients/{patientId} [delete]
func (h *DoctorHandler) UnassignPatient(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorId"))
	if err != nil {
		problem.BadRequest("Invalid doctor ID format").Write(w)
		return
	}
	patientID, err := uuid.Parse(chi.URLParam(r, "patientId"))
	if err != nil {
		problem.BadRequest("Invalid patient ID format").Write(w)
		return
	}

	if err := h.service.UnassignPatient(r.Context(), doctorID, patientID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Doctor or patient not found").Write(w)
		case errors.Is(err, domain.ErrNotAssigned):
			problem.Conflict("Patient is not assigned to this doctor").Write(w)
		default:
			problem.InternalError("Failed to unassign patient").Write(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
