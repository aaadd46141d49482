package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of a booking. Cancelled bookings
// free their slot but are kept for history.
// @Description Appointment status: scheduled, completed or cancelled.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_patient" json:"patient_id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	Date        time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"date"`
	Time        string            `gorm:"type:varchar(5);not null" json:"time"`
	DurationMin int               `gorm:"type:smallint;not null;default:30" json:"duration_minutes"`
	Type        string            `gorm:"type:varchar(40)" json:"type,omitempty"`
	Concern     string            `gorm:"type:text" json:"concern,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(10);not null" json:"status"`
	MeetingLink string            `gorm:"type:varchar(255)" json:"meeting_link,omitempty"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CreateAppointmentRequest is the request body for booking an appointment.
// @Description Request payload for booking a 30-minute appointment slot.
type CreateAppointmentRequest struct {
	// Patient to book for
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	// Doctor to book with
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	// Appointment date, RFC3339 or YYYY-MM-DD; only the calendar day is used
	Date time.Time `json:"date" validate:"required" example:"2026-09-07T00:00:00Z"`
	// Slot start time, HH:MM
	Time string `json:"time" validate:"required,hhmm" example:"09:30"`
	// Duration in minutes, defaults to 30
	DurationMin int `json:"duration_minutes" validate:"omitempty,min=15,max=120" example:"30"`
	// Appointment type, e.g. consultation, follow-up
	Type string `json:"type" validate:"omitempty,max=40" example:"consultation"`
	// Patient's concern
	Concern string `json:"concern" validate:"omitempty,max=2000"`
}

// UpdateAppointmentStatusRequest changes a booking's lifecycle state.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	// Visit notes, applied when completing
	Notes string `json:"notes" validate:"omitempty,max=4000"`
}

// AvailableSlotsResponse lists the open slots for a doctor on a date.
// @Description Open 30-minute slots; available=false means the doctor does
// not work that weekday, as opposed to a working day with no capacity left.
type AvailableSlotsResponse struct {
	// False when the doctor does not work on the requested weekday
	Available bool `json:"available"`
	// Explanation when available is false
	Message string `json:"message,omitempty" example:"Doctor is not available on Sunday"`
	// Requested date, YYYY-MM-DD
	Date string `json:"date" example:"2026-09-07"`
	// Open slot start times in chronological order
	Slots []string `json:"slots" example:"09:00,09:30"`
}
