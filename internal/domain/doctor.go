package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHours describes a doctor's daily availability window. Slots are
// generated at a fixed 30-minute stride inside [Start, End).
// @Description Doctor's availability configuration.
type WorkingHours struct {
	// Daily start time, HH:MM
	Start string `json:"start" validate:"required,hhmm" example:"09:00"`
	// Daily end time, HH:MM, exclusive
	End string `json:"end" validate:"required,hhmm" example:"17:00"`
	// Weekday names the doctor is available
	DaysAvailable []string `json:"days_available" validate:"required,min=1,dive,weekday" example:"Monday,Tuesday"`
}

// IsSet reports whether the configuration carries a usable window.
func (w WorkingHours) IsSet() bool {
	return w.Start != "" && w.End != ""
}

// WorksOn reports whether the weekday name is part of the schedule.
func (w WorkingHours) WorksOn(weekday string) bool {
	for _, d := range w.DaysAvailable {
		if d == weekday {
			return true
		}
	}
	return false
}

type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(120);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	Specialization string    `gorm:"type:varchar(120);not null" json:"specialization"`
	ExperienceYrs  int       `gorm:"type:smallint;not null;default:0" json:"experience_years"`
	WorkStart      string    `gorm:"type:varchar(5)" json:"-"`
	WorkEnd        string    `gorm:"type:varchar(5)" json:"-"`
	WorkDays       []string  `gorm:"serializer:json;type:text" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// WorkingHours assembles the stored columns into the scheduling input.
func (d *Doctor) WorkingHours() WorkingHours {
	return WorkingHours{Start: d.WorkStart, End: d.WorkEnd, DaysAvailable: d.WorkDays}
}

// CreateDoctorRequest is the request body for registering a doctor.
// @Description Request payload for creating a doctor profile.
type CreateDoctorRequest struct {
	// Full name
	Name string `json:"name" validate:"required,max=120" example:"Dr. Adam Nowak"`
	// Contact email, used for alert and appointment notifications
	Email string `json:"email" validate:"required,email" example:"a.nowak@clinic.example"`
	// Medical specialization
	Specialization string `json:"specialization" validate:"required,max=120" example:"Cardiology"`
	// Years of experience
	ExperienceYrs int `json:"experience_years" validate:"omitempty,min=0,max=80" example:"12"`
	// Optional working hours; can also be set later
	WorkingHours *WorkingHours `json:"working_hours,omitempty"`
}

// DoctorResponse is the response body for doctor endpoints.
// @Description Doctor profile including working hours when configured.
type DoctorResponse struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Specialization string        `json:"specialization"`
	ExperienceYrs  int           `json:"experience_years"`
	WorkingHours   *WorkingHours `json:"working_hours,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (d *Doctor) ToResponse() DoctorResponse {
	resp := DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		Specialization: d.Specialization,
		ExperienceYrs:  d.ExperienceYrs,
		CreatedAt:      d.CreatedAt,
	}
	if wh := d.WorkingHours(); wh.IsSet() {
		resp.WorkingHours = &wh
	}
	return resp
}

// AssignPatientRequest is the request body for assigning a patient to a
// doctor.
type AssignPatientRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
}
