package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(120);not null" json:"name"`
	Email            string     `gorm:"type:varchar(255);not null" json:"email"`
	Age              int        `gorm:"type:smallint;not null" json:"age"`
	HeightCm         float64    `gorm:"not null;default:0" json:"height_cm"`
	WeightKg         float64    `gorm:"not null;default:0" json:"weight_kg"`
	BloodType        string     `gorm:"type:varchar(3)" json:"blood_type,omitempty"`
	AssignedDoctorID *uuid.UUID `gorm:"type:uuid;index:idx_patients_doctor" json:"assigned_doctor_id,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// BMI computes body mass index from the stored height and weight, rounded
// to one decimal. Returns 0 when either measurement is missing.
func (p *Patient) BMI() float64 {
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0
	}
	m := p.HeightCm / 100
	return math.Round(p.WeightKg/(m*m)*10) / 10
}

// CreatePatientRequest is the request body for registering a patient.
// @Description Request payload for creating a patient profile.
type CreatePatientRequest struct {
	// Full name
	Name string `json:"name" validate:"required,max=120" example:"Jane Kowalski"`
	// Contact email, used for appointment notifications
	Email string `json:"email" validate:"required,email" example:"jane@example.com"`
	// Age in years
	Age int `json:"age" validate:"required,min=0,max=150" example:"42"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"omitempty,gt=0" example:"172"`
	// Weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"omitempty,gt=0" example:"68"`
	// Blood type
	BloodType string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-" example:"A+"`
}

// PatientResponse is the response body for patient endpoints.
// @Description Patient profile with derived BMI.
type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Age              int        `json:"age"`
	HeightCm         float64    `json:"height_cm"`
	WeightKg         float64    `json:"weight_kg"`
	BloodType        string     `json:"blood_type,omitempty"`
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	// Derived body mass index, 0 when height or weight is unknown
	BMI       float64   `json:"bmi,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Patient) ToResponse() PatientResponse {
	return PatientResponse{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		Age:              p.Age,
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		BloodType:        p.BloodType,
		AssignedDoctorID: p.AssignedDoctorID,
		BMI:              p.BMI(),
		CreatedAt:        p.CreatedAt,
	}
}
