package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 35

// Run seeds the database with sample doctors, patients and vitals. Safe to
// call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Patient{}, &domain.Doctor{},
		&domain.DailyBucket{}, &domain.MetricSample{},
		&domain.Alert{}, &domain.Appointment{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	doctors := []domain.Doctor{
		{
			ID:             uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:           "Dr. Adam Nowak",
			Email:          "a.nowak@clinic.example",
			Specialization: "Cardiology",
			ExperienceYrs:  12,
			WorkStart:      "09:00",
			WorkEnd:        "17:00",
			WorkDays:       []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		},
		{
			ID:             uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:           "Dr. Maria Silva",
			Email:          "m.silva@clinic.example",
			Specialization: "General Practice",
			ExperienceYrs:  7,
			WorkStart:      "08:00",
			WorkEnd:        "14:00",
			WorkDays:       []string{"Monday", "Wednesday", "Friday", "Saturday"},
		},
	}

	for _, doctor := range doctors {
		if err := db.Where("id = ?", doctor.ID).FirstOrCreate(&doctor).Error; err != nil {
			return fmt.Errorf("failed to create doctor %s: %w", doctor.ID, err)
		}
	}

	cardiologist := doctors[0].ID
	patients := []domain.Patient{
		{
			ID:               uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
			Name:             "Jane Kowalski",
			Email:            "jane@example.com",
			Age:              42,
			HeightCm:         172,
			WeightKg:         68,
			BloodType:        "A+",
			AssignedDoctorID: &cardiologist,
		},
		{
			ID:        uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
			Name:      "Tomasz Lis",
			Email:     "tomasz@example.com",
			Age:       58,
			HeightCm:  180,
			WeightKg:  92,
			BloodType: "O-",
			// No assigned doctor; ingestions for this patient raise no alerts.
		},
	}

	for _, patient := range patients {
		if err := db.Where("id = ?", patient.ID).FirstOrCreate(&patient).Error; err != nil {
			return fmt.Errorf("failed to create patient %s: %w", patient.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, patient := range patients {
		if err := seedVitalsForPatient(db, patient, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedVitalsForPatient(db *gorm.DB, patient domain.Patient, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		day := domain.BucketDay(now.AddDate(0, 0, -i))

		bucket := domain.DailyBucket{PatientID: patient.ID, BucketDate: day}
		if err := db.Where("patient_id = ? AND bucket_date = ?", patient.ID, day).
			FirstOrCreate(&bucket).Error; err != nil {
			return fmt.Errorf("failed to create bucket for %s: %w", patient.ID, err)
		}
		if len(bucket.Samples) > 0 {
			continue
		}

		var count int64
		if err := db.Model(&domain.MetricSample{}).Where("bucket_id = ?", bucket.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		morning := day.Add(8 * time.Hour)
		evening := day.Add(20 * time.Hour)

		samples := []domain.MetricSample{
			{BucketID: bucket.ID, Metric: domain.MetricHeartRate, Value: float64(62 + rng.Intn(30)), RecordedAt: morning},
			{BucketID: bucket.ID, Metric: domain.MetricHeartRate, Value: float64(65 + rng.Intn(35)), RecordedAt: evening},
			{BucketID: bucket.ID, Metric: domain.MetricBloodPressure, Systolic: 110 + rng.Intn(30), Diastolic: 70 + rng.Intn(18), RecordedAt: morning},
			{BucketID: bucket.ID, Metric: domain.MetricBloodOxygen, Value: float64(95 + rng.Intn(5)), RecordedAt: morning},
			{BucketID: bucket.ID, Metric: domain.MetricSteps, Value: float64(3000 + rng.Intn(9000)), RecordedAt: evening},
		}
		if rng.Float32() < 0.8 {
			samples = append(samples, domain.MetricSample{
				BucketID:   bucket.ID,
				Metric:     domain.MetricSleep,
				Duration:   6 + rng.Float64()*3,
				Quality:    5 + rng.Intn(6),
				RecordedAt: morning,
			})
		}
		if rng.Float32() < 0.6 {
			samples = append(samples, domain.MetricSample{
				BucketID:   bucket.ID,
				Metric:     domain.MetricHydration,
				Value:      float64(50 + rng.Intn(45)),
				RecordedAt: evening,
			})
		}

		if err := db.Create(&samples).Error; err != nil {
			return fmt.Errorf("failed to create samples for %s: %w", patient.ID, err)
		}
	}
	return nil
}
