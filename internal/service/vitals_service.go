package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/notify"
	"github.com/healthify/healthify-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultHistoryDays is how many recent buckets the history endpoint returns
// when the caller does not specify a range.
const DefaultHistoryDays = 7

// VitalsService ingests readings into day buckets and derives threshold
// alerts from the updated bucket in the same call.
type VitalsService interface {
	// Record appends the request's readings to the patient's bucket for
	// today, evaluates alert thresholds on the result and persists any
	// alerts raised.
	Record(ctx context.Context, patientID uuid.UUID, req *domain.RecordVitalsRequest) (*domain.RecordVitalsResponse, error)
	// Latest returns the most recent bucket.
	Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error)
	// History returns the last n daily buckets, newest first.
	History(ctx context.Context, patientID uuid.UUID, days int) ([]domain.DailyBucket, error)
}

type vitalsService struct {
	bucketRepo  repository.BucketRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	alertRepo   repository.AlertRepository
	notifier    notify.Notifier
	now         func() time.Time
}

func NewVitalsService(
	bucketRepo repository.BucketRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	alertRepo repository.AlertRepository,
	notifier notify.Notifier,
) VitalsService {
	return &vitalsService{
		bucketRepo:  bucketRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		alertRepo:   alertRepo,
		notifier:    notifier,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *vitalsService) Record(ctx context.Context, patientID uuid.UUID, req *domain.RecordVitalsRequest) (*domain.RecordVitalsResponse, error) {
	tracer := otel.Tracer("healthify-api/vitals")
	ctx, span := tracer.Start(ctx, "VitalsService.Record",
		trace.WithAttributes(attribute.String("patient.id", patientID.String())),
	)
	defer span.End()

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	bucket, err := s.bucketRepo.Upsert(ctx, patientID, now)
	if err != nil {
		return nil, err
	}

	samples := req.Samples(now)
	if err := s.bucketRepo.AppendSamples(ctx, bucket.ID, samples); err != nil {
		return nil, err
	}

	// Reload so the engine sees the bucket including this call's samples.
	bucket, err = s.bucketRepo.GetByID(ctx, bucket.ID)
	if err != nil {
		return nil, err
	}

	alerts, err := s.raiseAlerts(ctx, patient, bucket)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("vitals.samples", len(samples)),
		attribute.Int("vitals.alerts", len(alerts)),
	)

	return &domain.RecordVitalsResponse{Bucket: *bucket, Alerts: alerts}, nil
}

// raiseAlerts runs the threshold engine and persists its output. A patient
// without an assigned doctor produces no alerts; that is policy, not an
// error.
func (s *vitalsService) raiseAlerts(ctx context.Context, patient *domain.Patient, bucket *domain.DailyBucket) ([]domain.Alert, error) {
	if patient.AssignedDoctorID == nil {
		return nil, nil
	}

	drafts := EvaluateThresholds(bucket)
	if len(drafts) == 0 {
		return nil, nil
	}

	alerts := make([]domain.Alert, 0, len(drafts))
	for _, alert := range drafts {
		alert.PatientID = patient.ID
		alert.DoctorID = *patient.AssignedDoctorID
		if err := s.alertRepo.Create(ctx, &alert); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	s.notifyDoctor(ctx, *patient.AssignedDoctorID, alerts)

	return alerts, nil
}

// notifyDoctor dispatches alert notifications fire-and-forget. Lookup or
// send failures are logged and never affect the ingestion transaction.
func (s *vitalsService) notifyDoctor(ctx context.Context, doctorID uuid.UUID, alerts []domain.Alert) {
	if s.notifier == nil {
		return
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		log.Printf("alert notification skipped, doctor lookup failed: %v", err)
		return
	}

	go func(recipient string, alerts []domain.Alert) {
		for _, alert := range alerts {
			if err := s.notifier.AlertRaised(context.Background(), alert, recipient); err != nil {
				log.Printf("alert notification failed: %v", err)
			}
		}
	}(doctor.Email, alerts)
}

func (s *vitalsService) Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.bucketRepo.Latest(ctx, patientID)
}

func (s *vitalsService) History(ctx context.Context, patientID uuid.UUID, days int) ([]domain.DailyBucket, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if days <= 0 {
		days = DefaultHistoryDays
	}

	buckets, err := s.bucketRepo.ListRecent(ctx, patientID, days)
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, domain.ErrNoHealthData
	}
	return buckets, nil
}
