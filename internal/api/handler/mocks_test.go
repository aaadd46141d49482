package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
)

// MockPatientService is a mock implementation of PatientService
type MockPatientService struct {
	createFunc func(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
}

func (m *MockPatientService) Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Patient{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
	}, nil
}

func (m *MockPatientService) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockVitalsService is a mock implementation of VitalsService
type MockVitalsService struct {
	recordFunc  func(ctx context.Context, patientID uuid.UUID, req *domain.RecordVitalsRequest) (*domain.RecordVitalsResponse, error)
	latestFunc  func(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error)
	historyFunc func(ctx context.Context, patientID uuid.UUID, days int) ([]domain.DailyBucket, error)
}

func (m *MockVitalsService) Record(ctx context.Context, patientID uuid.UUID, req *domain.RecordVitalsRequest) (*domain.RecordVitalsResponse, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, patientID, req)
	}
	return &domain.RecordVitalsResponse{
		Bucket: domain.DailyBucket{
			ID:         uuid.New(),
			PatientID:  patientID,
			BucketDate: domain.BucketDay(time.Now()),
			Samples:    req.Samples(time.Now().UTC()),
		},
		Alerts: []domain.Alert{},
	}, nil
}

func (m *MockVitalsService) Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, patientID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockVitalsService) History(ctx context.Context, patientID uuid.UUID, days int) ([]domain.DailyBucket, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, patientID, days)
	}
	return nil, domain.ErrNoHealthData
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	summarizeFunc func(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.AnalyticsSummary, error)
}

func (m *MockAnalyticsService) Summarize(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.AnalyticsSummary, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, patientID, windowDays)
	}
	return &domain.AnalyticsSummary{}, nil
}

func (m *MockAnalyticsService) SummarizeWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) (*domain.AnalyticsSummary, error) {
	return &domain.AnalyticsSummary{}, nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	availableSlotsFunc func(ctx context.Context, doctorID uuid.UUID, date time.Time) (*domain.AvailableSlotsResponse, error)
	bookFunc           func(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error)
	updateStatusFunc   func(ctx context.Context, id uuid.UUID, req *domain.UpdateAppointmentStatusRequest) (*domain.Appointment, error)
	cancelFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockScheduleService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*domain.AvailableSlotsResponse, error) {
	if m.availableSlotsFunc != nil {
		return m.availableSlotsFunc(ctx, doctorID, date)
	}
	return &domain.AvailableSlotsResponse{Available: true, Slots: []string{"09:00"}}, nil
}

func (m *MockScheduleService) Book(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, req)
	}
	return &domain.Appointment{
		ID:        uuid.New(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      domain.BucketDay(req.Date),
		Time:      req.Time,
		Status:    domain.AppointmentScheduled,
	}, nil
}

func (m *MockScheduleService) UpdateStatus(ctx context.Context, id uuid.UUID, req *domain.UpdateAppointmentStatusRequest) (*domain.Appointment, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, req)
	}
	return &domain.Appointment{ID: id, Status: req.Status}, nil
}

func (m *MockScheduleService) Cancel(ctx context.Context, id uuid.UUID) error {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, id)
	}
	return nil
}

func (m *MockScheduleService) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Appointment, error) {
	return []domain.Appointment{}, nil
}

func (m *MockScheduleService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Appointment, error) {
	return []domain.Appointment{}, nil
}

// MockDoctorService is a mock implementation of DoctorService
type MockDoctorService struct {
	createFunc          func(ctx context.Context, req *domain.CreateDoctorRequest) (*domain.Doctor, error)
	getFunc             func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	setWorkingHoursFunc func(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) (*domain.Doctor, error)
	assignFunc          func(ctx context.Context, doctorID, patientID uuid.UUID) error
	unassignFunc        func(ctx context.Context, doctorID, patientID uuid.UUID) error
}

func (m *MockDoctorService) Create(ctx context.Context, req *domain.CreateDoctorRequest) (*domain.Doctor, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Doctor{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		ExperienceYrs:  req.ExperienceYrs,
	}, nil
}

func (m *MockDoctorService) Get(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockDoctorService) SetWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) (*domain.Doctor, error) {
	if m.setWorkingHoursFunc != nil {
		return m.setWorkingHoursFunc(ctx, id, hours)
	}
	return &domain.Doctor{
		ID:        id,
		WorkStart: hours.Start,
		WorkEnd:   hours.End,
		WorkDays:  hours.DaysAvailable,
	}, nil
}

func (m *MockDoctorService) AssignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error {
	if m.assignFunc != nil {
		return m.assignFunc(ctx, doctorID, patientID)
	}
	return nil
}

func (m *MockDoctorService) UnassignPatient(ctx context.Context, doctorID, patientID uuid.UUID) error {
	if m.unassignFunc != nil {
		return m.unassignFunc(ctx, doctorID, patientID)
	}
	return nil
}

// MockAlertService is a mock implementation of AlertService
type MockAlertService struct {
	listForDoctorFunc  func(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) (*domain.AlertListResponse, error)
	listForPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error)
	markReadFunc       func(ctx context.Context, id uuid.UUID) error
	resolveFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAlertService) ListForDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) (*domain.AlertListResponse, error) {
	if m.listForDoctorFunc != nil {
		return m.listForDoctorFunc(ctx, doctorID, filter)
	}
	return &domain.AlertListResponse{Data: []domain.Alert{}}, nil
}

func (m *MockAlertService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error) {
	if m.listForPatientFunc != nil {
		return m.listForPatientFunc(ctx, patientID)
	}
	return []domain.Alert{}, nil
}

func (m *MockAlertService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *MockAlertService) Resolve(ctx context.Context, id uuid.UUID) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, id)
	}
	return nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, patientID)
	}
	return &domain.InsightsResponse{}, nil
}
