package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
)

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	patients map[uuid.UUID]*domain.Patient
	err      error
}

func NewMockPatientRepository() *MockPatientRepository {
	return &MockPatientRepository{patients: make(map[uuid.UUID]*domain.Patient)}
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if m.err != nil {
		return m.err
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	m.patients[patient.ID] = patient
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	patient, ok := m.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return patient, nil
}

func (m *MockPatientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.patients[id]
	return ok, nil
}

func (m *MockPatientRepository) SetAssignedDoctor(ctx context.Context, patientID uuid.UUID, doctorID *uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	patient, ok := m.patients[patientID]
	if !ok {
		return domain.ErrNotFound
	}
	patient.AssignedDoctorID = doctorID
	return nil
}

// MockDoctorRepository is a mock implementation of DoctorRepository
type MockDoctorRepository struct {
	doctors map[uuid.UUID]*domain.Doctor
	err     error
}

func NewMockDoctorRepository() *MockDoctorRepository {
	return &MockDoctorRepository{doctors: make(map[uuid.UUID]*domain.Doctor)}
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	if m.err != nil {
		return m.err
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	doctor.CreatedAt = time.Now()
	m.doctors[doctor.ID] = doctor
	return nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doctor, nil
}

func (m *MockDoctorRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.doctors[id]
	return ok, nil
}

func (m *MockDoctorRepository) UpdateWorkingHours(ctx context.Context, id uuid.UUID, hours domain.WorkingHours) error {
	if m.err != nil {
		return m.err
	}
	doctor, ok := m.doctors[id]
	if !ok {
		return domain.ErrNotFound
	}
	doctor.WorkStart = hours.Start
	doctor.WorkEnd = hours.End
	doctor.WorkDays = hours.DaysAvailable
	return nil
}

// MockBucketRepository is a mock implementation of BucketRepository
type MockBucketRepository struct {
	buckets map[uuid.UUID]*domain.DailyBucket
	err     error
}

func NewMockBucketRepository() *MockBucketRepository {
	return &MockBucketRepository{buckets: make(map[uuid.UUID]*domain.DailyBucket)}
}

func (m *MockBucketRepository) Upsert(ctx context.Context, patientID uuid.UUID, day time.Time) (*domain.DailyBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	date := domain.BucketDay(day)
	for _, b := range m.buckets {
		if b.PatientID == patientID && b.BucketDate.Equal(date) {
			return b, nil
		}
	}
	bucket := &domain.DailyBucket{
		ID:         uuid.New(),
		PatientID:  patientID,
		BucketDate: date,
		CreatedAt:  time.Now(),
	}
	m.buckets[bucket.ID] = bucket
	return bucket, nil
}

func (m *MockBucketRepository) AppendSamples(ctx context.Context, bucketID uuid.UUID, samples []domain.MetricSample) error {
	if m.err != nil {
		return m.err
	}
	bucket, ok := m.buckets[bucketID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range samples {
		samples[i].ID = uuid.New()
		samples[i].BucketID = bucketID
	}
	bucket.Samples = append(bucket.Samples, samples...)
	return nil
}

func (m *MockBucketRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	bucket, ok := m.buckets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return bucket, nil
}

func (m *MockBucketRepository) Latest(ctx context.Context, patientID uuid.UUID) (*domain.DailyBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.DailyBucket
	for _, b := range m.buckets {
		if b.PatientID != patientID {
			continue
		}
		if latest == nil || b.BucketDate.After(latest.BucketDate) {
			latest = b
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockBucketRepository) ListRecent(ctx context.Context, patientID uuid.UUID, n int) ([]domain.DailyBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	buckets := m.sorted(patientID)
	// newest first
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets, nil
}

func (m *MockBucketRepository) ListByDateRange(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]domain.DailyBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	fromDay, toDay := domain.BucketDay(from), domain.BucketDay(to)
	var out []domain.DailyBucket
	for _, b := range m.sorted(patientID) {
		if b.BucketDate.Before(fromDay) || b.BucketDate.After(toDay) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *MockBucketRepository) sorted(patientID uuid.UUID) []domain.DailyBucket {
	var out []domain.DailyBucket
	for _, b := range m.buckets {
		if b.PatientID == patientID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BucketDate.Before(out[j].BucketDate)
	})
	return out
}

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	alerts []domain.Alert
	err    error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{}
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	if m.err != nil {
		return m.err
	}
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *MockAlertRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID, filter domain.AlertFilter) ([]domain.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Alert
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := m.alerts[i]
		if a.DoctorID != doctorID {
			continue
		}
		if filter.UnreadOnly && a.IsRead {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *MockAlertRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Alert
	for i := len(m.alerts) - 1; i >= 0; i-- {
		if m.alerts[i].PatientID == patientID {
			out = append(out, m.alerts[i])
		}
	}
	return out, nil
}

func (m *MockAlertRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.setFlag(id, func(a *domain.Alert) { a.IsRead = true })
}

func (m *MockAlertRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	return m.setFlag(id, func(a *domain.Alert) { a.IsResolved = true })
}

func (m *MockAlertRepository) setFlag(id uuid.UUID, apply func(*domain.Alert)) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.alerts {
		if m.alerts[i].ID == id {
			apply(&m.alerts[i])
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	appointments map[uuid.UUID]*domain.Appointment
	err          error
}

func NewMockAppointmentRepository() *MockAppointmentRepository {
	return &MockAppointmentRepository{appointments: make(map[uuid.UUID]*domain.Appointment)}
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if m.err != nil {
		return m.err
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now()
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return appointment, nil
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	if m.err != nil {
		return m.err
	}
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *MockAppointmentRepository) ExistsAt(ctx context.Context, doctorID uuid.UUID, date time.Time, slot string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	day := domain.BucketDay(date)
	for _, a := range m.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(day) && a.Time == slot && a.Status != domain.AppointmentCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAppointmentRepository) BookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	day := domain.BucketDay(date)
	var out []string
	for _, a := range m.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(day) && a.Status != domain.AppointmentCancelled {
			out = append(out, a.Time)
		}
	}
	return out, nil
}

func (m *MockAppointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// MockNotifier records notifications and can simulate delivery failures.
type MockNotifier struct {
	err          error
	alertCount   int
	bookingCount int
	done         chan struct{}
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{done: make(chan struct{}, 16)}
}

func (m *MockNotifier) AlertRaised(ctx context.Context, alert domain.Alert, recipient string) error {
	m.alertCount++
	m.done <- struct{}{}
	return m.err
}

func (m *MockNotifier) AppointmentBooked(ctx context.Context, appointment domain.Appointment, patientEmail, doctorEmail string) error {
	m.bookingCount++
	m.done <- struct{}{}
	return m.err
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	insights *domain.HealthInsights
	err      error
	lastCtx  *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.HealthInsights, error) {
	m.lastCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.insights, nil
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
