package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/notify"
	"github.com/healthify/healthify-api/internal/repository"
)

const (
	// SlotIntervalMinutes is the fixed slot stride.
	SlotIntervalMinutes = 30

	// DefaultAppointmentMinutes is the booking duration when unspecified.
	DefaultAppointmentMinutes = 30

	meetingLinkBase = "https://meet.healthify.example"

	hhmmLayout = "15:04"
)

// ScheduleService computes open appointment slots and manages bookings.
type ScheduleService interface {
	// AvailableSlots returns the open 30-minute slots for a doctor on a
	// date. A weekday outside the doctor's schedule yields available=false,
	// distinct from a working day with every slot booked.
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*domain.AvailableSlotsResponse, error)
	// Book creates an appointment after checking the exact slot is free.
	Book(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error)
	// UpdateStatus moves a booking through its lifecycle; completed and
	// cancelled bookings are terminal.
	UpdateStatus(ctx context.Context, id uuid.UUID, req *domain.UpdateAppointmentStatusRequest) (*domain.Appointment, error)
	// Cancel soft-cancels a booking, freeing its slot.
	Cancel(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Appointment, error)
}

type scheduleService struct {
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	notifier        notify.Notifier
}

func NewScheduleService(
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	notifier notify.Notifier,
) ScheduleService {
	return &scheduleService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		notifier:        notifier,
	}
}

func (s *scheduleService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*domain.AvailableSlotsResponse, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	hours := doctor.WorkingHours()
	if !hours.IsSet() {
		return nil, domain.ErrWorkingHoursNotSet
	}

	booked, err := s.appointmentRepo.BookedTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	resp := computeAvailableSlots(hours, booked, date)
	return &resp, nil
}

// computeAvailableSlots is the slot engine proper: a pure function of the
// working hours, the committed slot times and the date.
func computeAvailableSlots(hours domain.WorkingHours, booked []string, date time.Time) domain.AvailableSlotsResponse {
	resp := domain.AvailableSlotsResponse{
		Date:  date.UTC().Format(dateLayout),
		Slots: []string{},
	}

	weekday := date.UTC().Weekday().String()
	if !hours.WorksOn(weekday) {
		resp.Message = fmt.Sprintf("Doctor is not available on %s", weekday)
		return resp
	}
	resp.Available = true

	committed := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		committed[t] = struct{}{}
	}

	for _, slot := range generateTimeSlots(hours.Start, hours.End, SlotIntervalMinutes) {
		if _, taken := committed[slot]; taken {
			continue
		}
		resp.Slots = append(resp.Slots, slot)
	}
	return resp
}

// generateTimeSlots yields every HH:MM boundary from start to end at the
// given stride; the interval is half-open, so the final slot strictly
// precedes end. Malformed bounds yield no slots.
func generateTimeSlots(start, end string, intervalMinutes int) []string {
	startTime, err := time.Parse(hhmmLayout, start)
	if err != nil {
		return nil
	}
	endTime, err := time.Parse(hhmmLayout, end)
	if err != nil {
		return nil
	}

	var slots []string
	for t := startTime; t.Before(endTime); t = t.Add(time.Duration(intervalMinutes) * time.Minute) {
		slots = append(slots, t.Format(hhmmLayout))
	}
	return slots
}

func (s *scheduleService) Book(ctx context.Context, req *domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	patient, err := s.patientRepo.GetByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	taken, err := s.appointmentRepo.ExistsAt(ctx, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSlotTaken
	}

	duration := req.DurationMin
	if duration <= 0 {
		duration = DefaultAppointmentMinutes
	}

	appointment := &domain.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        domain.BucketDay(req.Date),
		Time:        req.Time,
		DurationMin: duration,
		Type:        req.Type,
		Concern:     req.Concern,
		Status:      domain.AppointmentScheduled,
	}
	appointment.ID = uuid.New()
	appointment.MeetingLink = fmt.Sprintf("%s/%s", meetingLinkBase, appointment.ID)

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	// Confirmation emails are fire-and-forget; a failed send never rolls
	// back the booking.
	if s.notifier != nil {
		go func(appt domain.Appointment, patientEmail, doctorEmail string) {
			if err := s.notifier.AppointmentBooked(context.Background(), appt, patientEmail, doctorEmail); err != nil {
				log.Printf("appointment notification failed: %v", err)
			}
		}(*appointment, patient.Email, doctor.Email)
	}

	return appointment, nil
}

func (s *scheduleService) UpdateStatus(ctx context.Context, id uuid.UUID, req *domain.UpdateAppointmentStatusRequest) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appointment.Status == domain.AppointmentCompleted || appointment.Status == domain.AppointmentCancelled {
		return nil, domain.ErrConflict
	}

	appointment.Status = req.Status
	if req.Status == domain.AppointmentCompleted && req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *scheduleService) Cancel(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	appointment.Status = domain.AppointmentCancelled
	return s.appointmentRepo.Update(ctx, appointment)
}

func (s *scheduleService) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Appointment, error) {
	exists, err := s.doctorRepo.Exists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.appointmentRepo.ListByDoctor(ctx, doctorID)
}

func (s *scheduleService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Appointment, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.appointmentRepo.ListByPatient(ctx, patientID)
}
