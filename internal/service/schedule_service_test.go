package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/healthify/healthify-api/internal/domain"
)

var weekdayHours = domain.WorkingHours{
	Start:         "09:00",
	End:           "17:00",
	DaysAvailable: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
}

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func seedScheduledDoctor(t *testing.T, repo *MockDoctorRepository, hours domain.WorkingHours) *domain.Doctor {
	t.Helper()
	doctor := &domain.Doctor{
		Name:      "Dr. Adam Nowak",
		Email:     "a.nowak@clinic.example",
		WorkStart: hours.Start,
		WorkEnd:   hours.End,
		WorkDays:  hours.DaysAvailable,
	}
	if err := repo.Create(context.Background(), doctor); err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{"one hour window", "09:00", "10:00", []string{"09:00", "09:30"}},
		{"end is exclusive", "09:00", "09:30", []string{"09:00"}},
		{"empty window", "09:00", "09:00", nil},
		{"inverted window", "17:00", "09:00", nil},
		{"malformed start", "9am", "17:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateTimeSlots(tt.start, tt.end, SlotIntervalMinutes)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("slot %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestComputeAvailableSlots_RemovesBooked(t *testing.T) {
	hours := domain.WorkingHours{Start: "09:00", End: "10:00", DaysAvailable: []string{"Monday"}}

	resp := computeAvailableSlots(hours, []string{"09:30"}, monday)

	if !resp.Available {
		t.Fatal("expected available=true on a working day")
	}
	if len(resp.Slots) != 1 || resp.Slots[0] != "09:00" {
		t.Errorf("expected [09:00], got %v", resp.Slots)
	}
	if resp.Date != "2026-09-07" {
		t.Errorf("expected date 2026-09-07, got %s", resp.Date)
	}
}

func TestComputeAvailableSlots_FullyBookedStaysAvailable(t *testing.T) {
	// A working day with zero open slots is still available=true; that state
	// is distinct from a weekday off.
	hours := domain.WorkingHours{Start: "09:00", End: "10:00", DaysAvailable: []string{"Monday"}}

	resp := computeAvailableSlots(hours, []string{"09:00", "09:30"}, monday)

	if !resp.Available {
		t.Error("expected available=true even when every slot is booked")
	}
	if len(resp.Slots) != 0 {
		t.Errorf("expected no open slots, got %v", resp.Slots)
	}
}

func TestComputeAvailableSlots_WeekdayOff(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)

	resp := computeAvailableSlots(weekdayHours, nil, sunday)

	if resp.Available {
		t.Error("expected available=false on a weekday off")
	}
	if !strings.Contains(resp.Message, "Sunday") {
		t.Errorf("expected message to name the weekday, got %q", resp.Message)
	}
	if len(resp.Slots) != 0 {
		t.Errorf("expected no slots, got %v", resp.Slots)
	}
}

func TestAvailableSlots_WorkingHoursNotSet(t *testing.T) {
	doctorRepo := NewMockDoctorRepository()
	doctor := seedDoctor(t, doctorRepo)

	svc := NewScheduleService(NewMockAppointmentRepository(), doctorRepo, NewMockPatientRepository(), nil)

	_, err := svc.AvailableSlots(context.Background(), doctor.ID, monday)
	if !errors.Is(err, domain.ErrWorkingHoursNotSet) {
		t.Errorf("expected ErrWorkingHoursNotSet, got %v", err)
	}
}

func TestBook_Succeeds(t *testing.T) {
	appointmentRepo := NewMockAppointmentRepository()
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()

	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(appointmentRepo, doctorRepo, patientRepo, nil)

	appointment, err := svc.Book(context.Background(), &domain.CreateAppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      monday,
		Time:      "09:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appointment.Status != domain.AppointmentScheduled {
		t.Errorf("expected status scheduled, got %s", appointment.Status)
	}
	if appointment.DurationMin != DefaultAppointmentMinutes {
		t.Errorf("expected default duration %d, got %d", DefaultAppointmentMinutes, appointment.DurationMin)
	}
	if appointment.MeetingLink == "" || !strings.Contains(appointment.MeetingLink, appointment.ID.String()) {
		t.Errorf("expected meeting link to embed the appointment ID, got %q", appointment.MeetingLink)
	}
}

func TestBook_SlotConflict(t *testing.T) {
	appointmentRepo := NewMockAppointmentRepository()
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()

	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(appointmentRepo, doctorRepo, patientRepo, nil)

	req := &domain.CreateAppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      monday,
		Time:      "09:30",
	}
	if _, err := svc.Book(context.Background(), req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := svc.Book(context.Background(), req)
	if !errors.Is(err, domain.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBook_CancelledBookingFreesSlot(t *testing.T) {
	appointmentRepo := NewMockAppointmentRepository()
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()

	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(appointmentRepo, doctorRepo, patientRepo, nil)

	req := &domain.CreateAppointmentRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      monday,
		Time:      "09:30",
	}
	first, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if err := svc.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := svc.Book(context.Background(), req); err != nil {
		t.Errorf("expected rebooking a cancelled slot to succeed, got %v", err)
	}
}

func TestBook_UnknownPatientOrDoctor(t *testing.T) {
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()
	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(NewMockAppointmentRepository(), doctorRepo, patientRepo, nil)

	_, err := svc.Book(context.Background(), &domain.CreateAppointmentRequest{
		PatientID: uuid.New(), DoctorID: doctor.ID, Date: monday, Time: "09:30",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown patient, got %v", err)
	}

	_, err = svc.Book(context.Background(), &domain.CreateAppointmentRequest{
		PatientID: patient.ID, DoctorID: uuid.New(), Date: monday, Time: "09:30",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown doctor, got %v", err)
	}
}

func TestUpdateStatus_TerminalStatesConflict(t *testing.T) {
	appointmentRepo := NewMockAppointmentRepository()
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()

	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(appointmentRepo, doctorRepo, patientRepo, nil)

	appointment, err := svc.Book(context.Background(), &domain.CreateAppointmentRequest{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: monday, Time: "09:30",
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), appointment.ID, &domain.UpdateAppointmentStatusRequest{
		Status: domain.AppointmentCompleted,
		Notes:  "Routine checkup, all clear.",
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if updated.Notes != "Routine checkup, all clear." {
		t.Errorf("expected notes to be applied on completion, got %q", updated.Notes)
	}

	_, err = svc.UpdateStatus(context.Background(), appointment.ID, &domain.UpdateAppointmentStatusRequest{
		Status: domain.AppointmentCancelled,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict when updating a completed booking, got %v", err)
	}
}

func TestBook_NotificationFiresAndFailureIsSwallowed(t *testing.T) {
	appointmentRepo := NewMockAppointmentRepository()
	doctorRepo := NewMockDoctorRepository()
	patientRepo := NewMockPatientRepository()
	notifier := NewMockNotifier()
	notifier.err = errors.New("smtp connection refused")

	doctor := seedScheduledDoctor(t, doctorRepo, weekdayHours)
	patient := seedPatient(t, patientRepo, nil)

	svc := NewScheduleService(appointmentRepo, doctorRepo, patientRepo, notifier)

	_, err := svc.Book(context.Background(), &domain.CreateAppointmentRequest{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: monday, Time: "09:30",
	})
	if err != nil {
		t.Fatalf("booking must not fail on notification errors, got %v", err)
	}

	select {
	case <-notifier.done:
	case <-time.After(time.Second):
		t.Fatal("expected a booking notification attempt")
	}
}
