// Package notify delivers outbound email for alerts and bookings. Delivery
// is fire-and-forget: callers log failures and never propagate them into the
// transaction that triggered the notification.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/healthify/healthify-api/internal/domain"
)

// Notifier is the outbound notification sink. Implementations must be safe
// for concurrent use.
type Notifier interface {
	// AlertRaised notifies the assigned doctor about a new alert.
	AlertRaised(ctx context.Context, alert domain.Alert, recipient string) error
	// AppointmentBooked sends booking confirmations to both parties.
	AppointmentBooked(ctx context.Context, appointment domain.Appointment, patientEmail, doctorEmail string) error
}

// SMTPMailer sends notifications over plain SMTP.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer builds a mailer from SMTP settings. Returns nil when the
// host is not configured, which disables outbound notification entirely.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	if host == "" {
		return nil
	}
	if port == "" {
		port = "587"
	}
	if from == "" {
		from = "noreply@healthify.example"
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPMailer{
		addr: host + ":" + port,
		auth: auth,
		from: from,
	}
}

func (m *SMTPMailer) AlertRaised(_ context.Context, alert domain.Alert, recipient string) error {
	subject := fmt.Sprintf("[%s] %s", strings.ToUpper(string(alert.Severity)), alert.Title)
	body := fmt.Sprintf(
		"%s\r\n\r\nMetric: %s\r\nObserved value: %s\r\nRaised at: %s\r\n",
		alert.Description, alert.Metric, alert.Value, alert.CreatedAt.Format("2006-01-02 15:04 MST"),
	)
	return m.send(recipient, subject, body)
}

func (m *SMTPMailer) AppointmentBooked(_ context.Context, appointment domain.Appointment, patientEmail, doctorEmail string) error {
	date := appointment.Date.Format("2006-01-02")

	patientBody := fmt.Sprintf(
		"Your appointment has been scheduled.\r\n\r\nDate: %s\r\nTime: %s\r\nDuration: %d minutes\r\nMeeting link: %s\r\n",
		date, appointment.Time, appointment.DurationMin, appointment.MeetingLink,
	)
	if err := m.send(patientEmail, "Your Appointment Confirmation", patientBody); err != nil {
		return err
	}

	doctorBody := fmt.Sprintf(
		"A new appointment has been booked with you.\r\n\r\nDate: %s\r\nTime: %s\r\nConcern: %s\r\nMeeting link: %s\r\n",
		date, appointment.Time, appointment.Concern, appointment.MeetingLink,
	)
	return m.send(doctorEmail, "New Appointment Scheduled", doctorBody)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: Healthify <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body,
	)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
