package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity classifies how far a reading strayed from its normal range.
// @Description Severity of a clinical alert: info, warning or critical.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a derived record created when a vital reading crosses a
// threshold. Alerts are never produced for patients without an assigned
// doctor, and repeated breaches produce repeated alerts.
type Alert struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_alerts_patient" json:"patient_id"`
	DoctorID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_alerts_doctor_created" json:"doctor_id"`
	Metric      MetricKind    `gorm:"type:varchar(20);not null" json:"metric"`
	Severity    AlertSeverity `gorm:"type:varchar(10);not null" json:"severity"`
	Title       string        `gorm:"type:varchar(120);not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Value       string        `gorm:"type:varchar(60)" json:"value"`
	IsRead      bool          `gorm:"not null;default:false" json:"is_read"`
	IsResolved  bool          `gorm:"not null;default:false" json:"is_resolved"`
	CreatedAt   time.Time     `gorm:"autoCreateTime;index:idx_alerts_doctor_created,sort:desc" json:"created_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

// AlertListResponse is the response body for listing alerts.
// @Description Paginated list of alerts, newest first.
type AlertListResponse struct {
	// Alert records
	Data []Alert `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// AlertFilter contains filter parameters for listing alerts.
type AlertFilter struct {
	UnreadOnly bool
	Limit      int
	Cursor     string
}
