package service

import (
	"fmt"

	"github.com/healthify/healthify-api/internal/domain"
)

// thresholdRule classifies the latest sample of one metric. Rules are
// registered in a fixed evaluation order and each may raise its own alert.
type thresholdRule struct {
	metric   domain.MetricKind
	title    string
	classify func(s domain.MetricSample) (domain.AlertSeverity, bool)
	describe func(s domain.MetricSample) string
}

// thresholdRules is evaluated in order: heart rate, blood pressure, blood
// oxygen, temperature. Bands are the clinical ranges of the alerting policy;
// a critical predicate wins over the warning band it sits inside.
var thresholdRules = []thresholdRule{
	{
		metric: domain.MetricHeartRate,
		title:  "Abnormal Heart Rate",
		classify: func(s domain.MetricSample) (domain.AlertSeverity, bool) {
			v := s.Value
			if v <= 100 && v >= 60 {
				return "", false
			}
			if v > 120 || v < 50 {
				return domain.SeverityCritical, true
			}
			return domain.SeverityWarning, true
		},
		describe: func(s domain.MetricSample) string {
			return fmt.Sprintf("Patient's heart rate is %g bpm, which is outside the normal range.", s.Value)
		},
	},
	{
		metric: domain.MetricBloodPressure,
		title:  "Abnormal Blood Pressure",
		classify: func(s domain.MetricSample) (domain.AlertSeverity, bool) {
			sys, dia := s.Systolic, s.Diastolic
			if sys <= 140 && sys >= 90 && dia <= 90 && dia >= 60 {
				return "", false
			}
			if sys > 180 || sys < 80 || dia > 120 || dia < 50 {
				return domain.SeverityCritical, true
			}
			return domain.SeverityWarning, true
		},
		describe: func(s domain.MetricSample) string {
			return fmt.Sprintf("Patient's blood pressure is %d/%d, which is outside the normal range.", s.Systolic, s.Diastolic)
		},
	},
	{
		metric: domain.MetricBloodOxygen,
		title:  "Low Blood Oxygen",
		classify: func(s domain.MetricSample) (domain.AlertSeverity, bool) {
			if s.Value >= 95 {
				return "", false
			}
			if s.Value < 90 {
				return domain.SeverityCritical, true
			}
			return domain.SeverityWarning, true
		},
		describe: func(s domain.MetricSample) string {
			return fmt.Sprintf("Patient's blood oxygen is %g%%, which is below the normal range.", s.Value)
		},
	},
	{
		metric: domain.MetricTemperature,
		title:  "Abnormal Body Temperature",
		classify: func(s domain.MetricSample) (domain.AlertSeverity, bool) {
			v := s.Value
			if v <= 37.8 && v >= 36 {
				return "", false
			}
			if v > 39 || v < 35 {
				return domain.SeverityCritical, true
			}
			return domain.SeverityWarning, true
		},
		describe: func(s domain.MetricSample) string {
			return fmt.Sprintf("Patient's body temperature is %g°C, which is outside the normal range.", s.Value)
		},
	},
}

// EvaluateThresholds derives alerts from a bucket's most recent sample per
// monitored metric. It is a pure function of the bucket contents: evaluating
// an unchanged bucket twice yields structurally identical alerts, and the
// caller persists each result as a new record. Metrics absent from the
// bucket are skipped. PatientID and DoctorID are left for the caller.
func EvaluateThresholds(bucket *domain.DailyBucket) []domain.Alert {
	var alerts []domain.Alert
	for _, rule := range thresholdRules {
		latest := bucket.Latest(rule.metric)
		if latest == nil {
			continue
		}
		severity, breached := rule.classify(*latest)
		if !breached {
			continue
		}
		alerts = append(alerts, domain.Alert{
			Metric:      rule.metric,
			Severity:    severity,
			Title:       rule.title,
			Description: rule.describe(*latest),
			Value:       latest.Observed(),
		})
	}
	return alerts
}
