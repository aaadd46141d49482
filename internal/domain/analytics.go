package domain

import "time"

// OverallStats holds min/max/avg computed across every individual sample in
// a window, never across daily aggregates.
// @Description Overall statistics for a metric across the whole window.
type OverallStats struct {
	Min float64 `json:"min" example:"62"`
	Max float64 `json:"max" example:"104"`
	Avg float64 `json:"avg" example:"78"`
}

// DailyPoint is one day's aggregate for a scalar metric.
// @Description Daily aggregate value for a metric.
type DailyPoint struct {
	// Calendar day, YYYY-MM-DD
	Date string `json:"date" example:"2026-08-30"`
	// Mean of that day's samples, rounded to integer
	Value float64 `json:"value" example:"74"`
}

// ScalarSummary aggregates a scalar metric (heart rate, blood oxygen,
// hydration) over a window.
type ScalarSummary struct {
	DailyAverages []DailyPoint `json:"daily_averages"`
	Overall       OverallStats `json:"overall"`
}

// BloodPressurePoint is one day's mean systolic/diastolic pair.
type BloodPressurePoint struct {
	Date      string  `json:"date" example:"2026-08-30"`
	Systolic  float64 `json:"systolic" example:"121"`
	Diastolic float64 `json:"diastolic" example:"79"`
}

// BloodPressureSummary treats systolic and diastolic independently.
type BloodPressureSummary struct {
	DailyAverages []BloodPressurePoint `json:"daily_averages"`
	Overall       struct {
		Systolic  OverallStats `json:"systolic"`
		Diastolic OverallStats `json:"diastolic"`
	} `json:"overall"`
}

// SleepPoint is one day's sleep entry (the source records at most one).
type SleepPoint struct {
	Date     string  `json:"date" example:"2026-08-30"`
	Duration float64 `json:"duration" example:"7.5"`
	Quality  int     `json:"quality" example:"8"`
}

// SleepSummary aggregates sleep duration and quality as two independent
// overall blocks, averages rounded to one decimal.
type SleepSummary struct {
	DailyValues []SleepPoint `json:"daily_values"`
	Overall     struct {
		Duration OverallStats `json:"duration"`
		Quality  OverallStats `json:"quality"`
	} `json:"overall"`
}

// StepsPoint is one day's step count (at most one entry per day).
type StepsPoint struct {
	Date  string  `json:"date" example:"2026-08-30"`
	Count float64 `json:"count" example:"8500"`
}

// StepsSummary aggregates the one-per-day step counts.
type StepsSummary struct {
	DailyValues []StepsPoint `json:"daily_values"`
	Overall     OverallStats `json:"overall"`
}

// AnalyticsSummary is the rolling-window analytics result, recomputed on
// every request. A metric with zero samples in the window omits its block.
// @Description Window analytics per metric; metrics without samples in the
// window are absent.
type AnalyticsSummary struct {
	// Analysis window
	Window struct {
		From time.Time `json:"from" example:"2026-08-02T00:00:00Z"`
		To   time.Time `json:"to" example:"2026-09-01T12:00:00Z"`
	} `json:"window"`
	HeartRate     *ScalarSummary        `json:"heart_rate,omitempty"`
	BloodPressure *BloodPressureSummary `json:"blood_pressure,omitempty"`
	BloodOxygen   *ScalarSummary        `json:"blood_oxygen,omitempty"`
	Sleep         *SleepSummary         `json:"sleep,omitempty"`
	Hydration     *ScalarSummary        `json:"hydration,omitempty"`
	Steps         *StepsSummary         `json:"steps,omitempty"`
}

// HealthInsights is the structured output of the AI insights endpoint.
// @Description AI-generated health insights.
type HealthInsights struct {
	// Short narrative summary of the patient's recent health
	Summary string `json:"summary"`
	// Actionable lifestyle recommendations
	Recommendations []string `json:"recommendations"`
	// Identified risk factors
	RiskFactors []string `json:"risk_factors"`
	// Observed trends across the analysis windows
	Trends []string `json:"trends"`
}

// InsightsContext is the context object sent to the LLM.
type InsightsContext struct {
	Trend  AnalyticsSummary `json:"trend"`
	Recent AnalyticsSummary `json:"recent"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Health insights with the analytics they were derived from.
type InsightsResponse struct {
	Insights HealthInsights `json:"insights"`
	Metrics  struct {
		Trend  AnalyticsSummary `json:"trend"`
		Recent AnalyticsSummary `json:"recent"`
	} `json:"metrics"`
	// Trace ID for correlating with traces (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
