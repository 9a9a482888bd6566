package models

import "time"

// GapDescriptor describes a recording gap: a timestamp discontinuity
// between two consecutive samples that exceeds the gap threshold.
type GapDescriptor struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMs      int64     `json:"duration_ms"`
	DurationMinutes int       `json:"duration_min"` // rounded to nearest minute
	DurationHours   float64   `json:"duration_h"`   // derived from the rounded minutes
	StartDistance   float64   `json:"start_distance_m"`
	EndDistance     float64   `json:"end_distance_m"`
	StartPoint      *GeoPoint `json:"start_point,omitempty"`
	EndPoint        *GeoPoint `json:"end_point,omitempty"`
}

// SlowRunDescriptor describes a maximal contiguous run of samples below
// the slow-speed threshold whose duration matched the selected buckets.
type SlowRunDescriptor struct {
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	SampleCount   int        `json:"sample_count"`
	StartDistance float64    `json:"start_distance_m"`
	EndDistance   float64    `json:"end_distance_m"`
	Trail         []GeoPoint `json:"trail"`
}

// Period is the unified output shape covering both slow runs and
// recording gaps, sorted chronologically for display.
//
// StartTime <= EndTime always holds, and SampleCount is zero exactly when
// IsGap is true. Periods are never mutated after construction.
type Period struct {
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	SampleCount   int            `json:"sample_count"`
	StartDistance float64        `json:"start_distance_m"`
	EndDistance   float64        `json:"end_distance_m"`
	GeoPoints     []GeoPoint     `json:"geo_points"`
	IsGap         bool           `json:"is_gap"`
	Gap           *GapDescriptor `json:"gap,omitempty"`
}

// Duration returns the period's span.
func (p Period) Duration() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}
