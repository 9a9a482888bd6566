package models

import "time"

// Sample is one decoded record message: a timestamped GPS/speed/distance
// reading. Any field may be missing from the source file; missing fields
// stay nil and are only defaulted where a consumer documents it.
//
// Samples are expected in recording order with non-decreasing timestamps.
// The analysis engine does not enforce this.
type Sample struct {
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	Speed         *float64   `json:"speed,omitempty"`          // m/s
	EnhancedSpeed *float64   `json:"enhanced_speed,omitempty"` // m/s, preferred over Speed when set
	Distance      *float64   `json:"distance,omitempty"`       // meters from activity start
	PositionLat   *int32     `json:"position_lat,omitempty"`   // semicircles
	PositionLong  *int32     `json:"position_long,omitempty"`  // semicircles
}

// SessionSummary carries the session-level totals of an activity file.
type SessionSummary struct {
	StartTime        *time.Time `json:"start_time,omitempty"`
	TotalElapsedTime *float64   `json:"total_elapsed_time_s,omitempty"` // seconds, includes pauses
	TotalTimerTime   *float64   `json:"total_timer_time_s,omitempty"`   // seconds, timer running
	TotalDistance    *float64   `json:"total_distance_m,omitempty"`     // meters
}

// ActivityTimes is the one-shot start/end/moving-time summary derived for
// an activity. Fields that could not be derived are nil.
type ActivityTimes struct {
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	MovingTimeSeconds *float64   `json:"moving_time_s,omitempty"`
	TotalDistance     *float64   `json:"total_distance_m,omitempty"`
}

// GeoPoint is a decimal-degree coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
