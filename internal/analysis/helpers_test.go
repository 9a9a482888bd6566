package analysis

import (
	"time"

	"github.com/ridelog/faff-backend-go/internal/models"
)

var baseTime = time.Date(2026, 4, 12, 10, 0, 0, 0, time.UTC)

func tsAt(offset time.Duration) *time.Time {
	t := baseTime.Add(offset)
	return &t
}

func f64(v float64) *float64 { return &v }

func i32(v int32) *int32 { return &v }

// sampleAt builds a timestamped sample with a plain speed channel.
func sampleAt(offset time.Duration, speed float64) models.Sample {
	return models.Sample{
		Timestamp: tsAt(offset),
		Speed:     f64(speed),
	}
}
