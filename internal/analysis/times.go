package analysis

import (
	"time"

	"github.com/ridelog/faff-backend-go/internal/models"
)

// ExtractActivityTimes derives the activity's start/end/moving-time
// summary. The first session summary seeds every field; when any samples
// exist, the first and last sample timestamps then replace the
// summary-derived start and end unconditionally, including with nil when
// those boundary samples carry no timestamp. Absent inputs leave fields
// nil; this never fails.
func ExtractActivityTimes(summaries []models.SessionSummary, samples []models.Sample) models.ActivityTimes {
	var times models.ActivityTimes

	if len(summaries) > 0 {
		s := summaries[0]
		times.StartTime = s.StartTime
		times.MovingTimeSeconds = s.TotalTimerTime
		times.TotalDistance = s.TotalDistance
		if s.StartTime != nil && s.TotalElapsedTime != nil {
			end := s.StartTime.Add(time.Duration(*s.TotalElapsedTime * float64(time.Second)))
			times.EndTime = &end
		}
	}

	if len(samples) > 0 {
		times.StartTime = samples[0].Timestamp
		times.EndTime = samples[len(samples)-1].Timestamp
	}

	return times
}
