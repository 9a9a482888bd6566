package analysis

import (
	"math"
	"time"

	"github.com/ridelog/faff-backend-go/internal/models"
	"github.com/ridelog/faff-backend-go/internal/spatial"
)

// DefaultGapThreshold is the smallest timestamp discontinuity reported as
// a recording gap unless the caller picks another threshold.
const DefaultGapThreshold = 5 * time.Minute

// FindGaps scans consecutive sample pairs and emits a descriptor for each
// pair whose timestamps are further apart than the threshold. A delta
// exactly equal to the threshold is not a gap. Pairs where either
// timestamp is missing are skipped. Output follows scan order, which is
// chronological for ordered input.
func FindGaps(samples []models.Sample, threshold time.Duration) []models.GapDescriptor {
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}

	var gaps []models.GapDescriptor
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev.Timestamp == nil || cur.Timestamp == nil {
			continue
		}
		diff := cur.Timestamp.Sub(*prev.Timestamp)
		if diff <= threshold {
			continue
		}

		minutes := int(math.Round(diff.Minutes()))
		gaps = append(gaps, models.GapDescriptor{
			StartTime:       *prev.Timestamp,
			EndTime:         *cur.Timestamp,
			DurationMs:      diff.Milliseconds(),
			DurationMinutes: minutes,
			DurationHours:   float64(minutes) / 60,
			StartDistance:   distanceOrZero(prev.Distance),
			EndDistance:     distanceOrZero(cur.Distance),
			StartPoint:      spatial.GeoPointFromSample(prev),
			EndPoint:        spatial.GeoPointFromSample(cur),
		})
	}
	return gaps
}

func distanceOrZero(d *float64) float64 {
	if d == nil {
		return 0
	}
	return *d
}
