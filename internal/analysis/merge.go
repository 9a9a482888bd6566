package analysis

import (
	"sort"

	"github.com/ridelog/faff-backend-go/internal/models"
)

// MergePeriods flattens slow runs and gaps into one chronological period
// list. Slow runs were already bucket-filtered when finalized; gaps are
// filtered here against their own rounded minutes and derived hours,
// using the same bucket selection. The combined list is stable-sorted by
// start time.
func MergePeriods(runs []models.SlowRunDescriptor, gaps []models.GapDescriptor, buckets []models.DurationBucket) []models.Period {
	periods := make([]models.Period, 0, len(runs)+len(gaps))

	for _, r := range runs {
		periods = append(periods, models.Period{
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			SampleCount:   r.SampleCount,
			StartDistance: r.StartDistance,
			EndDistance:   r.EndDistance,
			GeoPoints:     r.Trail,
			IsGap:         false,
		})
	}

	for _, g := range gaps {
		if !models.MatchesAnyBucket(buckets, float64(g.DurationMinutes), g.DurationHours) {
			continue
		}
		points := make([]models.GeoPoint, 0, 2)
		if g.StartPoint != nil {
			points = append(points, *g.StartPoint)
		}
		if g.EndPoint != nil {
			points = append(points, *g.EndPoint)
		}
		detail := g
		periods = append(periods, models.Period{
			StartTime:     g.StartTime,
			EndTime:       g.EndTime,
			SampleCount:   0,
			StartDistance: g.StartDistance,
			EndDistance:   g.EndDistance,
			GeoPoints:     points,
			IsGap:         true,
			Gap:           &detail,
		})
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartTime.Before(periods[j].StartTime)
	})
	return periods
}
