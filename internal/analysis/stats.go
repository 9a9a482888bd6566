package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ridelog/faff-backend-go/internal/models"
	"github.com/ridelog/faff-backend-go/internal/spatial"
)

// Summarize condenses a merged period list into the numbers the stats
// panel shows: counts, total faff time, mean/median period length, the
// faff share of elapsed time when the activity times are known, drift
// distance inside slow runs, a per-bucket breakdown, and the map bounds.
func Summarize(periods []models.Period, times models.ActivityTimes) models.FaffSummary {
	summary := models.FaffSummary{
		Buckets: bucketBreakdown(periods),
	}
	if len(periods) == 0 {
		return summary
	}

	durationsMin := make([]float64, 0, len(periods))
	var allPoints []models.GeoPoint
	for _, p := range periods {
		d := p.Duration()
		summary.TotalFaffMs += d.Milliseconds()
		durationsMin = append(durationsMin, d.Minutes())
		if p.IsGap {
			summary.GapCount++
		} else {
			summary.SlowRunCount++
			summary.DriftMeters += spatial.TrailLengthMeters(p.GeoPoints)
		}
		allPoints = append(allPoints, p.GeoPoints...)
	}
	summary.PeriodCount = len(periods)

	sort.Float64s(durationsMin)
	summary.MeanPeriodMin = stat.Mean(durationsMin, nil)
	summary.MedianPeriodMin = stat.Quantile(0.5, stat.Empirical, durationsMin, nil)

	if times.StartTime != nil && times.EndTime != nil {
		if elapsed := times.EndTime.Sub(*times.StartTime); elapsed > 0 {
			pct := 100 * float64(summary.TotalFaffMs) / float64(elapsed.Milliseconds())
			summary.FaffPercent = &pct
		}
	}

	summary.Bounds = spatial.BoundsOf(allPoints)
	return summary
}

// bucketBreakdown classifies each period by its own duration. A period
// can land in at most one bucket since the ranges do not overlap.
func bucketBreakdown(periods []models.Period) []models.BucketBreakdown {
	rows := make([]models.BucketBreakdown, len(models.AllBuckets))
	for i, b := range models.AllBuckets {
		rows[i] = models.BucketBreakdown{Bucket: b, Label: b.Label()}
	}
	for _, p := range periods {
		d := p.Duration()
		for i, b := range models.AllBuckets {
			if b.Matches(d.Minutes(), d.Hours()) {
				rows[i].Count++
				rows[i].TotalMs += d.Milliseconds()
				break
			}
		}
	}
	return rows
}
