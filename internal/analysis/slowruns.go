package analysis

import (
	"time"

	"github.com/ridelog/faff-backend-go/internal/models"
	"github.com/ridelog/faff-backend-go/internal/spatial"
)

// SlowSpeedThreshold is the effective speed (m/s) below which a sample
// counts as faffing. 0.75 m/s is walking-the-bike pace.
const SlowSpeedThreshold = 0.75

// SplitPolicy controls when an accumulating slow run is closed.
type SplitPolicy int

const (
	// SplitSimple closes a run only when a faster sample arrives.
	SplitSimple SplitPolicy = iota
	// SplitOnGaps additionally closes a run when the time delta between
	// consecutive accumulated samples exceeds the gap threshold, so a run
	// cannot span a device-off period. This is the default.
	SplitOnGaps
)

// ParseSplitPolicy maps the API/config spelling to a policy.
func ParseSplitPolicy(s string) (SplitPolicy, bool) {
	switch s {
	case "simple":
		return SplitSimple, true
	case "gap-aware", "":
		return SplitOnGaps, true
	}
	return SplitOnGaps, false
}

func (p SplitPolicy) String() string {
	if p == SplitSimple {
		return "simple"
	}
	return "gap-aware"
}

// FindSlowRuns scans samples for contiguous runs below the slow-speed
// threshold and keeps the runs whose duration matches at least one of the
// selected buckets. An empty bucket selection skips the scan entirely and
// returns nil. The trailing run is flushed when the scan ends.
func FindSlowRuns(samples []models.Sample, buckets []models.DurationBucket, threshold time.Duration, policy SplitPolicy) []models.SlowRunDescriptor {
	if len(buckets) == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}

	var runs []models.SlowRunDescriptor
	var run []models.Sample
	flush := func() {
		if d := finalizeRun(run, buckets); d != nil {
			runs = append(runs, *d)
		}
		run = nil
	}

	for _, s := range samples {
		if effectiveSpeed(s) >= SlowSpeedThreshold {
			flush()
			continue
		}
		if policy == SplitOnGaps && len(run) > 0 {
			last := run[len(run)-1]
			if last.Timestamp != nil && s.Timestamp != nil && s.Timestamp.Sub(*last.Timestamp) > threshold {
				// A recording gap splits the run even though this sample
				// is itself slow; it starts the next run.
				flush()
			}
		}
		run = append(run, s)
	}
	flush()

	return runs
}

// effectiveSpeed prefers the enhanced speed channel when it carries a
// non-zero value, then the plain speed channel, then zero.
func effectiveSpeed(s models.Sample) float64 {
	if s.EnhancedSpeed != nil && *s.EnhancedSpeed != 0 {
		return *s.EnhancedSpeed
	}
	if s.Speed != nil {
		return *s.Speed
	}
	return 0
}

// finalizeRun turns an accumulated run into a descriptor, or nil when the
// run is empty, its boundary timestamps are missing, or its duration
// matches none of the selected buckets.
func finalizeRun(run []models.Sample, buckets []models.DurationBucket) *models.SlowRunDescriptor {
	if len(run) == 0 {
		return nil
	}
	first, last := run[0], run[len(run)-1]
	if first.Timestamp == nil || last.Timestamp == nil {
		return nil
	}

	duration := last.Timestamp.Sub(*first.Timestamp)
	if !models.MatchesAnyBucket(buckets, duration.Minutes(), duration.Hours()) {
		return nil
	}

	startDistance := distanceOrZero(first.Distance)
	endDistance := startDistance
	if last.Distance != nil {
		endDistance = *last.Distance
	}

	return &models.SlowRunDescriptor{
		StartTime:     *first.Timestamp,
		EndTime:       *last.Timestamp,
		SampleCount:   len(run),
		StartDistance: startDistance,
		EndDistance:   endDistance,
		Trail:         spatial.GeoPointsFromSamples(run),
	}
}
