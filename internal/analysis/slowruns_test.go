package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelog/faff-backend-go/internal/models"
)

func TestFindSlowRunsEmptyBucketSelection(t *testing.T) {
	samples := []models.Sample{
		sampleAt(0, 0),
		sampleAt(3*time.Minute, 0),
	}
	assert.Nil(t, FindSlowRuns(samples, nil, 5*time.Minute, SplitOnGaps))
}

func TestFindSlowRunsDurationGating(t *testing.T) {
	// A two-sample slow run spanning exactly five minutes.
	samples := []models.Sample{
		sampleAt(0, 0.1),
		sampleAt(5*time.Minute, 0.2),
	}

	matched := FindSlowRuns(samples, []models.DurationBucket{models.Bucket2To5Min, models.Bucket5To10Min}, 10*time.Minute, SplitSimple)
	require.Len(t, matched, 1)
	assert.Equal(t, 2, matched[0].SampleCount)

	unmatched := FindSlowRuns(samples, []models.DurationBucket{models.Bucket30To60Min}, 10*time.Minute, SplitSimple)
	assert.Empty(t, unmatched)
}

func TestFindSlowRunsFastSampleClosesRun(t *testing.T) {
	samples := []models.Sample{
		sampleAt(0, 0),
		sampleAt(90*time.Second, 0.3),
		sampleAt(3*time.Minute, 0.1),
		sampleAt(4*time.Minute, 5), // riding again
		sampleAt(5*time.Minute, 6),
	}

	runs := FindSlowRuns(samples, models.AllBuckets, 10*time.Minute, SplitSimple)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].SampleCount)
	assert.Equal(t, baseTime, runs[0].StartTime)
	assert.Equal(t, baseTime.Add(3*time.Minute), runs[0].EndTime)
}

func TestFindSlowRunsTrailingRunIsFlushed(t *testing.T) {
	samples := []models.Sample{
		sampleAt(0, 8),
		sampleAt(1*time.Minute, 0.1),
		sampleAt(4*time.Minute, 0.1),
	}

	runs := FindSlowRuns(samples, models.AllBuckets, 10*time.Minute, SplitOnGaps)
	require.Len(t, runs, 1)
	assert.Equal(t, baseTime.Add(1*time.Minute), runs[0].StartTime)
}

func TestFindSlowRunsSplitPolicies(t *testing.T) {
	// Three slow minutes, a twelve minute recording hole, three more slow
	// minutes, then riding.
	samples := []models.Sample{
		sampleAt(0, 0.1),
		sampleAt(3*time.Minute, 0.1),
		sampleAt(15*time.Minute, 0.1),
		sampleAt(18*time.Minute, 0.1),
		sampleAt(19*time.Minute, 7),
	}
	buckets := []models.DurationBucket{models.Bucket2To5Min, models.Bucket10To30Min}

	gapAware := FindSlowRuns(samples, buckets, 5*time.Minute, SplitOnGaps)
	require.Len(t, gapAware, 2)
	assert.Equal(t, baseTime, gapAware[0].StartTime)
	assert.Equal(t, baseTime.Add(3*time.Minute), gapAware[0].EndTime)
	assert.Equal(t, baseTime.Add(15*time.Minute), gapAware[1].StartTime)
	assert.Equal(t, baseTime.Add(18*time.Minute), gapAware[1].EndTime)

	// Simple mode lets the run span the hole: one 18 minute run.
	simple := FindSlowRuns(samples, buckets, 5*time.Minute, SplitSimple)
	require.Len(t, simple, 1)
	assert.Equal(t, 4, simple[0].SampleCount)
	assert.Equal(t, baseTime.Add(18*time.Minute), simple[0].EndTime)
}

func TestFindSlowRunsEffectiveSpeed(t *testing.T) {
	tests := []struct {
		name   string
		sample models.Sample
		slow   bool
	}{
		{
			name:   "enhanced speed wins over plain speed",
			sample: models.Sample{Timestamp: tsAt(0), EnhancedSpeed: f64(2), Speed: f64(0.1)},
			slow:   false,
		},
		{
			name:   "zero enhanced speed falls back to plain speed",
			sample: models.Sample{Timestamp: tsAt(0), EnhancedSpeed: f64(0), Speed: f64(3)},
			slow:   false,
		},
		{
			name:   "no speed channel counts as stopped",
			sample: models.Sample{Timestamp: tsAt(0)},
			slow:   true,
		},
		{
			name:   "below threshold",
			sample: models.Sample{Timestamp: tsAt(0), Speed: f64(0.74)},
			slow:   true,
		},
		{
			name:   "at threshold is not slow",
			sample: models.Sample{Timestamp: tsAt(0), Speed: f64(0.75)},
			slow:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.slow, effectiveSpeed(tt.sample) < SlowSpeedThreshold)
		})
	}
}

func TestFinalizeRunDistances(t *testing.T) {
	run := []models.Sample{
		{Timestamp: tsAt(0), Distance: f64(5000)},
		{Timestamp: tsAt(3 * time.Minute)}, // no distance on the last sample
	}

	d := finalizeRun(run, models.AllBuckets)
	require.NotNil(t, d)
	assert.Equal(t, 5000.0, d.StartDistance)
	assert.Equal(t, 5000.0, d.EndDistance, "end distance falls back to start distance")

	run[1].Distance = f64(5004)
	d = finalizeRun(run, models.AllBuckets)
	require.NotNil(t, d)
	assert.Equal(t, 5004.0, d.EndDistance)
}

func TestFinalizeRunDiscards(t *testing.T) {
	assert.Nil(t, finalizeRun(nil, models.AllBuckets))

	// One minute run matches no bucket.
	short := []models.Sample{
		{Timestamp: tsAt(0)},
		{Timestamp: tsAt(time.Minute)},
	}
	assert.Nil(t, finalizeRun(short, models.AllBuckets))

	// Missing boundary timestamps make the duration incomputable.
	untimed := []models.Sample{{Speed: f64(0)}, {Speed: f64(0)}}
	assert.Nil(t, finalizeRun(untimed, models.AllBuckets))
}

func TestFinalizeRunTrail(t *testing.T) {
	run := []models.Sample{
		{Timestamp: tsAt(0), PositionLat: i32(612553967), PositionLong: i32(-151607000)},
		{Timestamp: tsAt(time.Minute), PositionLat: i32(612554000)}, // no longitude
		{Timestamp: tsAt(3 * time.Minute), PositionLat: i32(612554100), PositionLong: i32(-151607200)},
	}

	d := finalizeRun(run, models.AllBuckets)
	require.NotNil(t, d)
	assert.Equal(t, 3, d.SampleCount)
	assert.Len(t, d.Trail, 2, "samples without a full position stay off the trail")
}
