// Package analysis holds the faff-time engine: a pure, synchronous
// pipeline that partitions an ordered sample sequence into slow runs and
// recording gaps, filters them against the selected duration buckets, and
// merges both into one chronological period list.
//
// The engine keeps no state between calls, performs no I/O, and never
// mutates its inputs; identical inputs always produce identical results.
// Irregular input data (missing timestamps, positions, distances) is
// skipped or defaulted per field, never reported as an error.
package analysis

import (
	"time"

	"github.com/ridelog/faff-backend-go/internal/models"
)

// Options is the complete per-call configuration surface of the engine.
type Options struct {
	// Buckets is the user's duration filter. Empty means nothing is
	// selected: no slow-run scan runs and no gap passes the merger.
	Buckets []models.DurationBucket
	// GapThreshold is the smallest timestamp discontinuity treated as a
	// recording gap. Zero or negative selects DefaultGapThreshold.
	GapThreshold time.Duration
	// Split picks how slow runs are closed; the zero value is
	// SplitSimple, callers usually want SplitOnGaps.
	Split SplitPolicy
}

// Result bundles everything one pipeline invocation produces. Periods is
// the merged display list; Gaps and SlowRuns are the raw descriptor
// lists for consumers that need them.
type Result struct {
	Times    models.ActivityTimes
	Gaps     []models.GapDescriptor
	SlowRuns []models.SlowRunDescriptor
	Periods  []models.Period
	Summary  models.FaffSummary
}

// Analyze runs the full pipeline over one activity's decoded records.
func Analyze(samples []models.Sample, summaries []models.SessionSummary, opts Options) Result {
	if opts.GapThreshold <= 0 {
		opts.GapThreshold = DefaultGapThreshold
	}

	times := ExtractActivityTimes(summaries, samples)
	gaps := FindGaps(samples, opts.GapThreshold)
	runs := FindSlowRuns(samples, opts.Buckets, opts.GapThreshold, opts.Split)
	periods := MergePeriods(runs, gaps, opts.Buckets)

	return Result{
		Times:    times,
		Gaps:     gaps,
		SlowRuns: runs,
		Periods:  periods,
		Summary:  Summarize(periods, times),
	}
}
