package models

// BucketBreakdown is the per-bucket slice of a faff summary.
type BucketBreakdown struct {
	Bucket  DurationBucket `json:"bucket"`
	Label   string         `json:"label"`
	Count   int            `json:"count"`
	TotalMs int64          `json:"total_ms"`
}

// BoundingBox is the lat/lon envelope of a set of geo points, for map
// viewport fitting.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// FaffSummary condenses a period list for the stats panel.
type FaffSummary struct {
	PeriodCount     int               `json:"period_count"`
	SlowRunCount    int               `json:"slow_run_count"`
	GapCount        int               `json:"gap_count"`
	TotalFaffMs     int64             `json:"total_faff_ms"`
	MeanPeriodMin   float64           `json:"mean_period_min"`
	MedianPeriodMin float64           `json:"median_period_min"`
	FaffPercent     *float64          `json:"faff_percent,omitempty"` // of elapsed time, when times are known
	DriftMeters     float64           `json:"drift_m"`                // distance covered inside slow runs
	Buckets         []BucketBreakdown `json:"buckets"`
	Bounds          *BoundingBox      `json:"bounds,omitempty"`
}

// AnalysisResult is the full payload returned for one analyzed activity.
type AnalysisResult struct {
	AnalysisID  string              `json:"analysis_id"`
	Sport       string              `json:"sport,omitempty"`
	SampleCount int                 `json:"sample_count"`
	Activity    ActivityTimes       `json:"activity"`
	Periods     []Period            `json:"periods"`
	Gaps        []GapDescriptor     `json:"gaps"`
	SlowRuns    []SlowRunDescriptor `json:"slow_runs"`
	Summary     FaffSummary         `json:"summary"`
}
