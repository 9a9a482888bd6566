package models

// DurationBucket is one of the six fixed duration ranges used to filter
// faff periods for display. The set is closed: anything outside it never
// matches.
type DurationBucket string

const (
	Bucket2To5Min    DurationBucket = "2to5"
	Bucket5To10Min   DurationBucket = "5to10"
	Bucket10To30Min  DurationBucket = "10to30"
	Bucket30To60Min  DurationBucket = "30to60"
	Bucket1To2Hours  DurationBucket = "1to2hours"
	BucketOver2Hours DurationBucket = "over2hours"
)

// AllBuckets lists every bucket in ascending duration order.
var AllBuckets = []DurationBucket{
	Bucket2To5Min,
	Bucket5To10Min,
	Bucket10To30Min,
	Bucket30To60Min,
	Bucket1To2Hours,
	BucketOver2Hours,
}

// Label returns the human-readable form shown in filter UIs.
func (b DurationBucket) Label() string {
	switch b {
	case Bucket2To5Min:
		return "2-5 minutes"
	case Bucket5To10Min:
		return "5-10 minutes"
	case Bucket10To30Min:
		return "10-30 minutes"
	case Bucket30To60Min:
		return "30-60 minutes"
	case Bucket1To2Hours:
		return "1-2 hours"
	case BucketOver2Hours:
		return "over 2 hours"
	}
	return string(b)
}

// Matches reports whether a duration, given as minutes and hours, falls
// inside the bucket. Ranges are half-open: the lower bound is included,
// the upper bound is not. Unknown tags match nothing.
func (b DurationBucket) Matches(minutes, hours float64) bool {
	switch b {
	case Bucket2To5Min:
		return minutes >= 2 && minutes < 5
	case Bucket5To10Min:
		return minutes >= 5 && minutes < 10
	case Bucket10To30Min:
		return minutes >= 10 && minutes < 30
	case Bucket30To60Min:
		return minutes >= 30 && minutes < 60
	case Bucket1To2Hours:
		return hours >= 1 && hours < 2
	case BucketOver2Hours:
		return hours >= 2
	}
	return false
}

// MatchesAnyBucket reports whether the duration falls inside at least one
// of the selected buckets. An empty selection matches nothing.
func MatchesAnyBucket(buckets []DurationBucket, minutes, hours float64) bool {
	for _, b := range buckets {
		if b.Matches(minutes, hours) {
			return true
		}
	}
	return false
}

// ParseBucket validates a bucket tag from an API request.
func ParseBucket(tag string) (DurationBucket, bool) {
	for _, b := range AllBuckets {
		if string(b) == tag {
			return b, true
		}
	}
	return "", false
}
