package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketMatchesHalfOpenRanges(t *testing.T) {
	tests := []struct {
		bucket  DurationBucket
		minutes float64
		hours   float64
		want    bool
	}{
		{Bucket2To5Min, 2, 2.0 / 60, true},
		{Bucket2To5Min, 4.99, 4.99 / 60, true},
		{Bucket2To5Min, 5, 5.0 / 60, false}, // upper bound exclusive
		{Bucket2To5Min, 1.99, 1.99 / 60, false},
		{Bucket5To10Min, 5, 5.0 / 60, true},
		{Bucket5To10Min, 10, 10.0 / 60, false},
		{Bucket10To30Min, 29.9, 29.9 / 60, true},
		{Bucket30To60Min, 30, 0.5, true},
		{Bucket30To60Min, 60, 1, false},
		{Bucket1To2Hours, 60, 1, true},
		{Bucket1To2Hours, 119.9, 119.9 / 60, true},
		{Bucket1To2Hours, 120, 2, false},
		{BucketOver2Hours, 120, 2, true},
		{BucketOver2Hours, 600, 10, true},
		{DurationBucket("bogus"), 10, 10.0 / 60, false},
	}
	for _, tt := range tests {
		got := tt.bucket.Matches(tt.minutes, tt.hours)
		assert.Equalf(t, tt.want, got, "%s.Matches(%v, %v)", tt.bucket, tt.minutes, tt.hours)
	}
}

func TestMatchesAnyBucket(t *testing.T) {
	assert.False(t, MatchesAnyBucket(nil, 3, 3.0/60), "empty selection matches nothing")
	assert.True(t, MatchesAnyBucket([]DurationBucket{Bucket30To60Min, Bucket2To5Min}, 3, 3.0/60))
	assert.False(t, MatchesAnyBucket([]DurationBucket{Bucket30To60Min}, 3, 3.0/60))
}

func TestParseBucket(t *testing.T) {
	for _, b := range AllBuckets {
		got, ok := ParseBucket(string(b))
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}

	_, ok := ParseBucket("7to9")
	assert.False(t, ok)
}

func TestBucketLabels(t *testing.T) {
	assert.Equal(t, "2-5 minutes", Bucket2To5Min.Label())
	assert.Equal(t, "over 2 hours", BucketOver2Hours.Label())
	for _, b := range AllBuckets {
		assert.NotEmpty(t, b.Label())
	}
}
