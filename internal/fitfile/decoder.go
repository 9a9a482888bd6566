// Package fitfile is the decoding boundary: it turns a FIT activity
// stream into the plain record shapes the analysis engine consumes. The
// engine never sees the FIT library's types, and FIT invalid sentinels
// come out as nil fields, never as errors.
package fitfile

import (
	"fmt"
	"io"

	"github.com/tormoder/fit"

	"github.com/ridelog/faff-backend-go/internal/models"
)

// FIT base-type invalid sentinels and profile scale factors for the
// record and session fields this service reads.
const (
	invalidUint16 = 0xFFFF
	invalidUint32 = 0xFFFFFFFF

	speedScale    = 1000.0 // mm/s -> m/s
	distanceScale = 100.0  // cm -> m
	timeScale     = 1000.0 // ms -> s
)

// RecordSet is one decoded activity file.
type RecordSet struct {
	Samples   []models.Sample
	Summaries []models.SessionSummary
	Sport     string
}

// Decode parses a FIT activity stream into engine inputs.
func Decode(r io.Reader) (*RecordSet, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode fit stream: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("not an activity file: %w", err)
	}

	set := &RecordSet{
		Samples:   make([]models.Sample, 0, len(activity.Records)),
		Summaries: make([]models.SessionSummary, 0, len(activity.Sessions)),
	}
	for _, rec := range activity.Records {
		if rec == nil {
			continue
		}
		set.Samples = append(set.Samples, sampleFromRecord(rec))
	}
	for _, ses := range activity.Sessions {
		if ses == nil {
			continue
		}
		set.Summaries = append(set.Summaries, summaryFromSession(ses))
	}
	if len(activity.Sessions) > 0 && activity.Sessions[0] != nil {
		set.Sport = activity.Sessions[0].Sport.String()
	}
	return set, nil
}

func sampleFromRecord(rec *fit.RecordMsg) models.Sample {
	var s models.Sample
	if !rec.Timestamp.IsZero() {
		ts := rec.Timestamp
		s.Timestamp = &ts
	}
	if rec.Speed != invalidUint16 {
		v := float64(rec.Speed) / speedScale
		s.Speed = &v
	}
	if rec.EnhancedSpeed != invalidUint32 {
		v := float64(rec.EnhancedSpeed) / speedScale
		s.EnhancedSpeed = &v
	}
	if rec.Distance != invalidUint32 {
		v := float64(rec.Distance) / distanceScale
		s.Distance = &v
	}
	if !rec.PositionLat.Invalid() {
		v := rec.PositionLat.Semicircles()
		s.PositionLat = &v
	}
	if !rec.PositionLong.Invalid() {
		v := rec.PositionLong.Semicircles()
		s.PositionLong = &v
	}
	return s
}

func summaryFromSession(ses *fit.SessionMsg) models.SessionSummary {
	var sum models.SessionSummary
	if !ses.StartTime.IsZero() {
		t := ses.StartTime
		sum.StartTime = &t
	}
	if ses.TotalElapsedTime != invalidUint32 {
		v := float64(ses.TotalElapsedTime) / timeScale
		sum.TotalElapsedTime = &v
	}
	if ses.TotalTimerTime != invalidUint32 {
		v := float64(ses.TotalTimerTime) / timeScale
		sum.TotalTimerTime = &v
	}
	if ses.TotalDistance != invalidUint32 {
		v := float64(ses.TotalDistance) / distanceScale
		sum.TotalDistance = &v
	}
	return sum
}
