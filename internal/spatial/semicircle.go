package spatial

import "github.com/ridelog/faff-backend-go/internal/models"

// semicircleDegrees converts Garmin's signed 32-bit angular encoding to
// decimal degrees: degrees = semicircles * 180 / 2^31.
const semicircleDegrees = 180.0 / 2147483648.0

// SemicirclesToDegrees converts one semicircle value to decimal degrees.
func SemicirclesToDegrees(sc int32) float64 {
	return float64(sc) * semicircleDegrees
}

// GeoPointFromSample converts a sample's position to a GeoPoint, or nil
// when the sample has no usable position. A coordinate of exactly zero is
// treated the same as a missing one, so a point sitting precisely on the
// equator or prime meridian is dropped.
func GeoPointFromSample(s models.Sample) *models.GeoPoint {
	if s.PositionLat == nil || s.PositionLong == nil {
		return nil
	}
	if *s.PositionLat == 0 || *s.PositionLong == 0 {
		return nil
	}
	return &models.GeoPoint{
		Latitude:  SemicirclesToDegrees(*s.PositionLat),
		Longitude: SemicirclesToDegrees(*s.PositionLong),
	}
}

// GeoPointsFromSamples converts a sample sequence to its geo trail,
// skipping samples without a usable position. Order is preserved.
func GeoPointsFromSamples(samples []models.Sample) []models.GeoPoint {
	points := make([]models.GeoPoint, 0, len(samples))
	for _, s := range samples {
		if p := GeoPointFromSample(s); p != nil {
			points = append(points, *p)
		}
	}
	return points
}
