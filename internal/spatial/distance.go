package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/ridelog/faff-backend-go/internal/models"
)

const (
	// EarthRadiusMeters is Earth's mean radius in meters.
	EarthRadiusMeters = 6371000.0
)

// GreatCircleDistance returns the distance between two points in meters.
func GreatCircleDistance(a, b models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// TrailLengthMeters sums the great-circle distance along a point trail.
func TrailLengthMeters(points []models.GeoPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += GreatCircleDistance(points[i-1], points[i])
	}
	return total
}

// BoundsOf returns the lat/lon envelope of a point set, or nil when the
// set is empty.
func BoundsOf(points []models.GeoPoint) *models.BoundingBox {
	if len(points) == 0 {
		return nil
	}
	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
	}
	return &models.BoundingBox{
		MinLat: rect.Lo().Lat.Degrees(),
		MinLon: rect.Lo().Lng.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MaxLon: rect.Hi().Lng.Degrees(),
	}
}
