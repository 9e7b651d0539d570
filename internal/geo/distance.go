// Package geo provides great-circle distance math and coordinate helpers
// shared by the proximity and search services.
package geo

import (
	"math"

	domainerrors "pklradar/internal/domain/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// earthRadiusKm is the mean earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// boundPadding widens the orb pre-filter bound so that points right at the
// radius edge are never excluded before the exact haversine check. orb uses
// the WGS84 equatorial radius (6378137 m), which differs from our sphere.
const boundPadding = 1.3

// DistanceKm returns the haversine distance in kilometers between two
// coordinates on a sphere of radius 6371 km.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceM returns the haversine distance in meters.
func DistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000
}

// ValidateCoordinate checks that a latitude/longitude pair is on the globe.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return domainerrors.ErrInvalidCoordinate
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}

// BoundAround returns a padded bounding box around the center point, used as
// a cheap pre-filter before the exact distance check.
func BoundAround(lat, lon, radiusM float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(orb.Point{lon, lat}, radiusM*boundPadding)
}

// InBound reports whether the coordinate falls inside the bound.
func InBound(bound orb.Bound, lat, lon float64) bool {
	return bound.Contains(orb.Point{lon, lat})
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
