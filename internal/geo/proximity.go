// Package geo implements proximity lookup over place coordinates.
//
// Distances are planar in degree space: the radius in kilometres is converted
// to degrees with a flat 111 km per degree and compared against the Euclidean
// distance between the two (lat, lng) pairs. This is not a great-circle
// distance; it overestimates reach east-west away from the equator. Callers
// depend on this exact behaviour, so it is kept as is.
package geo

import (
	"math"

	"travelsuggester/internal/domain/models"
)

const (
	// KmPerDegree is the equatorial approximation used to turn a radius into degrees.
	KmPerDegree = 111.0

	// MaxNearbyResults caps Nearby output.
	MaxNearbyResults = 20

	// DefaultRadiusKm is used when the caller does not pass a radius.
	DefaultRadiusKm = 5.0
)

// DegreeDistance is the Euclidean distance between two coordinates in degree space.
func DegreeDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Within reports whether (lat2, lng2) lies inside radiusKm of (lat1, lng1).
func Within(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return DegreeDistance(lat1, lng1, lat2, lng2) <= radiusKm/KmPerDegree
}

// Nearby returns places with both coordinates set that fall within radiusKm of
// (lat, lng). Input order is preserved and the result holds at most
// MaxNearbyResults places.
func Nearby(lat, lng, radiusKm float64, places []models.Place) []models.Place {
	out := make([]models.Place, 0)
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		if !Within(lat, lng, *p.Latitude, *p.Longitude, radiusKm) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxNearbyResults {
			break
		}
	}
	return out
}
