package util

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceMeters returns the great-circle distance in meters between two
// latitude/longitude pairs.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.Distance(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// FormatDistance formats a distance in meters into human readable format
// (e.g., "850m", "1.2km").
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0fm", meters)
	}

	return fmt.Sprintf("%.1fkm", meters/1000)
}

// ValidCoordinates reports whether the latitude/longitude pair lies within
// the valid WGS84 range.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
