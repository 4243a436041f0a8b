package targeting

import (
	"fmt"
	"math"

	"mesa-decision/internal/core/domain"
)

const earthRadiusKm = 6371.0

func evaluateGeo(ad, user *domain.GeoLocation) DimensionResult {
	if ad.IsZero() || user.IsZero() {
		return notApplicable("no geo data")
	}

	var c checks
	c.exact("country", ad.Country, user.Country)
	c.exact("region", ad.Region, user.Region)
	c.exact("city", ad.City, user.City)
	if ad.Coordinates != nil && user.Coordinates != nil {
		km := HaversineKm(*ad.Coordinates, *user.Coordinates)
		c.add(DistanceScore(km), fmt.Sprintf("distance %.1f km", km))
	}
	return c.result(GeoThreshold, "no comparable geo fields")
}

// DistanceScore maps a distance to a proximity score.
func DistanceScore(km float64) float64 {
	switch {
	case km <= 50:
		return 1.0
	case km <= 100:
		return 0.8
	case km <= 200:
		return 0.6
	default:
		return 0.2
	}
}

// HaversineKm is the great-circle distance between two points.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
