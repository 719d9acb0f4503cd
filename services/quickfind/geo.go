package quickfind

import (
	"math"
	"sort"

	"quickfind/models"
)

// Haversine calculates the great-circle distance (in km) between two lat/lon
// points, rounded to one decimal place. The rounding is display policy: the
// same value is filtered on, sorted on and shown to the client.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(R*c*10) / 10
}

// FilterByRadius annotates each provider carrying a coordinate with its
// distance from the center, drops entries beyond radiusKm, and returns the
// remainder sorted ascending by distance. Providers without a coordinate are
// silently excluded. Pure function; rating eligibility is the caller's concern.
func FilterByRadius(centerLat, centerLng, radiusKm float64, providers []models.Provider) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(providers))
	for _, p := range providers {
		lat, lng, ok := p.Profile.LocationGeo.LatLng()
		if !ok {
			continue
		}
		distance := Haversine(centerLat, centerLng, lat, lng)
		if distance > radiusKm {
			continue
		}
		candidates = append(candidates, models.Candidate{Provider: p, DistanceKm: distance})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})
	return candidates
}
