package quickfind

import (
	"math"
	"sort"
	"testing"

	"quickfind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One degree of latitude under the haversine sphere (R = 6371).
const kmPerLatDegree = 6371 * math.Pi / 180

func providerAt(id string, lat, lng float64) models.Provider {
	return models.Provider{
		ID:      id,
		Profile: models.Profile{LocationGeo: models.NewGeoPoint(lat, lng)},
		Active:  true,
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{34.02, -6.84, 33.97, -6.87},
		{12.9716, 77.5946, 13.0827, 80.2707},
		{-33.86, 151.21, 51.51, -0.13},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		assert.Equal(t, Haversine(p[0], p[1], p[2], p[3]), Haversine(p[2], p[3], p[0], p[1]))
	}
}

func TestHaversineRoundsToOneDecimal(t *testing.T) {
	d := Haversine(34.02, -6.84, 33.57, -7.59)
	assert.Equal(t, math.Round(d*10)/10, d)
	assert.Equal(t, 0.0, Haversine(34.02, -6.84, 34.02, -6.84))
}

func TestFilterByRadiusExampleWindow(t *testing.T) {
	centerLat, centerLng := 34.02, -6.84
	// Pure north offsets placing candidates at 3.2, 9.9 and 15.0 km.
	candidates := []models.Provider{
		providerAt("far", centerLat+15.0/kmPerLatDegree, centerLng),
		providerAt("near", centerLat+3.2/kmPerLatDegree, centerLng),
		providerAt("edge", centerLat+9.9/kmPerLatDegree, centerLng),
	}

	result := FilterByRadius(centerLat, centerLng, 10, candidates)

	require.Len(t, result, 2)
	assert.Equal(t, "near", result[0].Provider.ID)
	assert.Equal(t, 3.2, result[0].DistanceKm)
	assert.Equal(t, "edge", result[1].Provider.ID)
	assert.Equal(t, 9.9, result[1].DistanceKm)
}

func TestFilterByRadiusSortedAndBounded(t *testing.T) {
	centerLat, centerLng := 34.02, -6.84
	offsets := []float64{7.3, 0.4, 9.9, 2.1, 11.6, 5.0, 10.1, 8.8}
	var providers []models.Provider
	for i, km := range offsets {
		providers = append(providers, providerAt(string(rune('a'+i)), centerLat+km/kmPerLatDegree, centerLng))
	}

	result := FilterByRadius(centerLat, centerLng, 10, providers)

	require.Len(t, result, 6)
	assert.True(t, sort.SliceIsSorted(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	}))
	for _, c := range result {
		assert.LessOrEqual(t, c.DistanceKm, 10.0)
	}
}

func TestFilterByRadiusSkipsMissingCoordinates(t *testing.T) {
	withLoc := providerAt("located", 34.03, -6.84)
	noLoc := models.Provider{ID: "nowhere", Active: true}

	result := FilterByRadius(34.02, -6.84, 10, []models.Provider{noLoc, withLoc})

	require.Len(t, result, 1)
	assert.Equal(t, "located", result[0].Provider.ID)
}

func TestFilterByRadiusEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByRadius(34.02, -6.84, 10, nil))
}
