package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// LatLng returns the point as (lat, lng). The second return is false when the
// point carries no usable coordinate pair.
func (g GeoPoint) LatLng() (float64, float64, bool) {
	if len(g.Coordinates) < 2 {
		return 0, 0, false
	}
	return g.Coordinates[1], g.Coordinates[0], true
}

// NewGeoPoint builds a GeoJSON point from a (lat, lng) pair.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}
