package domain

// GeoPoint is a latitude/longitude pair used for radius targeting.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Targeting describes who should see a launched campaign. When GeoPoints is
// empty the ad set falls back to country-level targeting.
type Targeting struct {
	AgeMin    int        `json:"age_min,omitempty"`
	AgeMax    int        `json:"age_max,omitempty"`
	RadiusKm  float64    `json:"radius_km,omitempty"`
	Interests []string   `json:"interests,omitempty"`
	GeoPoints []GeoPoint `json:"geo_points,omitempty"`
}
