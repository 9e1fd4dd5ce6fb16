package models

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Route is a named road segment returned by the maps client.
type Route struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// TripEstimate holds simulated directions metrics for a single trip.
type TripEstimate struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// AverageSpeedKmh converts the trip metrics into an average speed.
func (t TripEstimate) AverageSpeedKmh() float64 {
	return (t.DistanceMeters / 1000) / (t.DurationSeconds / 3600)
}
