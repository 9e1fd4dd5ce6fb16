package traffic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned trip metrics per route name so jam
// classification is reproducible.
type stubClient struct {
	routes []models.Route
	trips  map[string]models.TripEstimate
	errs   map[string]error
}

func (s *stubClient) PlacesNearby(_ context.Context, _ models.Location, _ int) ([]models.Route, error) {
	return s.routes, nil
}

func (s *stubClient) Directions(_ context.Context, start, _ models.Location, _ time.Time) (models.TripEstimate, error) {
	for _, r := range s.routes {
		if r.Location == start {
			if err := s.errs[r.Name]; err != nil {
				return models.TripEstimate{}, err
			}
			return s.trips[r.Name], nil
		}
	}
	return models.TripEstimate{}, errors.New("unknown route")
}

func routeAt(name string, lat float64) models.Route {
	return models.Route{Name: name, Location: models.Location{Lat: lat, Lon: 174.7}}
}

func TestCheckRouteSpeedThreshold(t *testing.T) {
	tests := []struct {
		name     string
		trip     models.TripEstimate
		expected bool
	}{
		// 2000 m in 1800 s is 4 km/h
		{"well below threshold", models.TripEstimate{DistanceMeters: 2000, DurationSeconds: 1800}, true},
		// 5000 m in 1800 s is exactly 10 km/h, strict comparison leaves it clear
		{"exactly at threshold", models.TripEstimate{DistanceMeters: 5000, DurationSeconds: 1800}, false},
		{"just below threshold", models.TripEstimate{DistanceMeters: 4999, DurationSeconds: 1800}, true},
		{"free flowing", models.TripEstimate{DistanceMeters: 5000, DurationSeconds: 300}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := routeAt("Queen Street", -36.8485)
			client := &stubClient{
				routes: []models.Route{route},
				trips:  map[string]models.TripEstimate{"Queen Street": tt.trip},
			}
			d := NewDetector(client, models.Location{}, 5000, 10.0)
			require.Equal(t, tt.expected, d.CheckRoute(context.Background(), route))
		})
	}
}

func TestFindTrafficJamsCollectsJammedRoutes(t *testing.T) {
	client := &stubClient{
		routes: []models.Route{
			routeAt("Queen Street", -36.8485),
			routeAt("Dominion Road", -36.8806),
			routeAt("Tamaki Drive", -36.8449),
		},
		trips: map[string]models.TripEstimate{
			"Queen Street":  {DistanceMeters: 1500, DurationSeconds: 1800}, // 3 km/h
			"Dominion Road": {DistanceMeters: 5000, DurationSeconds: 450},  // 40 km/h
			"Tamaki Drive":  {DistanceMeters: 2500, DurationSeconds: 1800}, // 5 km/h
		},
	}
	d := NewDetector(client, models.Location{}, 5000, 10.0)

	jams, err := d.FindTrafficJams(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Queen Street", "Tamaki Drive"}, jams)
}

func TestFindTrafficJamsSurvivesRouteFailures(t *testing.T) {
	client := &stubClient{
		routes: []models.Route{
			routeAt("Queen Street", -36.8485),
			routeAt("Hobson Street", -36.8487),
			routeAt("Nelson Street", -36.8544),
		},
		trips: map[string]models.TripEstimate{
			"Queen Street":  {DistanceMeters: 1500, DurationSeconds: 1800},
			"Nelson Street": {DistanceMeters: 1200, DurationSeconds: 1700},
		},
		errs: map[string]error{
			"Hobson Street": errors.New("directions unavailable"),
		},
	}
	d := NewDetector(client, models.Location{}, 5000, 10.0)

	// the failing route is treated as clear, the rest of the scan continues
	jams, err := d.FindTrafficJams(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Queen Street", "Nelson Street"}, jams)
}

func TestCheckRouteZeroDurationIsClear(t *testing.T) {
	route := routeAt("Lake Road", -36.7912)
	client := &stubClient{
		routes: []models.Route{route},
		trips:  map[string]models.TripEstimate{"Lake Road": {DistanceMeters: 3000, DurationSeconds: 0}},
	}
	d := NewDetector(client, models.Location{}, 5000, 10.0)
	require.False(t, d.CheckRoute(context.Background(), route))
}
