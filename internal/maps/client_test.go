package maps

import (
	"context"
	"testing"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/stretchr/testify/require"
)

func TestMockClientReturnsFixedRouteList(t *testing.T) {
	ctx := context.Background()
	client := NewMockClient(42)

	routes, err := client.PlacesNearby(ctx, models.Location{Lat: -36.8485, Lon: 174.7633}, 5000)
	require.NoError(t, err)
	require.Len(t, routes, 14)

	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = r.Name
	}
	require.Contains(t, names, "Queen Street")
	require.Contains(t, names, "Te Irirangi Drive")

	// callers get a copy, not the client's backing slice
	routes[0].Name = "Mutated"
	again, err := client.PlacesNearby(ctx, models.Location{}, 1)
	require.NoError(t, err)
	require.Equal(t, "Queen Street", again[0].Name)
}

func TestMockClientDirectionsWithinSimulatedBounds(t *testing.T) {
	ctx := context.Background()
	client := NewMockClient(42)
	loc := models.Location{Lat: -36.8485, Lon: 174.7633}

	for i := 0; i < 100; i++ {
		est, err := client.Directions(ctx, loc, loc, time.Now())
		require.NoError(t, err)
		require.GreaterOrEqual(t, est.DistanceMeters, 1000.0)
		require.LessOrEqual(t, est.DistanceMeters, 5000.0)
		require.GreaterOrEqual(t, est.DurationSeconds, 300.0)
		require.LessOrEqual(t, est.DurationSeconds, 1800.0)
		require.Greater(t, est.AverageSpeedKmh(), 0.0)
	}
}

func TestMockClientIsDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	loc := models.Location{Lat: -36.8485, Lon: 174.7633}

	a, err := NewMockClient(7).Directions(ctx, loc, loc, time.Now())
	require.NoError(t, err)
	b, err := NewMockClient(7).Directions(ctx, loc, loc, time.Now())
	require.NoError(t, err)

	require.Equal(t, a, b)
}
