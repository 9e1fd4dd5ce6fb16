// Package maps simulates the mapping provider the promo feature depends on.
package maps

import (
	"context"
	"math/rand"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/jaswdr/faker"
)

// Client is the boundary to the directions provider. The shipped
// implementation is a mock; swapping in a real one only touches this
// interface.
type Client interface {
	PlacesNearby(ctx context.Context, center models.Location, radius int) ([]models.Route, error)
	Directions(ctx context.Context, start, end models.Location, departure time.Time) (models.TripEstimate, error)
}

// MockClient answers with a fixed set of Auckland arterial routes and
// synthesizes trip metrics per call, so every detection run can produce a
// different jam set.
type MockClient struct {
	fake   faker.Faker
	routes []models.Route
}

func NewMockClient(seed int64) *MockClient {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockClient{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		routes: []models.Route{
			{Name: "Queen Street", Location: models.Location{Lat: -36.8485, Lon: 174.7633}},
			{Name: "Karangahape Road", Location: models.Location{Lat: -36.8573, Lon: 174.7614}},
			{Name: "Ponsonby Road", Location: models.Location{Lat: -36.8581, Lon: 174.7429}},
			{Name: "Hobson Street", Location: models.Location{Lat: -36.8487, Lon: 174.7620}},
			{Name: "Nelson Street", Location: models.Location{Lat: -36.8544, Lon: 174.7680}},
			{Name: "Brigham Creek Road", Location: models.Location{Lat: -36.8185, Lon: 174.5853}},
			{Name: "Lincoln Road", Location: models.Location{Lat: -36.8605, Lon: 174.6281}},
			{Name: "Lake Road", Location: models.Location{Lat: -36.7912, Lon: 174.7657}},
			{Name: "Glenfield Road", Location: models.Location{Lat: -36.7749, Lon: 174.7163}},
			{Name: "Tamaki Drive", Location: models.Location{Lat: -36.8449, Lon: 174.8272}},
			{Name: "Dominion Road", Location: models.Location{Lat: -36.8806, Lon: 174.7467}},
			{Name: "Howick Road", Location: models.Location{Lat: -36.9069, Lon: 174.9186}},
			{Name: "Pakuranga Road", Location: models.Location{Lat: -36.9019, Lon: 174.8727}},
			{Name: "Te Irirangi Drive", Location: models.Location{Lat: -36.9592, Lon: 174.8905}},
		},
	}
}

// PlacesNearby returns the candidate route list. The mock ignores the
// center and radius, the way the simulated provider always has.
func (c *MockClient) PlacesNearby(ctx context.Context, center models.Location, radius int) ([]models.Route, error) {
	routes := make([]models.Route, len(c.routes))
	copy(routes, c.routes)
	return routes, nil
}

// Directions synthesizes a trip: 1000-5000 metres covered in 300-1800
// seconds, drawn independently on every call.
func (c *MockClient) Directions(ctx context.Context, start, end models.Location, departure time.Time) (models.TripEstimate, error) {
	return models.TripEstimate{
		DistanceMeters:  c.fake.Float64(2, 1000, 5000),
		DurationSeconds: c.fake.Float64(2, 300, 1800),
	}, nil
}
