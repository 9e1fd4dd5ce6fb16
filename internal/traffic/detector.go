// Package traffic classifies routes near the promo center as jammed or clear.
package traffic

import (
	"context"
	"log"
	"time"

	"github.com/aklbites/jamwhopper/internal/maps"
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Detector scans candidate routes and reports the ones whose simulated
// average speed falls below the threshold.
type Detector struct {
	client    maps.Client
	center    models.Location
	radius    int
	threshold float64

	// ShowProgress renders a scan progress bar on stderr. Off by default
	// so tests and non-interactive callers stay quiet.
	ShowProgress bool
}

func NewDetector(client maps.Client, center models.Location, radius int, threshold float64) *Detector {
	return &Detector{
		client:    client,
		center:    center,
		radius:    radius,
		threshold: threshold,
	}
}

// FindTrafficJams fetches the candidate routes and returns the names of the
// jammed ones. A route that fails to produce directions is counted as clear
// and the scan continues.
func (d *Detector) FindTrafficJams(ctx context.Context) ([]string, error) {
	routes, err := d.client.PlacesNearby(ctx, d.center, d.radius)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if d.ShowProgress {
		bar = progressbar.Default(int64(len(routes)), "checking routes")
	}

	var jams []string
	for _, route := range routes {
		if d.CheckRoute(ctx, route) {
			jams = append(jams, route.Name)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return jams, nil
}

// CheckRoute reports whether a route is jammed: average speed strictly below
// the threshold. Exactly at the threshold counts as clear.
func (d *Detector) CheckRoute(ctx context.Context, route models.Route) bool {
	estimate, err := d.client.Directions(ctx, route.Location, route.Location, time.Now())
	if err != nil {
		log.Printf("Error checking traffic on %s: %v", route.Name, err)
		return false
	}
	if estimate.DurationSeconds <= 0 {
		log.Printf("Error checking traffic on %s: invalid trip duration %.2f", route.Name, estimate.DurationSeconds)
		return false
	}

	speed := estimate.AverageSpeedKmh()
	if speed < d.threshold {
		log.Printf("Traffic jam detected on %s. Average speed: %.2f km/h", route.Name, speed)
		return true
	}
	log.Printf("No traffic jam on %s. Average speed: %.2f km/h", route.Name, speed)
	return false
}
