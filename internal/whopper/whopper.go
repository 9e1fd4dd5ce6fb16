// Package whopper coordinates congestion detection with promo order
// creation: no jam at the named location, no order.
package whopper

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/aklbites/jamwhopper/internal/orders"
	"github.com/aklbites/jamwhopper/internal/output"
	"github.com/lucsky/cuid"
)

var ErrNoTrafficJam = errors.New("no traffic jam detected at location")

// JamFinder is the detection boundary, substitutable in tests.
type JamFinder interface {
	FindTrafficJams(ctx context.Context) ([]string, error)
}

type Whopper struct {
	detector JamFinder
	orders   *orders.Service
	sink     output.Destination

	// jamLocations is replaced wholesale on every detection run and never
	// persisted.
	jamLocations []string
}

func New(detector JamFinder, orderService *orders.Service, sink output.Destination) *Whopper {
	return &Whopper{
		detector: detector,
		orders:   orderService,
		sink:     sink,
	}
}

type baseEvent struct {
	EventID   string `json:"eventId"`
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"eventType"`
}

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		EventID:   cuid.New(),
		Timestamp: time.Now().Unix(),
		EventType: eventType,
	}
}

// publish serializes the event and hands it to the sink. Sink failures are
// logged, never surfaced: event delivery is advisory, the ledger is the
// source of truth.
func (w *Whopper) publish(topic string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := w.sink.WriteMessage(topic, data); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

// CheckForTrafficJams runs a detection scan and replaces the held jam set
// with the result.
func (w *Whopper) CheckForTrafficJams(ctx context.Context) ([]string, error) {
	jams, err := w.detector.FindTrafficJams(ctx)
	if err != nil {
		return nil, err
	}
	w.jamLocations = jams

	for _, location := range jams {
		w.triggerOrderAvailability(location)
	}
	return w.JamLocations(), nil
}

func (w *Whopper) triggerOrderAvailability(location string) {
	log.Printf("Traffic Jam Whopper service is now available near %s", location)

	w.publish("traffic_jam_events", struct {
		baseEvent
		Location string `json:"location"`
	}{
		baseEvent: newBaseEvent(models.EventTrafficJamDetected),
		Location:  location,
	})
}

// JamLocations returns the jam set from the most recent detection run.
func (w *Whopper) JamLocations() []string {
	locations := make([]string, len(w.jamLocations))
	copy(locations, w.jamLocations)
	return locations
}

func (w *Whopper) isJammed(location string) bool {
	for _, jam := range w.jamLocations {
		if jam == location {
			return true
		}
	}
	return false
}

// CreateOrder places an order only when the location is in the current jam
// set. Anything else is refused without touching the ledger.
func (w *Whopper) CreateOrder(ctx context.Context, customerName, location string) (models.Order, error) {
	if !w.isJammed(location) {
		log.Printf("Cannot create order. No traffic jam detected at %s.", location)
		return models.Order{}, ErrNoTrafficJam
	}

	order, err := w.orders.CreateOrder(ctx, customerName, location)
	if err != nil {
		return models.Order{}, err
	}

	w.publish("order_events", struct {
		baseEvent
		OrderID       int64  `json:"orderId"`
		CustomerName  string `json:"customerName"`
		Location      string `json:"location"`
		Status        string `json:"status"`
		OrderPlacedAt int64  `json:"order_placed_at"`
	}{
		baseEvent:     newBaseEvent(models.EventOrderCreated),
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		Location:      order.Location,
		Status:        order.Status,
		OrderPlacedAt: order.CreatedAt.Unix(),
	})
	return order, nil
}

func (w *Whopper) Orders(ctx context.Context) ([]models.Order, error) {
	return w.orders.Orders(ctx)
}

// CancelOrder delegates to the order service and publishes the cancellation
// when it took effect.
func (w *Whopper) CancelOrder(ctx context.Context, id int64) (models.Order, error) {
	order, err := w.orders.CancelOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	w.publish("order_cancellation_events", struct {
		baseEvent
		OrderID          int64  `json:"orderId"`
		Status           string `json:"status"`
		CancellationTime int64  `json:"cancellation_time"`
	}{
		baseEvent:        newBaseEvent(models.EventOrderCancelled),
		OrderID:          order.ID,
		Status:           order.Status,
		CancellationTime: time.Now().Unix(),
	})
	return order, nil
}
