// Package store persists the promo order ledger.
package store

import (
	"context"

	"github.com/aklbites/jamwhopper/internal/models"
)

type OrderRepository interface {
	// Save appends a new order and makes it durable before returning.
	Save(ctx context.Context, order models.Order) error
	// GetAll returns the current ledger without reloading from disk.
	GetAll(ctx context.Context) ([]models.Order, error)
	// Update replaces the order with the same id. An unknown id is a
	// silent no-op.
	Update(ctx context.Context, order models.Order) error
}
