// Package postgres provides a Postgres-backed order repository for
// deployments that outgrow the flat-file ledger.
package postgres

import (
	"context"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the orders table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS orders (
            id BIGINT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            location TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL
        )`)
	return err
}

func (r *Repository) Save(ctx context.Context, order models.Order) error {
	query := `
        INSERT INTO orders (id, customer_name, location, created_at, status)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Location,
		order.CreatedAt,
		order.Status,
	)
	return err
}

func (r *Repository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT id, customer_name, location, created_at, status
        FROM orders
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.Location,
			&order.CreatedAt,
			&order.Status,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// Update rewrites the matching row. An id with no row updates nothing,
// mirroring the file repository's no-op contract.
func (r *Repository) Update(ctx context.Context, order models.Order) error {
	query := `
        UPDATE orders
        SET customer_name = $2, location = $3, created_at = $4, status = $5
        WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Location,
		order.CreatedAt,
		order.Status,
	)
	return err
}
