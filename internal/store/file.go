package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aklbites/jamwhopper/internal/models"
)

const ordersFileName = "orders.json"

// FileRepository keeps the ledger in memory and mirrors it to a single JSON
// file, rewritten wholesale on every mutation. It assumes a single process
// owns the backing file: two writers sharing it will race and can corrupt
// the rewrite.
type FileRepository struct {
	dataDir string
	path    string

	mu     sync.Mutex
	orders []models.Order
}

// NewFileRepository loads the existing ledger if the backing file is
// present. A malformed file is a hard error, not something to skip past.
func NewFileRepository(dataDir string) (*FileRepository, error) {
	r := &FileRepository{
		dataDir: dataDir,
		path:    filepath.Join(dataDir, ordersFileName),
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read orders file %s: %w", r.path, err)
	}
	if err := json.Unmarshal(data, &r.orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders file %s: %w", r.path, err)
	}
	return r, nil
}

func (r *FileRepository) Save(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	if err := r.flush(); err != nil {
		r.orders = r.orders[:len(r.orders)-1]
		return err
	}
	return nil
}

func (r *FileRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *FileRepository) Update(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == order.ID {
			r.orders[i] = order
			return r.flush()
		}
	}
	return nil
}

// flush rewrites the backing file with the complete ledger. Callers hold the
// mutex.
func (r *FileRepository) flush() error {
	if err := os.MkdirAll(r.dataDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", r.dataDir, err)
	}

	data, err := json.MarshalIndent(r.orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize orders: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write orders file %s: %w", r.path, err)
	}
	return nil
}
