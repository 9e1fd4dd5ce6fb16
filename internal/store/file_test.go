package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/stretchr/testify/require"
)

func testOrder(id int64, name, location, status string) models.Order {
	return models.Order{
		ID:           id,
		CustomerName: name,
		Location:     location,
		CreatedAt:    time.Date(2024, 5, 17, 12, 30, 45, 0, time.UTC),
		Status:       status,
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	saved := []models.Order{
		testOrder(1000, "Alice", "Queen Street", models.OrderStatusPending),
		testOrder(1001, "Bob", "Dominion Road", models.OrderStatusPending),
		testOrder(1002, "Carol", "Tamaki Drive", models.OrderStatusRemoved),
	}
	for _, order := range saved {
		require.NoError(t, repo.Save(ctx, order))
	}

	// a fresh repository over the same directory must reproduce the ledger
	reloaded, err := NewFileRepository(dir)
	require.NoError(t, err)

	orders, err := reloaded.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, len(saved))
	for i, order := range orders {
		require.Equal(t, saved[i].ID, order.ID)
		require.Equal(t, saved[i].CustomerName, order.CustomerName)
		require.Equal(t, saved[i].Location, order.Location)
		require.Equal(t, saved[i].Status, order.Status)
		require.True(t, saved[i].CreatedAt.Equal(order.CreatedAt))
	}
}

func TestFileRepositoryStartsEmptyWithoutFile(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	orders, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestFileRepositoryCreatesDataDirOnSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), testOrder(1000, "Alice", "Queen Street", models.OrderStatusPending)))

	_, err = os.Stat(filepath.Join(dir, ordersFileName))
	require.NoError(t, err)
}

func TestFileRepositoryUpdateRewritesMatchingOrder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	order := testOrder(1000, "Alice", "Queen Street", models.OrderStatusPending)
	require.NoError(t, repo.Save(ctx, order))

	order.Cancel()
	require.NoError(t, repo.Update(ctx, order))

	reloaded, err := NewFileRepository(dir)
	require.NoError(t, err)
	orders, err := reloaded.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, models.OrderStatusRemoved, orders[0].Status)
}

func TestFileRepositoryUpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, testOrder(1000, "Alice", "Queen Street", models.OrderStatusPending)))
	require.NoError(t, repo.Update(ctx, testOrder(4242, "Mallory", "Nowhere", models.OrderStatusRemoved)))

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, int64(1000), orders[0].ID)
	require.Equal(t, models.OrderStatusPending, orders[0].Status)
}

func TestFileRepositoryRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ordersFileName), []byte("{not json"), 0o644))

	_, err := NewFileRepository(dir)
	require.Error(t, err)
}
