// Package orders implements the promo order lifecycle on top of a
// repository.
package orders

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/aklbites/jamwhopper/internal/store"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)

// idFloor is the lowest id the service hands out on a fresh ledger.
const idFloor = 1000

type Service struct {
	repo store.OrderRepository

	mu     sync.Mutex
	nextID int64
}

// NewService seeds the id counter from the highest persisted id so restarts
// never reuse an identifier.
func NewService(ctx context.Context, repo store.OrderRepository) (*Service, error) {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	nextID := int64(idFloor)
	for _, order := range existing {
		if order.ID >= nextID {
			nextID = order.ID + 1
		}
	}
	return &Service{repo: repo, nextID: nextID}, nil
}

func (s *Service) allocateID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// CreateOrder persists a new pending order and returns it.
func (s *Service) CreateOrder(ctx context.Context, customerName, location string) (models.Order, error) {
	order := models.Order{
		ID:           s.allocateID(),
		CustomerName: customerName,
		Location:     location,
		CreatedAt:    time.Now(),
		Status:       models.OrderStatusPending,
	}
	if err := s.repo.Save(ctx, order); err != nil {
		return models.Order{}, err
	}

	log.Printf("New order created: %d for %s at %s", order.ID, customerName, location)
	return order, nil
}

func (s *Service) Orders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

// CancelOrder transitions a pending order to removed. Cancelling an already
// removed order or an unknown id reports a warning through the returned
// sentinel, never a hard failure.
func (s *Service) CancelOrder(ctx context.Context, id int64) (models.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.Order{}, err
	}

	for _, order := range orders {
		if order.ID != id {
			continue
		}
		if order.IsCancelled() {
			log.Printf("Order %d has already been cancelled.", id)
			return models.Order{}, ErrAlreadyCancelled
		}
		order.Cancel()
		if err := s.repo.Update(ctx, order); err != nil {
			return models.Order{}, err
		}
		log.Printf("Order %d has been cancelled.", id)
		return order, nil
	}

	log.Printf("Order %d not found.", id)
	return models.Order{}, ErrOrderNotFound
}
