package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
)

// OrderRepository defines the order data access consumed by the table
// engine. The only query it needs is whether a table is still blocked
// by an order that has not reached the given terminal status.
type OrderRepository interface {
	Save(ctx context.Context, order models.Order) (*models.Order, error)
	ExistsByOrderTableIDAndStatusNot(ctx context.Context, orderTableID uuid.UUID, status models.OrderStatus) (bool, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]models.Order
}

// NewInMemoryOrderRepository creates a new in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[uuid.UUID]models.Order),
	}
}

// Save upserts an order keyed by its identity, assigning one if absent
func (r *InMemoryOrderRepository) Save(ctx context.Context, order models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return &order, nil
}

// ExistsByOrderTableIDAndStatusNot reports whether any order references
// the given table with a status other than the one given
func (r *InMemoryOrderRepository) ExistsByOrderTableIDAndStatusNot(ctx context.Context, orderTableID uuid.UUID, status models.OrderStatus) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.OrderTableID == orderTableID && order.Status != status {
			return true, nil
		}
	}
	return false, nil
}
