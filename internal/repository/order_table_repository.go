package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
)

var (
	ErrOrderTableNotFound = errors.New("order table not found")
)

// OrderTableRepository defines the interface for order table data access
type OrderTableRepository interface {
	Save(ctx context.Context, orderTable models.OrderTable) (*models.OrderTable, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.OrderTable, error)
	FindAll(ctx context.Context) ([]models.OrderTable, error)
}

// InMemoryOrderTableRepository implements OrderTableRepository with in-memory storage
type InMemoryOrderTableRepository struct {
	mu     sync.RWMutex
	tables map[uuid.UUID]models.OrderTable
}

// NewInMemoryOrderTableRepository creates a new in-memory order table repository
func NewInMemoryOrderTableRepository() *InMemoryOrderTableRepository {
	return &InMemoryOrderTableRepository{
		tables: make(map[uuid.UUID]models.OrderTable),
	}
}

// Save upserts an order table keyed by its identity, assigning one if absent
func (r *InMemoryOrderTableRepository) Save(ctx context.Context, orderTable models.OrderTable) (*models.OrderTable, error) {
	if orderTable.ID == uuid.Nil {
		orderTable.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[orderTable.ID] = orderTable
	return &orderTable, nil
}

// FindByID returns an order table by its ID
func (r *InMemoryOrderTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.OrderTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderTable, exists := r.tables[id]
	if !exists {
		return nil, ErrOrderTableNotFound
	}
	return &orderTable, nil
}

// FindAll returns all order tables
func (r *InMemoryOrderTableRepository) FindAll(ctx context.Context) ([]models.OrderTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]models.OrderTable, 0, len(r.tables))
	for _, orderTable := range r.tables {
		tables = append(tables, orderTable)
	}
	return tables, nil
}
