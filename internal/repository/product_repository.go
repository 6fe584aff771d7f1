package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Save(ctx context.Context, product models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[uuid.UUID]models.Product),
	}
}

// Save upserts a product keyed by its identity, assigning one if absent
func (r *InMemoryProductRepository) Save(ctx context.Context, product models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return &product, nil
}

// FindByID returns a product by its ID
func (r *InMemoryProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// FindAll returns all products
func (r *InMemoryProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// ExistsByID reports whether a product with the given ID is persisted
func (r *InMemoryProductRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.products[id]
	return exists, nil
}
