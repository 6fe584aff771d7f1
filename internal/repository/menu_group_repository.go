package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
)

var (
	ErrMenuGroupNotFound = errors.New("menu group not found")
)

// MenuGroupRepository defines the interface for menu group data access
type MenuGroupRepository interface {
	Save(ctx context.Context, menuGroup models.MenuGroup) (*models.MenuGroup, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuGroup, error)
	FindAll(ctx context.Context) ([]models.MenuGroup, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// InMemoryMenuGroupRepository implements MenuGroupRepository with in-memory storage
type InMemoryMenuGroupRepository struct {
	mu         sync.RWMutex
	menuGroups map[uuid.UUID]models.MenuGroup
}

// NewInMemoryMenuGroupRepository creates a new in-memory menu group repository
func NewInMemoryMenuGroupRepository() *InMemoryMenuGroupRepository {
	return &InMemoryMenuGroupRepository{
		menuGroups: make(map[uuid.UUID]models.MenuGroup),
	}
}

// Save upserts a menu group keyed by its identity, assigning one if absent
func (r *InMemoryMenuGroupRepository) Save(ctx context.Context, menuGroup models.MenuGroup) (*models.MenuGroup, error) {
	if menuGroup.ID == uuid.Nil {
		menuGroup.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.menuGroups[menuGroup.ID] = menuGroup
	return &menuGroup, nil
}

// FindByID returns a menu group by its ID
func (r *InMemoryMenuGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menuGroup, exists := r.menuGroups[id]
	if !exists {
		return nil, ErrMenuGroupNotFound
	}
	return &menuGroup, nil
}

// FindAll returns all menu groups
func (r *InMemoryMenuGroupRepository) FindAll(ctx context.Context) ([]models.MenuGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menuGroups := make([]models.MenuGroup, 0, len(r.menuGroups))
	for _, menuGroup := range r.menuGroups {
		menuGroups = append(menuGroups, menuGroup)
	}
	return menuGroups, nil
}

// ExistsByID reports whether a menu group with the given ID is persisted
func (r *InMemoryMenuGroupRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.menuGroups[id]
	return exists, nil
}
