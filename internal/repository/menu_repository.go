package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	Save(ctx context.Context, menu models.Menu) (*models.Menu, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Menu, error)
	FindAll(ctx context.Context) ([]models.Menu, error)
	FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]models.Menu, error)
}

// InMemoryMenuRepository implements MenuRepository with in-memory storage
type InMemoryMenuRepository struct {
	mu    sync.RWMutex
	menus map[uuid.UUID]models.Menu
}

// NewInMemoryMenuRepository creates a new in-memory menu repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		menus: make(map[uuid.UUID]models.Menu),
	}
}

// Save upserts a menu keyed by its identity, assigning one if absent
func (r *InMemoryMenuRepository) Save(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	if menu.ID == uuid.Nil {
		menu.ID = uuid.New()
	}
	menu = cloneMenu(menu)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.menus[menu.ID] = menu

	out := cloneMenu(menu)
	return &out, nil
}

// FindByID returns a menu by its ID
func (r *InMemoryMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menu, exists := r.menus[id]
	if !exists {
		return nil, ErrMenuNotFound
	}
	out := cloneMenu(menu)
	return &out, nil
}

// FindAll returns all menus
func (r *InMemoryMenuRepository) FindAll(ctx context.Context) ([]models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menus := make([]models.Menu, 0, len(r.menus))
	for _, menu := range r.menus {
		menus = append(menus, cloneMenu(menu))
	}
	return menus, nil
}

// FindAllByProductID returns all menus containing the given product
func (r *InMemoryMenuRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var menus []models.Menu
	for _, menu := range r.menus {
		for _, mp := range menu.MenuProducts {
			if mp.ProductID == productID {
				menus = append(menus, cloneMenu(menu))
				break
			}
		}
	}
	return menus, nil
}

// cloneMenu deep-copies the menu product list so callers never share
// mutable state with the stored value.
func cloneMenu(menu models.Menu) models.Menu {
	if menu.MenuGroup != nil {
		group := *menu.MenuGroup
		menu.MenuGroup = &group
	}
	menuProducts := make([]models.MenuProduct, len(menu.MenuProducts))
	for i, mp := range menu.MenuProducts {
		if mp.Product != nil {
			product := *mp.Product
			mp.Product = &product
		}
		menuProducts[i] = mp
	}
	menu.MenuProducts = menuProducts
	return menu
}
