package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

// NameScreener reports whether display-facing text contains disallowed
// content. An error means the screening backend itself failed and is
// escalated, never swallowed.
type NameScreener interface {
	IsProfane(ctx context.Context, text string) (bool, error)
}

// MenuService validates and mutates menus against menu group and
// product state. The central invariant: a menu's price must never
// exceed the summed price (quantity x product price) of its menu
// products.
type MenuService struct {
	menuRepo      repository.MenuRepository
	menuGroupRepo repository.MenuGroupRepository
	productRepo   repository.ProductRepository
	screener      NameScreener
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuRepo repository.MenuRepository,
	menuGroupRepo repository.MenuGroupRepository,
	productRepo repository.ProductRepository,
	screener NameScreener,
) *MenuService {
	return &MenuService{
		menuRepo:      menuRepo,
		menuGroupRepo: menuGroupRepo,
		productRepo:   productRepo,
		screener:      screener,
	}
}

// Create validates and persists a new menu. The request's product and
// menu group references must resolve to persisted entities; the menu
// product list is materialized against the live products.
func (s *MenuService) Create(ctx context.Context, req models.MenuRequest) (*models.Menu, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: menu price must be present and not negative", ErrInvalidArgument)
	}
	if len(req.MenuProducts) == 0 {
		return nil, fmt.Errorf("%w: menu must contain at least one menu product", ErrInvalidArgument)
	}

	menuProducts := make([]models.MenuProduct, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		product, err := s.productRepo.FindByID(ctx, mp.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, fmt.Errorf("%w: menu product references unregistered product %s", ErrInvalidArgument, mp.ProductID)
			}
			return nil, err
		}
		menuProducts = append(menuProducts, models.MenuProduct{
			ProductID: product.ID,
			Product:   product,
			Quantity:  mp.Quantity,
		})
	}

	menuGroup, err := s.menuGroupRepo.FindByID(ctx, req.MenuGroupID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuGroupNotFound) {
			return nil, fmt.Errorf("%w: menu group %s does not exist", ErrInvalidArgument, req.MenuGroupID)
		}
		return nil, err
	}

	for _, mp := range menuProducts {
		if mp.Quantity < 0 {
			return nil, fmt.Errorf("%w: menu product quantity must not be negative", ErrInvalidArgument)
		}
	}

	sum := models.MenuProductsTotal(menuProducts)
	if req.Price.Cmp(sum) > 0 {
		return nil, fmt.Errorf("%w: menu price %s exceeds menu products total %s", ErrInvalidArgument, req.Price, sum)
	}

	if err := s.checkName(ctx, req.Name); err != nil {
		return nil, err
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	menu := models.Menu{
		ID:           id,
		Name:         req.Name,
		Price:        *req.Price,
		MenuGroupID:  menuGroup.ID,
		MenuGroup:    menuGroup,
		MenuProducts: menuProducts,
		Displayed:    req.Displayed,
	}

	return s.menuRepo.Save(ctx, menu)
}

// ChangePrice overwrites the price of an existing menu. The new price
// is checked against the sum over the menu's existing menu products.
func (s *MenuService) ChangePrice(ctx context.Context, menuID uuid.UUID, req models.MenuPriceRequest) (*models.Menu, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: menu price must be present and not negative", ErrInvalidArgument)
	}

	menu, err := s.findMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	sum := menu.ProductsTotal()
	if req.Price.Cmp(sum) > 0 {
		return nil, fmt.Errorf("%w: menu price %s exceeds menu products total %s", ErrInvalidArgument, req.Price, sum)
	}

	menu.Price = *req.Price
	return s.menuRepo.Save(ctx, *menu)
}

// Display makes a menu visible. The price invariant is re-checked
// because the stored state may have gone stale since creation; a
// violation here is a state conflict, not a bad input.
func (s *MenuService) Display(ctx context.Context, menuID uuid.UUID) (*models.Menu, error) {
	menu, err := s.findMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	sum := menu.ProductsTotal()
	if menu.Price.Cmp(sum) > 0 {
		return nil, fmt.Errorf("%w: menu price %s exceeds menu products total %s", ErrIllegalState, menu.Price, sum)
	}

	menu.Displayed = true
	return s.menuRepo.Save(ctx, *menu)
}

// Hide makes a menu invisible. No price check applies.
func (s *MenuService) Hide(ctx context.Context, menuID uuid.UUID) (*models.Menu, error) {
	menu, err := s.findMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	menu.Displayed = false
	return s.menuRepo.Save(ctx, *menu)
}

// FindAll returns all persisted menus
func (s *MenuService) FindAll(ctx context.Context) ([]models.Menu, error) {
	return s.menuRepo.FindAll(ctx)
}

func (s *MenuService) findMenu(ctx context.Context, menuID uuid.UUID) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, fmt.Errorf("%w: menu %s", ErrNotFound, menuID)
		}
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) checkName(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: menu name must not be empty", ErrInvalidArgument)
	}
	profane, err := s.screener.IsProfane(ctx, name)
	if err != nil {
		return fmt.Errorf("screening menu name: %w", err)
	}
	if profane {
		return fmt.Errorf("%w: menu name contains disallowed content", ErrInvalidArgument)
	}
	return nil
}
