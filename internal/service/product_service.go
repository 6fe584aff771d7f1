package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

// ProductService validates and mutates products. Repricing a product
// sweeps the menus that contain it and hides any menu whose price now
// exceeds the recomputed menu products total, keeping the menu price
// invariant from going stale.
type ProductService struct {
	productRepo repository.ProductRepository
	menuRepo    repository.MenuRepository
	screener    NameScreener
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, menuRepo repository.MenuRepository, screener NameScreener) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		menuRepo:    menuRepo,
		screener:    screener,
	}
}

// Create validates and persists a new product.
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: product price must be present and not negative", ErrInvalidArgument)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", ErrInvalidArgument)
	}
	profane, err := s.screener.IsProfane(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("screening product name: %w", err)
	}
	if profane {
		return nil, fmt.Errorf("%w: product name contains disallowed content", ErrInvalidArgument)
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	product := models.Product{
		ID:    id,
		Name:  req.Name,
		Price: *req.Price,
	}

	return s.productRepo.Save(ctx, product)
}

// ChangePrice overwrites the price of an existing product and hides
// every menu containing it whose price now exceeds the menu products
// total.
func (s *ProductService) ChangePrice(ctx context.Context, productID uuid.UUID, req models.ProductPriceRequest) (*models.Product, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: product price must be present and not negative", ErrInvalidArgument)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	product.Price = *req.Price
	saved, err := s.productRepo.Save(ctx, *product)
	if err != nil {
		return nil, err
	}

	menus, err := s.menuRepo.FindAllByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, menu := range menus {
		// Refresh the materialized product snapshots before recomputing
		// the total the repriced product contributes to.
		for i := range menu.MenuProducts {
			if menu.MenuProducts[i].ProductID == productID && menu.MenuProducts[i].Product != nil {
				menu.MenuProducts[i].Product.Price = saved.Price
			}
		}
		if menu.Price.Cmp(menu.ProductsTotal()) > 0 {
			menu.Displayed = false
		}
		if _, err := s.menuRepo.Save(ctx, menu); err != nil {
			return nil, err
		}
	}

	return saved, nil
}

// FindAll returns all persisted products
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.FindAll(ctx)
}
