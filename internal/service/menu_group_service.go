package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

// MenuGroupService manages menu group labels. Groups carry no rules
// beyond a non-empty name.
type MenuGroupService struct {
	menuGroupRepo repository.MenuGroupRepository
}

// NewMenuGroupService creates a new menu group service
func NewMenuGroupService(menuGroupRepo repository.MenuGroupRepository) *MenuGroupService {
	return &MenuGroupService{
		menuGroupRepo: menuGroupRepo,
	}
}

// Create persists a new menu group.
func (s *MenuGroupService) Create(ctx context.Context, req models.MenuGroupRequest) (*models.MenuGroup, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: menu group name must not be empty", ErrInvalidArgument)
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return s.menuGroupRepo.Save(ctx, models.MenuGroup{ID: id, Name: req.Name})
}

// FindAll returns all persisted menu groups
func (s *MenuGroupService) FindAll(ctx context.Context) ([]models.MenuGroup, error) {
	return s.menuGroupRepo.FindAll(ctx)
}
