package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

func TestMenuGroupService_Create(t *testing.T) {
	svc := NewMenuGroupService(repository.NewInMemoryMenuGroupRepository())

	menuGroup, err := svc.Create(context.Background(), models.MenuGroupRequest{Name: "recommended"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	if menuGroup.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}
	if menuGroup.Name != "recommended" {
		t.Errorf("Create() name = %q, want %q", menuGroup.Name, "recommended")
	}
}

func TestMenuGroupService_Create_EmptyName(t *testing.T) {
	svc := NewMenuGroupService(repository.NewInMemoryMenuGroupRepository())

	_, err := svc.Create(context.Background(), models.MenuGroupRequest{Name: ""})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Create() error = %v, want ErrInvalidArgument", err)
	}
}

func TestMenuGroupService_FindAll(t *testing.T) {
	repo := repository.NewInMemoryMenuGroupRepository()
	svc := NewMenuGroupService(repo)

	saved1, err := svc.Create(context.Background(), models.MenuGroupRequest{Name: "recommended"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	saved2, err := svc.Create(context.Background(), models.MenuGroupRequest{Name: "seasonal"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	menuGroups, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() unexpected error = %v", err)
	}
	if len(menuGroups) != 2 {
		t.Fatalf("FindAll() returned %d menu groups, want 2", len(menuGroups))
	}
	found := map[uuid.UUID]bool{}
	for _, g := range menuGroups {
		found[g.ID] = true
	}
	if !found[saved1.ID] || !found[saved2.ID] {
		t.Errorf("FindAll() = %v, want both %s and %s", found, saved1.ID, saved2.ID)
	}
}
