package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

type orderTableServiceFixture struct {
	tableRepo *repository.InMemoryOrderTableRepository
	orderRepo *repository.InMemoryOrderRepository
	service   *OrderTableService
}

func newOrderTableServiceFixture() *orderTableServiceFixture {
	f := &orderTableServiceFixture{
		tableRepo: repository.NewInMemoryOrderTableRepository(),
		orderRepo: repository.NewInMemoryOrderRepository(),
	}
	f.service = NewOrderTableService(f.tableRepo, f.orderRepo)
	return f
}

func (f *orderTableServiceFixture) createTable(t *testing.T) *models.OrderTable {
	t.Helper()
	orderTable, err := f.service.Create(context.Background(), models.OrderTableRequest{Name: "table 1"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}
	return orderTable
}

func TestOrderTableService_Create(t *testing.T) {
	f := newOrderTableServiceFixture()

	orderTable, err := f.service.Create(context.Background(), models.OrderTableRequest{Name: "table 1"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	if orderTable.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}
	if orderTable.Name != "table 1" {
		t.Errorf("Create() name = %q, want %q", orderTable.Name, "table 1")
	}
	if orderTable.NumberOfGuests != 0 {
		t.Errorf("Create() number of guests = %d, want 0", orderTable.NumberOfGuests)
	}
	if !orderTable.Empty {
		t.Error("Create() empty = false, want true")
	}
}

func TestOrderTableService_Create_EmptyName(t *testing.T) {
	f := newOrderTableServiceFixture()

	_, err := f.service.Create(context.Background(), models.OrderTableRequest{Name: ""})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Create() error = %v, want ErrInvalidArgument", err)
	}
}

func TestOrderTableService_Sit(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)

	seated, err := f.service.Sit(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("Sit() unexpected error = %v", err)
	}
	if seated.Empty {
		t.Error("Sit() empty = true, want false")
	}
}

func TestOrderTableService_Sit_TableNotFound(t *testing.T) {
	f := newOrderTableServiceFixture()

	_, err := f.service.Sit(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Sit() error = %v, want ErrNotFound", err)
	}
}

func TestOrderTableService_Clear(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)
	if _, err := f.service.Sit(context.Background(), saved.ID); err != nil {
		t.Fatalf("Sit() unexpected error = %v", err)
	}

	cleared, err := f.service.Clear(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("Clear() unexpected error = %v", err)
	}

	if cleared.NumberOfGuests != 0 {
		t.Errorf("Clear() number of guests = %d, want 0", cleared.NumberOfGuests)
	}
	if !cleared.Empty {
		t.Error("Clear() empty = false, want true")
	}
}

func TestOrderTableService_Clear_BlockedByOpenOrder(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)

	_, err := f.orderRepo.Save(context.Background(), models.Order{
		Type:         models.OrderTypeEatIn,
		Status:       models.OrderStatusWaiting,
		OrderTableID: saved.ID,
	})
	if err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	_, err = f.service.Clear(context.Background(), saved.ID)
	if !errors.Is(err, ErrIllegalState) {
		t.Errorf("Clear() error = %v, want ErrIllegalState", err)
	}

	// The persisted table must be unchanged.
	stored, err := f.tableRepo.FindByID(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error = %v", err)
	}
	if *stored != *saved {
		t.Errorf("stored table = %+v, want %+v", stored, saved)
	}
}

func TestOrderTableService_Clear_CompletedOrderDoesNotBlock(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)

	_, err := f.orderRepo.Save(context.Background(), models.Order{
		Type:         models.OrderTypeEatIn,
		Status:       models.OrderStatusCompleted,
		OrderTableID: saved.ID,
	})
	if err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	if _, err := f.service.Clear(context.Background(), saved.ID); err != nil {
		t.Errorf("Clear() unexpected error = %v", err)
	}
}

func TestOrderTableService_ChangeNumberOfGuests(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)
	if _, err := f.service.Sit(context.Background(), saved.ID); err != nil {
		t.Fatalf("Sit() unexpected error = %v", err)
	}

	updated, err := f.service.ChangeNumberOfGuests(context.Background(), saved.ID, models.OrderTableGuestsRequest{NumberOfGuests: 5})
	if err != nil {
		t.Fatalf("ChangeNumberOfGuests() unexpected error = %v", err)
	}
	if updated.NumberOfGuests != 5 {
		t.Errorf("ChangeNumberOfGuests() number of guests = %d, want 5", updated.NumberOfGuests)
	}
}

func TestOrderTableService_ChangeNumberOfGuests_Negative(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)
	if _, err := f.service.Sit(context.Background(), saved.ID); err != nil {
		t.Fatalf("Sit() unexpected error = %v", err)
	}

	_, err := f.service.ChangeNumberOfGuests(context.Background(), saved.ID, models.OrderTableGuestsRequest{NumberOfGuests: -1})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ChangeNumberOfGuests() error = %v, want ErrInvalidArgument", err)
	}
}

func TestOrderTableService_ChangeNumberOfGuests_NotSeated(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved := f.createTable(t)

	_, err := f.service.ChangeNumberOfGuests(context.Background(), saved.ID, models.OrderTableGuestsRequest{NumberOfGuests: 5})
	if !errors.Is(err, ErrIllegalState) {
		t.Errorf("ChangeNumberOfGuests() error = %v, want ErrIllegalState", err)
	}
}

func TestOrderTableService_FindAll(t *testing.T) {
	f := newOrderTableServiceFixture()
	saved1 := f.createTable(t)
	saved2 := f.createTable(t)

	tables, err := f.service.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() unexpected error = %v", err)
	}

	if len(tables) != 2 {
		t.Fatalf("FindAll() returned %d tables, want 2", len(tables))
	}
	found := map[uuid.UUID]bool{}
	for _, table := range tables {
		found[table.ID] = true
	}
	if !found[saved1.ID] || !found[saved2.ID] {
		t.Errorf("FindAll() = %v, want both %s and %s", found, saved1.ID, saved2.ID)
	}
}

// Full table lifecycle: create, seat, count guests, clear, reusable.
func TestOrderTableService_Lifecycle(t *testing.T) {
	f := newOrderTableServiceFixture()
	ctx := context.Background()

	table, err := f.service.Create(ctx, models.OrderTableRequest{Name: "T1"})
	if err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	if _, err := f.service.Sit(ctx, table.ID); err != nil {
		t.Fatalf("Sit() unexpected error = %v", err)
	}

	seated, err := f.service.ChangeNumberOfGuests(ctx, table.ID, models.OrderTableGuestsRequest{NumberOfGuests: 5})
	if err != nil {
		t.Fatalf("ChangeNumberOfGuests() unexpected error = %v", err)
	}
	if seated.NumberOfGuests != 5 || seated.Empty {
		t.Errorf("after seating: guests = %d empty = %v, want 5 and false", seated.NumberOfGuests, seated.Empty)
	}

	cleared, err := f.service.Clear(ctx, table.ID)
	if err != nil {
		t.Fatalf("Clear() unexpected error = %v", err)
	}
	if cleared.NumberOfGuests != 0 || !cleared.Empty {
		t.Errorf("after clearing: guests = %d empty = %v, want 0 and true", cleared.NumberOfGuests, cleared.Empty)
	}

	// Clearing an already-empty table stays permitted.
	if _, err := f.service.Clear(ctx, table.ID); err != nil {
		t.Errorf("Clear() on empty table unexpected error = %v", err)
	}
}
