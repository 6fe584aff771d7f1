package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

// OrderTableService validates and mutates order tables. A table moves
// between unoccupied and occupied; clearing is gated on no outstanding
// non-completed order referencing the table.
type OrderTableService struct {
	tableRepo repository.OrderTableRepository
	orderRepo repository.OrderRepository
}

// NewOrderTableService creates a new order table service
func NewOrderTableService(tableRepo repository.OrderTableRepository, orderRepo repository.OrderRepository) *OrderTableService {
	return &OrderTableService{
		tableRepo: tableRepo,
		orderRepo: orderRepo,
	}
}

// Create persists a new table, unoccupied with zero guests.
func (s *OrderTableService) Create(ctx context.Context, req models.OrderTableRequest) (*models.OrderTable, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: order table name must not be empty", ErrInvalidArgument)
	}

	orderTable := models.OrderTable{
		ID:             uuid.New(),
		Name:           req.Name,
		NumberOfGuests: 0,
		Empty:          true,
	}

	return s.tableRepo.Save(ctx, orderTable)
}

// Sit marks a table occupied. The guest count is deliberately left
// untouched; only Clear resets it.
func (s *OrderTableService) Sit(ctx context.Context, orderTableID uuid.UUID) (*models.OrderTable, error) {
	orderTable, err := s.findOrderTable(ctx, orderTableID)
	if err != nil {
		return nil, err
	}

	orderTable.Empty = false
	return s.tableRepo.Save(ctx, *orderTable)
}

// Clear returns a table to its unoccupied zero-guest state. Blocked
// while any order referencing the table has not completed; current
// occupancy does not matter, so clearing an already-empty table is a
// no-op that succeeds.
func (s *OrderTableService) Clear(ctx context.Context, orderTableID uuid.UUID) (*models.OrderTable, error) {
	orderTable, err := s.findOrderTable(ctx, orderTableID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.orderRepo.ExistsByOrderTableIDAndStatusNot(ctx, orderTable.ID, models.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("%w: order table %s has an order that is not completed", ErrIllegalState, orderTable.ID)
	}

	orderTable.NumberOfGuests = 0
	orderTable.Empty = true
	return s.tableRepo.Save(ctx, *orderTable)
}

// ChangeNumberOfGuests updates the seated guest count of an occupied table.
func (s *OrderTableService) ChangeNumberOfGuests(ctx context.Context, orderTableID uuid.UUID, req models.OrderTableGuestsRequest) (*models.OrderTable, error) {
	if req.NumberOfGuests < 0 {
		return nil, fmt.Errorf("%w: number of guests must not be negative", ErrInvalidArgument)
	}

	orderTable, err := s.findOrderTable(ctx, orderTableID)
	if err != nil {
		return nil, err
	}

	if orderTable.Empty {
		return nil, fmt.Errorf("%w: order table %s is not occupied", ErrIllegalState, orderTable.ID)
	}

	orderTable.NumberOfGuests = req.NumberOfGuests
	return s.tableRepo.Save(ctx, *orderTable)
}

// FindAll returns all persisted order tables
func (s *OrderTableService) FindAll(ctx context.Context) ([]models.OrderTable, error) {
	return s.tableRepo.FindAll(ctx)
}

func (s *OrderTableService) findOrderTable(ctx context.Context, orderTableID uuid.UUID) (*models.OrderTable, error) {
	orderTable, err := s.tableRepo.FindByID(ctx, orderTableID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderTableNotFound) {
			return nil, fmt.Errorf("%w: order table %s", ErrNotFound, orderTableID)
		}
		return nil, err
	}
	return orderTable, nil
}
