package models

import "github.com/google/uuid"

// OrderTable is a physical seating unit. A table starts unoccupied
// with zero guests; sitting marks it occupied, clearing returns it to
// the initial state. Tables are reused indefinitely.
type OrderTable struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Empty          bool      `json:"empty"`
}
