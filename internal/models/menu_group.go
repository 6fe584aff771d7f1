package models

import "github.com/google/uuid"

// MenuGroup is a named category label for menus.
type MenuGroup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
