package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a purchasable item. Menus reference products; a product's
// price feeds into the price ceiling of every menu that contains it.
type Product struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
