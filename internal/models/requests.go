package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request shapes accepted by the service layer. Prices are pointers so
// an absent price is distinguishable from zero.

// MenuRequest creates a menu.
type MenuRequest struct {
	ID           uuid.UUID            `json:"id,omitempty"`
	Name         string               `json:"name"`
	Price        *decimal.Decimal     `json:"price"`
	MenuGroupID  uuid.UUID            `json:"menuGroupId"`
	MenuProducts []MenuProductRequest `json:"menuProducts"`
	Displayed    bool                 `json:"displayed"`
}

// MenuProductRequest is one (product id, quantity) line of a MenuRequest.
type MenuProductRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int64     `json:"quantity"`
}

// MenuPriceRequest changes the price of an existing menu.
type MenuPriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// ProductRequest creates a product.
type ProductRequest struct {
	ID    uuid.UUID        `json:"id,omitempty"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// ProductPriceRequest changes the price of an existing product.
type ProductPriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

// MenuGroupRequest creates a menu group.
type MenuGroupRequest struct {
	ID   uuid.UUID `json:"id,omitempty"`
	Name string    `json:"name"`
}

// OrderTableRequest creates an order table.
type OrderTableRequest struct {
	Name string `json:"name"`
}

// OrderTableGuestsRequest changes the seated guest count of a table.
type OrderTableGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}
