package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu is a priced, named bundle of menu products belonging to a menu
// group. A menu may only be displayed while its price does not exceed
// the summed price of its menu products.
type Menu struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  uuid.UUID       `json:"menuGroupId"`
	MenuGroup    *MenuGroup      `json:"menuGroup,omitempty"`
	MenuProducts []MenuProduct   `json:"menuProducts"`
	Displayed    bool            `json:"displayed"`
}

// MenuProduct is a (product, quantity) line item owned by exactly one
// menu. Product holds the persisted product materialized at menu
// creation time.
type MenuProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int64     `json:"quantity"`
}

// ProductsTotal returns the summed price of the menu products,
// quantity times product price, as an exact decimal.
func (m Menu) ProductsTotal() decimal.Decimal {
	return MenuProductsTotal(m.MenuProducts)
}

// MenuProductsTotal sums quantity times product price over the given
// menu products.
func MenuProductsTotal(menuProducts []MenuProduct) decimal.Decimal {
	total := decimal.Zero
	for _, mp := range menuProducts {
		if mp.Product == nil {
			continue
		}
		total = total.Add(mp.Product.Price.Mul(decimal.NewFromInt(mp.Quantity)))
	}
	return total
}
