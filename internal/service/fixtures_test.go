package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
)

// fakeScreener flags exactly the words it was created with.
type fakeScreener struct {
	profane map[string]bool
}

func newFakeScreener(words ...string) *fakeScreener {
	profane := make(map[string]bool, len(words))
	for _, w := range words {
		profane[w] = true
	}
	return &fakeScreener{profane: profane}
}

func (f *fakeScreener) IsProfane(ctx context.Context, text string) (bool, error) {
	return f.profane[text], nil
}

func money(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func saveProduct(t *testing.T, repo repository.ProductRepository, price int64) *models.Product {
	t.Helper()
	product, err := repo.Save(context.Background(), models.Product{
		ID:    uuid.New(),
		Name:  "fried chicken",
		Price: decimal.NewFromInt(price),
	})
	if err != nil {
		t.Fatalf("saving product: %v", err)
	}
	return product
}

func saveMenuGroup(t *testing.T, repo repository.MenuGroupRepository) *models.MenuGroup {
	t.Helper()
	menuGroup, err := repo.Save(context.Background(), models.MenuGroup{
		ID:   uuid.New(),
		Name: "recommended",
	})
	if err != nil {
		t.Fatalf("saving menu group: %v", err)
	}
	return menuGroup
}
