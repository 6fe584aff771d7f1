package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kitchenpos/internal/models"
	"kitchenpos/internal/repository"
	"kitchenpos/internal/service"
)

type cleanScreener struct{}

func (cleanScreener) IsProfane(ctx context.Context, text string) (bool, error) {
	return text == "badword", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type menuHandlerFixture struct {
	router  *chi.Mux
	product *models.Product
	group   *models.MenuGroup

	menuRepo *repository.InMemoryMenuRepository
}

func newMenuHandlerFixture(t *testing.T) *menuHandlerFixture {
	t.Helper()

	menuRepo := repository.NewInMemoryMenuRepository()
	menuGroupRepo := repository.NewInMemoryMenuGroupRepository()
	productRepo := repository.NewInMemoryProductRepository()
	menuService := service.NewMenuService(menuRepo, menuGroupRepo, productRepo, cleanScreener{})
	handler := NewMenuHandler(menuService, testLogger())

	r := chi.NewRouter()
	r.Post("/api/menus", handler.Create)
	r.Put("/api/menus/{menuId}/price", handler.ChangePrice)
	r.Put("/api/menus/{menuId}/display", handler.Display)
	r.Put("/api/menus/{menuId}/hide", handler.Hide)
	r.Get("/api/menus", handler.List)

	product, err := productRepo.Save(context.Background(), models.Product{
		Name:  "fried chicken",
		Price: decimal.NewFromInt(10_000),
	})
	if err != nil {
		t.Fatalf("saving product: %v", err)
	}
	group, err := menuGroupRepo.Save(context.Background(), models.MenuGroup{Name: "recommended"})
	if err != nil {
		t.Fatalf("saving menu group: %v", err)
	}

	return &menuHandlerFixture{router: r, product: product, group: group, menuRepo: menuRepo}
}

func (f *menuHandlerFixture) menuRequestBody(price int64) []byte {
	body, _ := json.Marshal(map[string]any{
		"name":        "fried chicken set",
		"price":       price,
		"menuGroupId": f.group.ID,
		"menuProducts": []map[string]any{
			{"productId": f.product.ID, "quantity": 1},
			{"productId": f.product.ID, "quantity": 2},
		},
		"displayed": true,
	})
	return body
}

func (f *menuHandlerFixture) createMenu(t *testing.T) models.Menu {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/menus", bytes.NewReader(f.menuRequestBody(10_000)))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create menu status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body)
	}

	var menu models.Menu
	if err := json.Unmarshal(rec.Body.Bytes(), &menu); err != nil {
		t.Fatalf("decoding menu response: %v", err)
	}
	return menu
}

func TestMenuHandler_Create(t *testing.T) {
	f := newMenuHandlerFixture(t)

	menu := f.createMenu(t)
	if menu.ID == uuid.Nil {
		t.Error("response menu has no ID")
	}
	if len(menu.MenuProducts) != 2 {
		t.Errorf("response menu products = %d, want 2", len(menu.MenuProducts))
	}
}

func TestMenuHandler_Create_Errors(t *testing.T) {
	f := newMenuHandlerFixture(t)

	tests := []struct {
		name       string
		body       []byte
		wantStatus int
	}{
		{name: "malformed body", body: []byte("{not json"), wantStatus: http.StatusBadRequest},
		{name: "price exceeds total", body: f.menuRequestBody(1_000_000), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/menus", bytes.NewReader(tt.body))
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestMenuHandler_ChangePrice_NotFound(t *testing.T) {
	f := newMenuHandlerFixture(t)

	body := []byte(`{"price": 8000}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/menus/%s/price", uuid.New()), bytes.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMenuHandler_ChangePrice_InvalidID(t *testing.T) {
	f := newMenuHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/api/menus/not-a-uuid/price", bytes.NewReader([]byte(`{"price": 8000}`)))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestMenuHandler_Display_Conflict(t *testing.T) {
	f := newMenuHandlerFixture(t)

	// Persist an inconsistent menu directly so display hits the state check.
	menu, err := f.menuRepo.Save(context.Background(), models.Menu{
		Name:  "stale menu",
		Price: decimal.NewFromInt(12_000),
		MenuProducts: []models.MenuProduct{
			{ProductID: f.product.ID, Product: f.product, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("saving menu: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/menus/%s/display", menu.ID), nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestMenuHandler_HideAndList(t *testing.T) {
	f := newMenuHandlerFixture(t)
	menu := f.createMenu(t)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/menus/%s/hide", menu.ID), nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("hide status = %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", rec.Code, http.StatusOK)
	}

	var menus []models.Menu
	if err := json.Unmarshal(rec.Body.Bytes(), &menus); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if len(menus) != 1 {
		t.Fatalf("list returned %d menus, want 1", len(menus))
	}
	if menus[0].Displayed {
		t.Error("menu still displayed after hide")
	}
}
