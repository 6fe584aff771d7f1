package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kitchenpos/internal/models"
	"kitchenpos/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
	log         *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		log:         log,
	}
}

// Create handles POST /api/menus
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode menu request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	menu, err := h.menuService.Create(r.Context(), req)
	if err != nil {
		h.log.Warn("failed to create menu", "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, menu, h.log)
	h.log.Info("menu created", "menu_id", menu.ID, "menu_products", len(menu.MenuProducts))
}

// ChangePrice handles PUT /api/menus/{menuId}/price
func (h *MenuHandler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	menuID, ok := h.menuID(w, r)
	if !ok {
		return
	}

	var req models.MenuPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode menu price request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	menu, err := h.menuService.ChangePrice(r.Context(), menuID, req)
	if err != nil {
		h.log.Warn("failed to change menu price", "menu_id", menuID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.log)
}

// Display handles PUT /api/menus/{menuId}/display
func (h *MenuHandler) Display(w http.ResponseWriter, r *http.Request) {
	menuID, ok := h.menuID(w, r)
	if !ok {
		return
	}

	menu, err := h.menuService.Display(r.Context(), menuID)
	if err != nil {
		h.log.Warn("failed to display menu", "menu_id", menuID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.log)
}

// Hide handles PUT /api/menus/{menuId}/hide
func (h *MenuHandler) Hide(w http.ResponseWriter, r *http.Request) {
	menuID, ok := h.menuID(w, r)
	if !ok {
		return
	}

	menu, err := h.menuService.Hide(r.Context(), menuID)
	if err != nil {
		h.log.Warn("failed to hide menu", "menu_id", menuID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.log)
}

// List handles GET /api/menus
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menuService.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to list menus", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, menus, h.log)
}

func (h *MenuHandler) menuID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	menuID, err := uuid.Parse(chi.URLParam(r, "menuId"))
	if err != nil {
		h.log.Warn("invalid menu ID", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return uuid.Nil, false
	}
	return menuID, true
}
