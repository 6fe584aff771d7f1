package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"kitchenpos/internal/models"
	"kitchenpos/internal/service"
)

// MenuGroupHandler handles menu-group-related HTTP requests
type MenuGroupHandler struct {
	menuGroupService *service.MenuGroupService
	log              *slog.Logger
}

// NewMenuGroupHandler creates a new menu group handler
func NewMenuGroupHandler(menuGroupService *service.MenuGroupService, log *slog.Logger) *MenuGroupHandler {
	return &MenuGroupHandler{
		menuGroupService: menuGroupService,
		log:              log,
	}
}

// Create handles POST /api/menu-groups
func (h *MenuGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MenuGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode menu group request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	menuGroup, err := h.menuGroupService.Create(r.Context(), req)
	if err != nil {
		h.log.Warn("failed to create menu group", "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, menuGroup, h.log)
	h.log.Info("menu group created", "menu_group_id", menuGroup.ID)
}

// List handles GET /api/menu-groups
func (h *MenuGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	menuGroups, err := h.menuGroupService.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to list menu groups", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, menuGroups, h.log)
}
