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

// OrderTableHandler handles order-table-related HTTP requests
type OrderTableHandler struct {
	tableService *service.OrderTableService
	log          *slog.Logger
}

// NewOrderTableHandler creates a new order table handler
func NewOrderTableHandler(tableService *service.OrderTableService, log *slog.Logger) *OrderTableHandler {
	return &OrderTableHandler{
		tableService: tableService,
		log:          log,
	}
}

// Create handles POST /api/order-tables
func (h *OrderTableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order table request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderTable, err := h.tableService.Create(r.Context(), req)
	if err != nil {
		h.log.Warn("failed to create order table", "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, orderTable, h.log)
	h.log.Info("order table created", "order_table_id", orderTable.ID)
}

// Sit handles PUT /api/order-tables/{orderTableId}/sit
func (h *OrderTableHandler) Sit(w http.ResponseWriter, r *http.Request) {
	orderTableID, ok := h.orderTableID(w, r)
	if !ok {
		return
	}

	orderTable, err := h.tableService.Sit(r.Context(), orderTableID)
	if err != nil {
		h.log.Warn("failed to seat order table", "order_table_id", orderTableID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orderTable, h.log)
}

// Clear handles PUT /api/order-tables/{orderTableId}/clear
func (h *OrderTableHandler) Clear(w http.ResponseWriter, r *http.Request) {
	orderTableID, ok := h.orderTableID(w, r)
	if !ok {
		return
	}

	orderTable, err := h.tableService.Clear(r.Context(), orderTableID)
	if err != nil {
		h.log.Warn("failed to clear order table", "order_table_id", orderTableID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orderTable, h.log)
}

// ChangeNumberOfGuests handles PUT /api/order-tables/{orderTableId}/number-of-guests
func (h *OrderTableHandler) ChangeNumberOfGuests(w http.ResponseWriter, r *http.Request) {
	orderTableID, ok := h.orderTableID(w, r)
	if !ok {
		return
	}

	var req models.OrderTableGuestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode guests request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderTable, err := h.tableService.ChangeNumberOfGuests(r.Context(), orderTableID, req)
	if err != nil {
		h.log.Warn("failed to change number of guests", "order_table_id", orderTableID, "error", err)
		WriteServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orderTable, h.log)
}

// List handles GET /api/order-tables
func (h *OrderTableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.tableService.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to list order tables", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, tables, h.log)
}

func (h *OrderTableHandler) orderTableID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orderTableID, err := uuid.Parse(chi.URLParam(r, "orderTableId"))
	if err != nil {
		h.log.Warn("invalid order table ID", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return uuid.Nil, false
	}
	return orderTableID, true
}
