package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"kitchenpos/internal/service"
)

// WriteServiceError maps the service error kinds onto HTTP statuses:
// invalid argument -> 400, not found -> 404, illegal state -> 409,
// anything else -> 500.
func WriteServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, service.ErrIllegalState):
		WriteError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error("unexpected service error", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
