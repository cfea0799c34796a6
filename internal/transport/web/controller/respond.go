package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/curatednews/digest/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Every failure becomes
// a JSON notice the frontend shows as a transient toast; nothing is fatal.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrFetchInFlight):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNoLikedItems):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingWebhook):
		status = http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrUnknownItem):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrFetch),
		errors.Is(err, domain.ErrLearningService),
		errors.Is(err, domain.ErrDeliveryTransport),
		errors.Is(err, domain.ErrClipboard):
		status = http.StatusBadGateway
	}

	respondJSON(w, r, status, errorResponse{Error: err.Error()})
}
