package controller

import (
	"net/http"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/domain"
)

// DispatchResponse reports which path the digest went out on, so the
// frontend can tell the user whether the webhook worked or the payload
// landed on the clipboard.
type DispatchResponse struct {
	Delivered      command.DeliveryPath `json:"delivered"`
	TransportError string               `json:"transport_error,omitempty"`
}

// DigestDispatch handles POST /v1/digest/dispatch.
type DigestDispatch struct {
	DispatchCmd command.Command[command.DispatchDigestRequest, command.DispatchDigestResult]
}

func (c DigestDispatch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.DispatchCmd.Execute(ctx, command.DispatchDigestRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to dispatch digest", "error", err)
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, DispatchResponse{
		Delivered:      result.Delivered,
		TransportError: result.TransportError,
	})
}

// DigestCopy handles POST /v1/digest/copy.
type DigestCopy struct {
	CopyCmd command.Command[command.CopyDigestRequest, command.Empty]
}

func (c DigestCopy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.CopyCmd.Execute(ctx, command.CopyDigestRequest{}); err != nil {
		logger.ErrorContext(ctx, "unable to copy digest", "error", err)
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
