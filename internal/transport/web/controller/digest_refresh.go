package controller

import (
	"net/http"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/domain"
)

// DigestRefresh handles POST /v1/digest/refresh.
type DigestRefresh struct {
	FetchCmd command.Command[command.FetchDigestRequest, command.FetchDigestResult]
}

func (c DigestRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.FetchCmd.Execute(ctx, command.FetchDigestRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to refresh digest", "error", err)
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, DigestResponse{
		Status:   domain.DigestStatusSuccess,
		Items:    result.Items,
		Feedback: domain.NewFeedback(),
	})
}
