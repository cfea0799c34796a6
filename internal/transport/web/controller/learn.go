package controller

import (
	"net/http"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/domain"
)

// LearnResponse carries the merged profile after a learning run.
type LearnResponse struct {
	Profile domain.UserPreferences `json:"profile"`
}

// PreferencesLearn handles POST /v1/digest/learn.
type PreferencesLearn struct {
	LearnCmd command.Command[command.LearnPreferencesRequest, command.LearnPreferencesResult]
}

func (c PreferencesLearn) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.LearnCmd.Execute(ctx, command.LearnPreferencesRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to learn preferences", "error", err)
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, LearnResponse{Profile: result.Profile})
}
