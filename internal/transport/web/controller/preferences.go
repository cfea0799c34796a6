package controller

import (
	"encoding/json"
	"net/http"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

// PreferencesResponse wraps the profile for both get and save.
type PreferencesResponse struct {
	Profile domain.UserPreferences `json:"profile"`
}

// PreferencesGet handles GET /v1/preferences.
type PreferencesGet struct {
	State *state.App
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, PreferencesResponse{Profile: c.State.Profile()})
}

// PreferencesSave handles PUT /v1/preferences.
type PreferencesSave struct {
	SaveCmd command.Command[command.SavePreferencesRequest, command.SavePreferencesResult]
}

func (c PreferencesSave) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var profile domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.SaveCmd.Execute(ctx, command.SavePreferencesRequest{Profile: profile})
	if err != nil {
		logger.ErrorContext(ctx, "unable to save preferences", "error", err)
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, PreferencesResponse{Profile: result.Profile})
}
