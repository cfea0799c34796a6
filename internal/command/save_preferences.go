package command

import (
	"context"
	"fmt"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

// SavePreferencesRequest is an explicit full-profile save from the user.
type SavePreferencesRequest struct {
	Profile domain.UserPreferences
}

type SavePreferencesResult struct {
	Profile domain.UserPreferences
}

// SavePreferences normalizes the submitted profile (set semantics, entry
// cap), persists it wholesale, and makes it the active profile.
type SavePreferences struct {
	Store datasources.PreferenceStore
	State *state.App
}

// NewSavePreferences creates a properly initialized SavePreferences command.
func NewSavePreferences(store datasources.PreferenceStore, appState *state.App) *SavePreferences {
	return &SavePreferences{
		Store: store,
		State: appState,
	}
}

func (c *SavePreferences) Execute(ctx context.Context, req SavePreferencesRequest) (SavePreferencesResult, error) {
	normalized := req.Profile.Normalized()

	if err := c.Store.Save(ctx, normalized); err != nil {
		return SavePreferencesResult{}, fmt.Errorf("persisting preferences: %w", err)
	}
	c.State.SetProfile(normalized)

	return SavePreferencesResult{Profile: normalized}, nil
}
