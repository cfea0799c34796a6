package command

import (
	"context"
	"fmt"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

type LearnPreferencesRequest struct{}

// LearnPreferencesResult carries the merged profile after a successful run.
type LearnPreferencesResult struct {
	Profile domain.UserPreferences
}

// LearnPreferences derives keyword/category signals from the liked subset of
// the current digest and merges them into the profile. The liked items and
// profile are snapshotted at entry; on any analyzer or persistence failure
// the profile is left unchanged. The merged result is applied to whatever is
// the latest profile at completion time, last-write-wins.
type LearnPreferences struct {
	Analyzer datasources.PreferenceAnalyzer
	Store    datasources.PreferenceStore
	State    *state.App
}

// NewLearnPreferences creates a properly initialized LearnPreferences command.
func NewLearnPreferences(
	analyzer datasources.PreferenceAnalyzer,
	store datasources.PreferenceStore,
	appState *state.App,
) *LearnPreferences {
	return &LearnPreferences{
		Analyzer: analyzer,
		Store:    store,
		State:    appState,
	}
}

func (c *LearnPreferences) Execute(ctx context.Context, _ LearnPreferencesRequest) (LearnPreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	liked, profile := c.State.LearnSnapshot()
	if len(liked) == 0 {
		return LearnPreferencesResult{}, domain.ErrNoLikedItems
	}

	signals, err := c.Analyzer.AnalyzePreferences(ctx, liked)
	if err != nil {
		return LearnPreferencesResult{}, fmt.Errorf("%w: %w", domain.ErrLearningService, err)
	}

	merged := domain.ApplyLearnedSignals(profile, signals)

	if err := c.Store.Save(ctx, merged); err != nil {
		return LearnPreferencesResult{}, fmt.Errorf("%w: %w", domain.ErrLearningService, err)
	}
	c.State.SetProfile(merged)

	logger.InfoContext(ctx, "preferences learned from liked items",
		"liked_count", len(liked),
		"keyword_count", len(merged.Keywords),
		"liked_category_count", len(merged.LikedCategories),
	)

	return LearnPreferencesResult{Profile: merged}, nil
}
