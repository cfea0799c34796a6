package command

import (
	"context"
	"fmt"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

type FetchDigestRequest struct{}

// FetchDigestResult carries the freshly curated items.
type FetchDigestResult struct {
	Items []domain.NewsItem
}

// FetchDigest replaces the current digest with a freshly curated one. The
// profile is snapshotted when the fetch begins; on failure the previous
// digest is left untouched and the status transitions to error.
type FetchDigest struct {
	Curator datasources.NewsCurator
	State   *state.App
}

// NewFetchDigest creates a properly initialized FetchDigest command.
func NewFetchDigest(curator datasources.NewsCurator, appState *state.App) *FetchDigest {
	return &FetchDigest{
		Curator: curator,
		State:   appState,
	}
}

func (c *FetchDigest) Execute(ctx context.Context, _ FetchDigestRequest) (FetchDigestResult, error) {
	logger := domain.LoggerFromContext(ctx)

	profile, err := c.State.BeginFetch()
	if err != nil {
		return FetchDigestResult{}, err
	}

	items, err := c.Curator.CurateNews(ctx, profile)
	if err != nil {
		c.State.FailFetch()
		return FetchDigestResult{}, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}

	c.State.CompleteFetch(items)
	logger.InfoContext(ctx, "digest refreshed", "item_count", len(items))

	return FetchDigestResult{Items: items}, nil
}
