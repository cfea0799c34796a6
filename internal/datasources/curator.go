package datasources

import (
	"context"

	"github.com/curatednews/digest/internal/domain"
)

// NewsCurator asks the AI service for a fresh curated digest weighted by the
// given profile.
type NewsCurator interface {
	CurateNews(ctx context.Context, profile domain.UserPreferences) ([]domain.NewsItem, error)
}

// PreferenceAnalyzer derives keyword and category signals from the liked
// subset of a digest.
type PreferenceAnalyzer interface {
	AnalyzePreferences(ctx context.Context, liked []domain.NewsItem) (domain.LearnedSignals, error)
}
