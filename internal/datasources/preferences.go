package datasources

import (
	"context"

	"github.com/curatednews/digest/internal/domain"
)

// PreferenceStore persists the single preference profile. Load returns the
// default profile when nothing has been saved yet; Save overwrites
// wholesale and must be atomic from the caller's perspective.
type PreferenceStore interface {
	Load(ctx context.Context) (domain.UserPreferences, error)
	Save(ctx context.Context, profile domain.UserPreferences) error
}
