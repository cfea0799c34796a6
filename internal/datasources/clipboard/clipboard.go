// Package clipboard wraps the system clipboard for the dispatch fallback
// and the explicit copy action.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
)

var _ datasources.ClipboardWriter = Writer{}

type Writer struct{}

func (Writer) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboard, err)
	}
	return nil
}
