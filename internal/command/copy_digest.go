package command

import (
	"context"
	"time"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

type CopyDigestRequest struct{}

// CopyDigest writes the plain-text rendering of the current digest to the
// system clipboard.
type CopyDigest struct {
	Clipboard datasources.ClipboardWriter
	State     *state.App
	Now       func() time.Time
}

// NewCopyDigest creates a properly initialized CopyDigest command.
func NewCopyDigest(clipboardWriter datasources.ClipboardWriter, appState *state.App) *CopyDigest {
	return &CopyDigest{
		Clipboard: clipboardWriter,
		State:     appState,
		Now:       time.Now,
	}
}

func (c *CopyDigest) Execute(ctx context.Context, _ CopyDigestRequest) (Empty, error) {
	items, _ := c.State.DispatchSnapshot()

	text := domain.FormatPlainText(items, c.Now())
	if err := c.Clipboard.Write(text); err != nil {
		return Empty{}, err
	}

	return Empty{}, nil
}
