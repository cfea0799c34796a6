package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

type DispatchDigestRequest struct{}

// DeliveryPath records which way the digest actually went out.
type DeliveryPath string

const (
	DeliveredViaWebhook   DeliveryPath = "webhook"
	DeliveredViaClipboard DeliveryPath = "clipboard"
)

// DispatchDigestResult reports the path taken; TransportError carries the
// webhook failure when the clipboard fallback was used.
type DispatchDigestResult struct {
	Delivered      DeliveryPath
	TransportError string
}

// DispatchDigest formats the current digest and posts it to the configured
// webhook. A missing webhook URL fails before any request is attempted. On
// transport failure the serialized payload is copied to the clipboard and
// that fallback is reported explicitly.
type DispatchDigest struct {
	Sender    datasources.WebhookSender
	Clipboard datasources.ClipboardWriter
	State     *state.App
	Now       func() time.Time
}

// NewDispatchDigest creates a properly initialized DispatchDigest command.
func NewDispatchDigest(
	sender datasources.WebhookSender,
	clipboardWriter datasources.ClipboardWriter,
	appState *state.App,
) *DispatchDigest {
	return &DispatchDigest{
		Sender:    sender,
		Clipboard: clipboardWriter,
		State:     appState,
		Now:       time.Now,
	}
}

func (c *DispatchDigest) Execute(ctx context.Context, _ DispatchDigestRequest) (DispatchDigestResult, error) {
	logger := domain.LoggerFromContext(ctx)

	items, profile := c.State.DispatchSnapshot()
	if profile.WebhookURL == "" {
		return DispatchDigestResult{}, domain.ErrMissingWebhook
	}

	payload := domain.FormatChatMessage(items, c.Now())

	sendErr := c.Sender.Send(ctx, profile.WebhookURL, payload)
	if sendErr == nil {
		logger.InfoContext(ctx, "digest delivered to webhook", "item_count", len(items))
		return DispatchDigestResult{Delivered: DeliveredViaWebhook}, nil
	}

	logger.WarnContext(ctx, "webhook delivery failed, falling back to clipboard", "error", sendErr)

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return DispatchDigestResult{}, fmt.Errorf("serializing payload for clipboard: %w", err)
	}

	if clipErr := c.Clipboard.Write(string(serialized)); clipErr != nil {
		return DispatchDigestResult{}, errors.Join(sendErr, clipErr)
	}

	return DispatchDigestResult{
		Delivered:      DeliveredViaClipboard,
		TransportError: sendErr.Error(),
	}, nil
}
