package datasources

import (
	"context"

	"github.com/curatednews/digest/internal/domain"
)

// WebhookSender posts a formatted digest to a chat webhook. A transport-level
// failure is reported wrapped in domain.ErrDeliveryTransport.
type WebhookSender interface {
	Send(ctx context.Context, webhookURL string, payload domain.ChatPayload) error
}

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter interface {
	Write(text string) error
}
