// Package slack delivers formatted digests to an incoming-webhook URL.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
)

var _ datasources.WebhookSender = (*Sender)(nil)

// Sender posts digest payloads to a webhook.
//
// Incoming webhooks commonly sit behind endpoints whose responses the
// original client could not read, so the inherited default is lenient: a
// request that completes at the transport level counts as delivered.
// StrictStatus makes a non-2xx response count as a delivery failure instead.
type Sender struct {
	StrictStatus bool
	httpClient   *http.Client
}

func NewSender(strictStatus bool) *Sender {
	return &Sender{
		StrictStatus: strictStatus,
		httpClient:   http.DefaultClient,
	}
}

func (s *Sender) Send(ctx context.Context, webhookURL string, payload domain.ChatPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if s.StrictStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return fmt.Errorf("%w: webhook returned status %d", domain.ErrDeliveryTransport, resp.StatusCode)
	}

	return nil
}
