package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

const testWebhookURL = "https://hooks.example.com/T123/B456"

func dispatchTestState(t *testing.T, webhookURL string) *state.App {
	t.Helper()

	profile := domain.DefaultPreferences()
	profile.WebhookURL = webhookURL

	appState := state.New(profile)
	_, err := appState.BeginFetch()
	require.NoError(t, err)
	appState.CompleteFetch([]domain.NewsItem{
		{ID: "news-1", Title: "One", Summary: "s", RelevanceScore: 90},
	})
	return appState
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
}

func newDispatchForTest(sender *mockWebhookSender, clip *mockClipboardWriter, appState *state.App) *DispatchDigest {
	cmd := NewDispatchDigest(sender, clip, appState)
	cmd.Now = fixedNow
	return cmd
}

func TestDispatchDigest_Execute(t *testing.T) {
	t.Run("missing_webhook_never_sends", func(t *testing.T) {
		sender := &mockWebhookSender{}
		clip := &mockClipboardWriter{}

		_, err := newDispatchForTest(sender, clip, dispatchTestState(t, "")).
			Execute(context.Background(), DispatchDigestRequest{})

		assert.ErrorIs(t, err, domain.ErrMissingWebhook)
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("delivers_via_webhook", func(t *testing.T) {
		appState := dispatchTestState(t, testWebhookURL)
		items, _ := appState.Digest()
		wantPayload := domain.FormatChatMessage(items, fixedNow())

		sender := &mockWebhookSender{}
		sender.On("Send", mock.Anything, testWebhookURL, wantPayload).Return(nil)
		clip := &mockClipboardWriter{}

		result, err := newDispatchForTest(sender, clip, appState).
			Execute(context.Background(), DispatchDigestRequest{})
		require.NoError(t, err)

		assert.Equal(t, DeliveredViaWebhook, result.Delivered)
		assert.Empty(t, result.TransportError)
		sender.AssertExpectations(t)
		clip.AssertNotCalled(t, "Write")
	})

	t.Run("transport_failure_falls_back_to_clipboard", func(t *testing.T) {
		appState := dispatchTestState(t, testWebhookURL)
		items, _ := appState.Digest()
		serialized, err := json.MarshalIndent(domain.FormatChatMessage(items, fixedNow()), "", "  ")
		require.NoError(t, err)

		sendErr := fmt.Errorf("%w: connection refused", domain.ErrDeliveryTransport)
		sender := &mockWebhookSender{}
		sender.On("Send", mock.Anything, testWebhookURL, mock.Anything).Return(sendErr)

		clip := &mockClipboardWriter{}
		clip.On("Write", string(serialized)).Return(nil)

		result, err := newDispatchForTest(sender, clip, appState).
			Execute(context.Background(), DispatchDigestRequest{})
		require.NoError(t, err)

		assert.Equal(t, DeliveredViaClipboard, result.Delivered)
		assert.Contains(t, result.TransportError, "connection refused")
		clip.AssertExpectations(t)
	})

	t.Run("clipboard_failure_surfaces_both_errors", func(t *testing.T) {
		appState := dispatchTestState(t, testWebhookURL)

		sender := &mockWebhookSender{}
		sender.On("Send", mock.Anything, testWebhookURL, mock.Anything).
			Return(fmt.Errorf("%w: connection refused", domain.ErrDeliveryTransport))

		clip := &mockClipboardWriter{}
		clip.On("Write", mock.Anything).
			Return(fmt.Errorf("%w: %w", domain.ErrClipboard, errors.New("permission denied")))

		_, err := newDispatchForTest(sender, clip, appState).
			Execute(context.Background(), DispatchDigestRequest{})

		assert.ErrorIs(t, err, domain.ErrDeliveryTransport)
		assert.ErrorIs(t, err, domain.ErrClipboard)
	})
}

func TestCopyDigest_Execute(t *testing.T) {
	appState := dispatchTestState(t, testWebhookURL)
	items, _ := appState.Digest()
	wantText := domain.FormatPlainText(items, fixedNow())

	clip := &mockClipboardWriter{}
	clip.On("Write", wantText).Return(nil)

	cmd := NewCopyDigest(clip, appState)
	cmd.Now = fixedNow

	_, err := cmd.Execute(context.Background(), CopyDigestRequest{})
	require.NoError(t, err)
	clip.AssertExpectations(t)
}

func TestSavePreferences_Execute(t *testing.T) {
	appState := state.New(domain.DefaultPreferences())

	submitted := domain.UserPreferences{
		Keywords:        []string{"A", "A", "B"},
		LikedCategories: []string{"Tech"},
		WebhookURL:      testWebhookURL,
	}
	normalized := submitted.Normalized()

	store := &mockPreferenceStore{}
	store.On("Save", mock.Anything, normalized).Return(nil)

	result, err := NewSavePreferences(store, appState).
		Execute(context.Background(), SavePreferencesRequest{Profile: submitted})
	require.NoError(t, err)

	assert.Equal(t, normalized, result.Profile)
	assert.Equal(t, []string{"A", "B"}, result.Profile.Keywords)
	assert.Equal(t, normalized, appState.Profile())
	store.AssertExpectations(t)
}
