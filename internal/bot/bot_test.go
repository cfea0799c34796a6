package bot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/curatednews/digest/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_applied", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, "webhook_url: https://hooks.example.com/x\n"))
		require.NoError(t, err)

		assert.Equal(t, "gemini-2.5-flash", cfg.Model)
		assert.Equal(t, "07:00", cfg.Schedule)
		assert.Equal(t, "Local", cfg.Timezone)
	})

	t.Run("missing_webhook_rejected", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "keywords: [a]\n"))
		assert.ErrorIs(t, err, domain.ErrMissingWebhook)
	})

	t.Run("env_override_wins", func(t *testing.T) {
		t.Setenv("NEWSBOT_WEBHOOK_URL", "https://hooks.example.com/override")

		cfg, err := LoadConfig(writeConfig(t, "webhook_url: https://hooks.example.com/baked\n"))
		require.NoError(t, err)
		assert.Equal(t, "https://hooks.example.com/override", cfg.WebhookURL)
	})

	t.Run("malformed_schedule_rejected", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t,
			"webhook_url: https://hooks.example.com/x\nschedule: \"25:99\"\n"))
		assert.Error(t, err)
	})

	t.Run("profile_round_trip", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `webhook_url: https://hooks.example.com/x
keywords: [Fusion, Chips]
liked_categories: [Science]
disliked_categories: [Celebrity]
`))
		require.NoError(t, err)

		profile := cfg.Profile()
		assert.Equal(t, []string{"Fusion", "Chips"}, profile.Keywords)
		assert.Equal(t, []string{"Science"}, profile.LikedCategories)
		assert.Equal(t, []string{"Celebrity"}, profile.DislikedCategories)
	})
}

type mockCurator struct {
	mock.Mock
}

func (m *mockCurator) CurateNews(ctx context.Context, profile domain.UserPreferences) ([]domain.NewsItem, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, webhookURL string, payload domain.ChatPayload) error {
	args := m.Called(ctx, webhookURL, payload)
	return args.Error(0)
}

func TestRunner_RunOnce(t *testing.T) {
	cfg := &Config{
		WebhookURL: "https://hooks.example.com/x",
		Keywords:   []string{"Fusion"},
		Schedule:   "07:00",
		Timezone:   "Local",
	}
	items := []domain.NewsItem{{ID: "news-1", Title: "One", Summary: "s"}}
	now := time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)

	t.Run("delivers_formatted_digest", func(t *testing.T) {
		curator := &mockCurator{}
		curator.On("CurateNews", mock.Anything, cfg.Profile()).Return(items, nil)

		sender := &mockSender{}
		sender.On("Send", mock.Anything, cfg.WebhookURL, domain.FormatChatMessage(items, now)).Return(nil)

		runner := NewRunner(curator, sender, cfg)
		runner.Now = func() time.Time { return now }

		require.NoError(t, runner.RunOnce(context.Background()))
		sender.AssertExpectations(t)
	})

	t.Run("curator_failure_surfaces_fetch_error", func(t *testing.T) {
		curator := &mockCurator{}
		curator.On("CurateNews", mock.Anything, mock.Anything).Return(nil, errors.New("no response"))

		runner := NewRunner(curator, &mockSender{}, cfg)

		assert.ErrorIs(t, runner.RunOnce(context.Background()), domain.ErrFetch)
	})

	t.Run("sender_failure_propagates", func(t *testing.T) {
		curator := &mockCurator{}
		curator.On("CurateNews", mock.Anything, mock.Anything).Return(items, nil)

		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrDeliveryTransport)

		runner := NewRunner(curator, sender, cfg)

		assert.ErrorIs(t, runner.RunOnce(context.Background()), domain.ErrDeliveryTransport)
	})
}
