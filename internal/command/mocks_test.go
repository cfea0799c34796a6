package command

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/curatednews/digest/internal/domain"
)

type mockNewsCurator struct {
	mock.Mock
}

func (m *mockNewsCurator) CurateNews(ctx context.Context, profile domain.UserPreferences) ([]domain.NewsItem, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

type mockPreferenceAnalyzer struct {
	mock.Mock
}

func (m *mockPreferenceAnalyzer) AnalyzePreferences(ctx context.Context, liked []domain.NewsItem) (domain.LearnedSignals, error) {
	args := m.Called(ctx, liked)
	return args.Get(0).(domain.LearnedSignals), args.Error(1)
}

type mockPreferenceStore struct {
	mock.Mock
}

func (m *mockPreferenceStore) Load(ctx context.Context) (domain.UserPreferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserPreferences), args.Error(1)
}

func (m *mockPreferenceStore) Save(ctx context.Context, profile domain.UserPreferences) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type mockWebhookSender struct {
	mock.Mock
}

func (m *mockWebhookSender) Send(ctx context.Context, webhookURL string, payload domain.ChatPayload) error {
	args := m.Called(ctx, webhookURL, payload)
	return args.Error(0)
}

type mockClipboardWriter struct {
	mock.Mock
}

func (m *mockClipboardWriter) Write(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
