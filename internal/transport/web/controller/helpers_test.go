package controller

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/state"
)

func testRequest(r *http.Request) *http.Request {
	ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
	return r.WithContext(ctx)
}

func testNow() time.Time {
	return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
}

func testDigestItems() []domain.NewsItem {
	return []domain.NewsItem{
		{ID: "news-1", Title: "One", Summary: "s1", Category: "Science", RelevanceScore: 90, URL: "https://example.com/1", Source: "Wire"},
		{ID: "news-2", Title: "Two", Summary: "s2", Category: "Economy", RelevanceScore: 40},
	}
}

func stateWithDigest(t *testing.T, profile domain.UserPreferences) *state.App {
	t.Helper()

	appState := state.New(profile)
	_, err := appState.BeginFetch()
	require.NoError(t, err)
	appState.CompleteFetch(testDigestItems())
	return appState
}

func muxWithFeedback(appState *state.App) http.Handler {
	r := mux.NewRouter()
	r.Handle("/v1/digest/items/{item_id}/like", ItemLikeToggle{State: appState})
	r.Handle("/v1/digest/items/{item_id}/dislike", ItemDislikeToggle{State: appState})
	return r
}

func doRequest(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequest(httptest.NewRequest(method, target, nil)))
	return rec
}

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
