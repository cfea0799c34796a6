package app

import (
	"context"
	"fmt"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/datasources/clipboard"
	"github.com/curatednews/digest/internal/datasources/gemini"
	"github.com/curatednews/digest/internal/datasources/slack"
	"github.com/curatednews/digest/internal/datasources/sqlite"
	"github.com/curatednews/digest/internal/state"
	"github.com/curatednews/digest/internal/transport/web/router"
	"github.com/curatednews/digest/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := sqlite.Open(ctx, GetEnvAsStringWithDefault("PREFERENCES_DB_PATH", "newsdigest.db"))
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	profile, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	appState := state.New(profile)

	curator, err := gemini.NewClient(
		ctx,
		MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
		GetEnvAsStringWithDefault("GEMINI_MODEL", gemini.DefaultModel),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	sender := slack.NewSender(GetEnvAsBooleanWithDefault(ctx, "WEBHOOK_STRICT_STATUS", false))
	clipboardWriter := clipboard.Writer{}

	httpRouter, err := router.MakeRouter(
		appState,
		router.Commands{
			Fetch:    command.NewFetchDigest(curator, appState),
			Learn:    command.NewLearnPreferences(curator, store, appState),
			Dispatch: command.NewDispatchDigest(sender, clipboardWriter, appState),
			Copy:     command.NewCopyDigest(clipboardWriter, appState),
			Save:     command.NewSavePreferences(store, appState),
		},
		router.BundleConfig{
			Model:    GetEnvAsStringWithDefault("GEMINI_MODEL", gemini.DefaultModel),
			Schedule: GetEnvAsStringWithDefault("BUNDLE_SCHEDULE", "07:00"),
			Timezone: GetEnvAsStringWithDefault("BUNDLE_TIMEZONE", "Local"),
		},
		GetEnvAsStringWithDefault("FEED_BASE_URL", "http://localhost:8080"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			Port:   MustGetEnvAsInt(ctx, "PORT"),
			Router: httpRouter,
		},
	}, nil
}
