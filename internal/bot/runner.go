package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/curatednews/digest/internal/datasources"
	"github.com/curatednews/digest/internal/domain"
)

// Runner executes digest runs against the baked-in profile. There is no
// interactive state and no clipboard here; a delivery failure is reported to
// the caller.
type Runner struct {
	Curator datasources.NewsCurator
	Sender  datasources.WebhookSender
	Config  *Config
	Now     func() time.Time
}

func NewRunner(curator datasources.NewsCurator, sender datasources.WebhookSender, cfg *Config) *Runner {
	return &Runner{
		Curator: curator,
		Sender:  sender,
		Config:  cfg,
		Now:     time.Now,
	}
}

// RunOnce performs a single fetch → format → dispatch pass.
func (r *Runner) RunOnce(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	items, err := r.Curator.CurateNews(ctx, r.Config.Profile())
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	logger.InfoContext(ctx, "curated digest", "item_count", len(items))

	payload := domain.FormatChatMessage(items, r.Now())
	if err := r.Sender.Send(ctx, r.Config.WebhookURL, payload); err != nil {
		return err
	}

	logger.InfoContext(ctx, "digest delivered to webhook")
	return nil
}

// Run schedules a daily RunOnce at the configured time and blocks until the
// context is cancelled. A failed run is logged and the schedule keeps going.
func (r *Runner) Run(ctx context.Context) error {
	loc := time.Local
	if r.Config.Timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(r.Config.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", r.Config.Timezone, err)
		}
	}

	var hour, minute int
	if _, err := fmt.Sscanf(r.Config.Schedule, "%d:%d", &hour, &minute); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", r.Config.Schedule, err)
	}

	logger := domain.LoggerFromContext(ctx)

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), func() {
		if err := r.RunOnce(ctx); err != nil {
			logger.ErrorContext(ctx, "scheduled digest run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling digest run: %w", err)
	}

	c.Start()
	defer c.Stop()

	<-ctx.Done()
	return ctx.Err()
}
