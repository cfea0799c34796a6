package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/curatednews/digest/internal/app"
	"github.com/curatednews/digest/internal/bot"
	"github.com/curatednews/digest/internal/datasources/gemini"
	"github.com/curatednews/digest/internal/datasources/slack"
	"github.com/curatednews/digest/internal/domain"
)

import _ "github.com/joho/godotenv/autoload"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the newsbot manifest")
	once := flag.Bool("once", false, "run a single digest delivery and exit")
	flag.Parse()

	ctx := context.Background()

	var logLevel slog.Level
	logLevelStr := app.GetEnvAsStringWithDefault("LOG_LEVEL", "info")
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		panic(fmt.Sprintf("unable to setup logger, LOG_LEVEL not recognised [%s]", logLevelStr))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	cfg, err := bot.LoadConfig(*configPath)
	if err != nil {
		logger.ErrorContext(ctx, "unable to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	client, err := gemini.NewClient(ctx, app.MustGetEnvAsString(ctx, "GEMINI_API_KEY"), cfg.Model)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup gemini client", "error", err)
		os.Exit(1)
	}

	runner := bot.NewRunner(client, slack.NewSender(false), cfg)

	if *once {
		if err := runner.RunOnce(ctx); err != nil {
			logger.ErrorContext(ctx, "digest run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting scheduler",
		"schedule", cfg.Schedule, "timezone", cfg.Timezone)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "shutting down due to error", "error", err)
		os.Exit(1)
	}
}
