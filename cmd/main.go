package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tldrbot/internal/article"
	"tldrbot/internal/bot"
	"tldrbot/internal/config"
	"tldrbot/internal/database"
	"tldrbot/internal/scheduler"
	"tldrbot/internal/summarizer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ErrorContext(ctx, "Failed to load .env file",
				"error", err)

			return
		}

		log.InfoContext(ctx, "No .env file, using process environment")
	}

	// Missing TOKEN or OPENAI_API_KEY is fatal here, before anything is
	// served.
	cfg := config.LoadConfig()

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize db",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}()
	log.InfoContext(ctx, "DB is initialized",
		"dbPath", cfg.DBPath)

	s, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return
	}
	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai")

	fetcher := article.NewFetcher(log)

	botInst, err := bot.New(
		cfg.Token,
		db,
		fetcher,
		s,
		cfg.DailyArticleCap,
		cfg.AllowedUsers,
		log,
	)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize bot",
			"error", err,
			"allowedUsersCount", len(cfg.AllowedUsers))

		return
	}
	log.InfoContext(ctx, "Bot is initialized",
		"dailyArticleCap", cfg.DailyArticleCap,
		"allowedUsersCount", len(cfg.AllowedUsers))

	sched := scheduler.New(ctx, db, cfg.LedgerRetentionDays, log)

	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", scheduler.DailyPruneSpec,
			"timezone", time.FixedZone(scheduler.Timezone, scheduler.TimezoneOffsetSeconds).String())

		return
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", scheduler.DailyPruneSpec,
		"retentionDays", cfg.LedgerRetentionDays)

	go func() {
		botInst.Start(ctx)
	}()
	log.InfoContext(ctx, "Bot is started",
		"updateTimeoutSeconds", bot.BotUpdateTimeout)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	log.InfoContext(ctx, "Shutdown signal is received",
		"signal", sig.String())
	cancel()

	log.InfoContext(ctx, "Exiting...",
		"signal", sig.String(),
		"uptimeSeconds", time.Since(start).Seconds())

	botInst.Stop()
	log.InfoContext(ctx, "Bot is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}
