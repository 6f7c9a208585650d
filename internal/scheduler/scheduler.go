package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"tldrbot/internal/database"
)

const (
	DailyPruneSpec        = "0 0 * * *"
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0
	pruneTimeout          = time.Minute
)

// Scheduler prunes ledger rows older than the retention window once a day.
type Scheduler struct {
	ctx           context.Context
	cron          *cron.Cron
	db            *database.Database
	retentionDays int
	log           *slog.Logger
}

func New(ctx context.Context, db *database.Database, retentionDays int, log *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	return &Scheduler{
		ctx:           ctx,
		cron:          c,
		db:            db,
		retentionDays: retentionDays,
		log:           log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(DailyPruneSpec, s.pruneLedger); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) pruneLedger() {
	ctx, cancel := context.WithTimeout(s.ctx, pruneTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())
		return
	default:
	}

	cutoffDay := database.DayKey(time.Now().AddDate(0, 0, -s.retentionDays))

	pruned, err := s.db.PruneBefore(ctx, cutoffDay)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to prune ledger",
			"error", err,
			"cutoffDay", cutoffDay)
		return
	}

	s.log.InfoContext(ctx, "Ledger is pruned",
		"cutoffDay", cutoffDay,
		"prunedRows", pruned,
		"retentionDays", s.retentionDays)
}
