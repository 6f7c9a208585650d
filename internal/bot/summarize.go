package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tldrbot/internal/database"
	"tldrbot/internal/summarizer"
)

var (
	errFetchFailed     = errors.New("fetch article")
	errSummarizeFailed = errors.New("summarize article")
)

// summarizeArticle runs one complete request for a user: quota guard,
// fetch, two-stage pipeline, ledger increment. The returned count is the
// user's usage for today after the call. The increment happens after the
// pipeline succeeds but before anything is rendered, so a failed request
// never consumes quota and a failed ledger write never shows a success.
func (b *Bot) summarizeArticle(
	ctx context.Context,
	userID int64,
	articleURL string,
) (*summarizer.Summary, int64, error) {
	day := database.DayKey(time.Now())

	count, err := b.ledger.CurrentCount(ctx, userID, day)
	if err != nil {
		return nil, 0, fmt.Errorf("get current count: %w", err)
	}

	if count >= b.dailyCap {
		return nil, count, database.ErrDailyLimitReached
	}

	text, err := b.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, count, fmt.Errorf("%w: %w", errFetchFailed, err)
	}

	summary, err := b.summarizer.SummarizeArticle(ctx, summarizer.Input{
		Text:      text,
		SourceURL: articleURL,
	})
	if err != nil {
		return nil, count, fmt.Errorf("%w: %w", errSummarizeFailed, err)
	}

	// Atomic re-check of the cap: another session may have used the
	// quota up while the pipeline was running.
	count, err = b.ledger.RecordUse(ctx, userID, day, b.dailyCap)
	if err != nil {
		return nil, count, fmt.Errorf("record use: %w", err)
	}

	return summary, count, nil
}
