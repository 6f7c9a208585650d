package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDailyLimitReached means the conditional increment found the user
// already at the daily cap.
var ErrDailyLimitReached = errors.New("daily article limit reached")

// DayKey formats a point in time as the UTC calendar day the ledger keys on.
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// CurrentCount returns the number of recorded uses for the user on the
// given day. Unknown users and days count as zero.
func (d *Database) CurrentCount(ctx context.Context, userID int64, day string) (int64, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return 0, errors.New("day is empty")
	}

	query := "select count from usage_log where user_id = ? and day = ?"

	var count int64
	err := d.db.QueryRowContext(ctx, query, userID, day).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return count, nil
}

// RecordUse increments the user's count for the day by exactly one, but
// only while the count is still below the cap. The check and the increment are
// one statement, so concurrent sessions cannot push a user past the cap or
// lose updates. Returns the new count, or ErrDailyLimitReached.
func (d *Database) RecordUse(ctx context.Context, userID int64, day string, limit int64) (int64, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return 0, errors.New("day is empty")
	}

	if limit <= 0 {
		return 0, ErrDailyLimitReached
	}

	query := `insert into usage_log (user_id, day, count)
	values (?, ?, 1)
	on conflict (user_id, day) do update
	set count = usage_log.count + 1
	where usage_log.count < ?
	returning count`

	var count int64
	err := d.db.QueryRowContext(ctx, query, userID, day, limit).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDailyLimitReached
	}
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return count, nil
}

// PruneBefore removes ledger rows for days strictly before cutoffDay and
// returns how many were removed. Day keys sort lexicographically.
func (d *Database) PruneBefore(ctx context.Context, cutoffDay string) (int64, error) {
	cutoffDay = strings.TrimSpace(cutoffDay)
	if cutoffDay == "" {
		return 0, errors.New("cutoff day is empty")
	}

	query := "delete from usage_log where day < ?"

	result, err := d.db.ExecContext(ctx, query, cutoffDay)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count affected rows: %w", err)
	}

	return pruned, nil
}
