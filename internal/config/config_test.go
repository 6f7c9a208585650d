package config

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg := LoadConfig()

	if cfg.Token != "test-token" {
		t.Errorf("Expected token %q, got %q", "test-token", cfg.Token)
	}

	if cfg.DBPath != "db.sqlite" {
		t.Errorf("Expected default DB path %q, got %q", "db.sqlite", cfg.DBPath)
	}

	if cfg.DailyArticleCap != 2 {
		t.Errorf("Expected default article cap 2, got %d", cfg.DailyArticleCap)
	}

	if cfg.LedgerRetentionDays != 30 {
		t.Errorf("Expected default retention 30 days, got %d", cfg.LedgerRetentionDays)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ALLOWED_USERS", "1,2,3")
	t.Setenv("DB_PATH", "/tmp/ledger.sqlite")
	t.Setenv("ARTICLE_CAP", "5")
	t.Setenv("LEDGER_RETENTION_DAYS", "7")

	cfg := LoadConfig()

	if len(cfg.AllowedUsers) != 3 {
		t.Fatalf("Expected 3 allowed users, got %d", len(cfg.AllowedUsers))
	}

	if cfg.AllowedUsers[2] != 3 {
		t.Errorf("Expected third allowed user 3, got %d", cfg.AllowedUsers[2])
	}

	if cfg.DBPath != "/tmp/ledger.sqlite" {
		t.Errorf("Expected DB path %q, got %q", "/tmp/ledger.sqlite", cfg.DBPath)
	}

	if cfg.DailyArticleCap != 5 {
		t.Errorf("Expected article cap 5, got %d", cfg.DailyArticleCap)
	}

	if cfg.LedgerRetentionDays != 7 {
		t.Errorf("Expected retention 7 days, got %d", cfg.LedgerRetentionDays)
	}
}
