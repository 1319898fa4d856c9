package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestPageFetchTimeoutDefaultsToThreeSeconds(t *testing.T) {
	unsetEnv(t, "PAGE_FETCH_TIMEOUT_MS")

	cfg := New()
	if cfg.PageFetchTimeout != 3*time.Second {
		t.Fatalf("expected 3s default fetch timeout, got %s", cfg.PageFetchTimeout)
	}
}

func TestPageFetchTimeoutRejectsNonPositiveValues(t *testing.T) {
	t.Setenv("PAGE_FETCH_TIMEOUT_MS", "-5")

	cfg := New()
	if cfg.PageFetchTimeout != 3*time.Second {
		t.Fatalf("expected negative timeout to fall back to default, got %s", cfg.PageFetchTimeout)
	}
}

func TestDraftTTLReadsHours(t *testing.T) {
	t.Setenv("DRAFT_TTL_HOURS", "6")

	cfg := New()
	if cfg.DraftTTL != 6*time.Hour {
		t.Fatalf("expected 6h draft ttl, got %s", cfg.DraftTTL)
	}
}

func TestCORSOriginsAreTrimmed(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg := New()
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %#v", cfg.CORSOrigins)
	}
}

func TestSQLiteDriverIsCaseInsensitive(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")

	cfg := New()
	if !cfg.UsesSQLite() {
		t.Fatalf("expected sqlite driver to be detected")
	}
}

func TestJobIntervalFallsBackToAMinute(t *testing.T) {
	t.Setenv("JOB_INTERVAL_SECONDS", "0")

	cfg := New()
	if cfg.JobInterval != time.Minute {
		t.Fatalf("expected 1m job interval, got %s", cfg.JobInterval)
	}
}
