package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("FETCH_DELAY", "")
	t.Setenv("CACHE_FILE", "")
	t.Setenv("DEBUG", "")

	cfg := Load()
	if cfg.GitHubToken != "" {
		t.Errorf("expected empty token, got %q", cfg.GitHubToken)
	}
	if cfg.OutputDir != "assets" {
		t.Errorf("OutputDir = %q, want assets", cfg.OutputDir)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.FetchDelay != 500*time.Millisecond {
		t.Errorf("FetchDelay = %v, want 500ms", cfg.FetchDelay)
	}
	if cfg.CacheFile == "" {
		t.Error("expected non-empty CacheFile")
	}
	if cfg.DebugMode {
		t.Error("expected DebugMode false by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test123")
	t.Setenv("OUTPUT_DIR", "/srv/site/data")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("FETCH_DELAY", "1s")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.GitHubToken != "ghp_test123" {
		t.Errorf("GitHubToken = %q, want ghp_test123", cfg.GitHubToken)
	}
	if cfg.OutputDir != "/srv/site/data" {
		t.Errorf("OutputDir = %q, want /srv/site/data", cfg.OutputDir)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.FetchDelay != time.Second {
		t.Errorf("FetchDelay = %v, want 1s", cfg.FetchDelay)
	}
	if !cfg.DebugMode {
		t.Error("expected DebugMode true")
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s fallback", cfg.RequestTimeout)
	}
}

func TestSnapshotPath(t *testing.T) {
	cfg := Config{OutputDir: "assets"}
	got := cfg.SnapshotPath("popular.json")
	want := filepath.Join("assets", "popular.json")
	if got != want {
		t.Errorf("SnapshotPath = %q, want %q", got, want)
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 7 {
		t.Fatalf("got %d categories, want 7", len(cats))
	}
	seen := make(map[string]bool)
	for _, c := range cats {
		if c.Label == "" {
			t.Error("category with empty label")
		}
		if len(c.Keywords) == 0 {
			t.Errorf("category %q has no keywords", c.Label)
		}
		if seen[c.Label] {
			t.Errorf("duplicate category label %q", c.Label)
		}
		seen[c.Label] = true
	}
	if !seen["MLOps"] {
		t.Error("expected MLOps category")
	}
}
