package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Fetch.CacheTTL != time.Hour {
		t.Errorf("expected cache TTL 1h, got %v", cfg.Fetch.CacheTTL)
	}
	if cfg.Fetch.Timeout != 7*time.Second {
		t.Errorf("expected fetch timeout 7s, got %v", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MinContentLen != 100 {
		t.Errorf("expected per-source minimum 100, got %d", cfg.Fetch.MinContentLen)
	}
	if cfg.Fusion.MinWebContext != 300 {
		t.Errorf("expected fusion threshold 300, got %d", cfg.Fusion.MinWebContext)
	}
	if cfg.Fusion.MaxSources != 3 || cfg.Fusion.MaxSuccesses != 2 {
		t.Errorf("expected 3 sources / 2 successes, got %d / %d",
			cfg.Fusion.MaxSources, cfg.Fusion.MaxSuccesses)
	}
	if cfg.Embedding.Dimensions != 384 {
		t.Errorf("expected 384 dimensions, got %d", cfg.Embedding.Dimensions)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Fusion.MinWebContext = 500
	cfg.Fetch.Timeout = 3 * time.Second
	ApplyDefaults(cfg)

	if cfg.Fusion.MinWebContext != 500 {
		t.Errorf("explicit threshold overwritten: %d", cfg.Fusion.MinWebContext)
	}
	if cfg.Fetch.Timeout != 3*time.Second {
		t.Errorf("explicit timeout overwritten: %v", cfg.Fetch.Timeout)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9090
fetch:
  timeout: 5s
  min_content_len: 80
fusion:
  min_web_context: 250
embedding:
  provider: mock
history:
  database_path: ./history.db
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("expected debug true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MinContentLen != 80 {
		t.Errorf("expected min content 80, got %d", cfg.Fetch.MinContentLen)
	}
	if cfg.Fusion.MinWebContext != 250 {
		t.Errorf("expected threshold 250, got %d", cfg.Fusion.MinWebContext)
	}
	// Defaults fill in the rest.
	if cfg.Fetch.CacheTTL != time.Hour {
		t.Errorf("expected default TTL, got %v", cfg.Fetch.CacheTTL)
	}
	// "./" paths resolve relative to the config file.
	if cfg.History.DatabasePath != filepath.Join(dir, "history.db") {
		t.Errorf("expected history path under config dir, got %s", cfg.History.DatabasePath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
