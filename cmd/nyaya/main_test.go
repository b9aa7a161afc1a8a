package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/models"
)

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"how", "do", "I", "file", "an", "RTI"}, "how do I file an RTI"},
		{[]string{"single"}, "single"},
		{[]string{" padded "}, "padded"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := buildQuery(tc.args); got != tc.want {
			t.Errorf("buildQuery(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path || !cfg.Debug {
		t.Fatalf("resolved = %s, debug = %v", resolved, cfg.Debug)
	}
	// Defaults are applied on load.
	if cfg.Fusion.MinWebContext != 300 {
		t.Fatalf("MinWebContext = %d", cfg.Fusion.MinWebContext)
	}
}

func TestLoadRegistryDefaultAndOverride(t *testing.T) {
	cfg := &config.Config{}
	reg, err := loadRegistry(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(reg.Lookup(models.TopicRTI)) == 0 {
		t.Fatal("default registry missing RTI sources")
	}

	override := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(override, []byte("RTI:\n  - url: https://example.gov/\n    label: Only\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Sources.OverridePath = override
	reg, err = loadRegistry(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := reg.Lookup(models.TopicRTI); len(got) != 1 || got[0].Label != "Only" {
		t.Fatalf("override not applied: %v", got)
	}
}
