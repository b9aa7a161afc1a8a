// Package config provides configuration loading and structs for the Nyaya server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Fusion    FusionConfig    `yaml:"fusion"`
	Reason    ReasonConfig    `yaml:"reason"`
	History   HistoryConfig   `yaml:"history"`
	Sources   SourcesConfig   `yaml:"sources"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig holds knowledge-corpus settings. The built-in chunk set is
// always loaded; SupplementDir optionally adds reference documents
// (.txt/.md/.pdf/.docx) chunked at ChunkSize runes.
type CorpusConfig struct {
	SupplementDir string `yaml:"supplement_dir"`
	ChunkSize     int    `yaml:"chunk_size"`
	ChunkOverlap  int    `yaml:"chunk_overlap"`
}

// EmbeddingConfig holds embedder settings. Provider is one of
// "onnx" (local MiniLM, requires CGO), "remote" (OpenAI-compatible API),
// or "mock" (deterministic, for tests and development).
type EmbeddingConfig struct {
	Provider   string `yaml:"provider"`
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
	// Remote provider settings (OpenAI-compatible embedding endpoint).
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// FetchConfig holds page fetcher policy settings.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	MinContentLen     int           `yaml:"min_content_len"`
	MinFragmentLen    int           `yaml:"min_fragment_len"`
	MaxParagraphs     int           `yaml:"max_paragraphs"`
	MaxCharsPerSource int           `yaml:"max_chars_per_source"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	// Per-host rate limiting (token bucket). Government portals rate-limit
	// aggressively, so the defaults are conservative.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// FusionConfig holds context fusion policy settings.
type FusionConfig struct {
	// TopK is the number of corpus chunks retrieved per query.
	TopK int `yaml:"top_k"`
	// MaxSources caps how many configured sources are attempted per request.
	MaxSources int `yaml:"max_sources"`
	// MaxSuccesses is the early-stop count: once this many sources have
	// contributed, remaining fetches are not waited on.
	MaxSuccesses int `yaml:"max_successes"`
	// MinWebContext is the minimum combined web-content length, in bytes,
	// for web results to be used at all. Below it the pipeline falls back
	// to semantic-only context and discards web provenance.
	MinWebContext int `yaml:"min_web_context"`
	// BackgroundWorkers bounds how many straggler fetches may run past
	// their request solely to populate the cache.
	BackgroundWorkers int `yaml:"background_workers"`
}

// ReasonConfig holds reasoning-service settings (OpenAI-compatible chat API).
type ReasonConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	// Demo serves canned analyses without calling the reasoning service.
	Demo bool `yaml:"demo"`
}

// HistoryConfig holds the optional SQLite audit-log settings.
// An empty DatabasePath disables history.
type HistoryConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// SourcesConfig holds the web source registry override settings.
// OverridePath may point to a YAML or XLSX file; when empty the
// built-in government portal registry is used.
type SourcesConfig struct {
	OverridePath string `yaml:"override_path"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Corpus.SupplementDir = expandPath(cfg.Corpus.SupplementDir, configDir)
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)
	cfg.History.DatabasePath = expandPath(cfg.History.DatabasePath, configDir)
	cfg.Sources.OverridePath = expandPath(cfg.Sources.OverridePath, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory. Empty paths stay empty
// (empty means "feature disabled" for supplement dir, history, and overrides).
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
