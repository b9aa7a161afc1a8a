package config

import "time"

// ApplyDefaults sets default values for any zero values in cfg.
//
// The fetch and fusion defaults are policy constants the rest of the system
// is tested against: a 1-hour cache TTL, a 100-byte per-source content
// minimum, and a 300-byte fusion threshold. They are configuration so test
// doubles and deployments can vary them, but the defaults are contractual.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Corpus.ChunkSize == 0 {
		cfg.Corpus.ChunkSize = 1200
	}
	if cfg.Corpus.ChunkOverlap == 0 {
		cfg.Corpus.ChunkOverlap = 100
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "onnx"
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/nyaya/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 7 * time.Second
	}
	if cfg.Fetch.CacheTTL == 0 {
		cfg.Fetch.CacheTTL = time.Hour
	}
	if cfg.Fetch.MinContentLen == 0 {
		cfg.Fetch.MinContentLen = 100
	}
	if cfg.Fetch.MinFragmentLen == 0 {
		cfg.Fetch.MinFragmentLen = 40
	}
	if cfg.Fetch.MaxParagraphs == 0 {
		cfg.Fetch.MaxParagraphs = 50
	}
	if cfg.Fetch.MaxCharsPerSource == 0 {
		cfg.Fetch.MaxCharsPerSource = 3500
	}
	if cfg.Fetch.MaxBodyBytes == 0 {
		cfg.Fetch.MaxBodyBytes = 2 << 20
	}
	if cfg.Fetch.RequestsPerSecond == 0 {
		cfg.Fetch.RequestsPerSecond = 1.0
	}
	if cfg.Fetch.Burst == 0 {
		cfg.Fetch.Burst = 2
	}
	if cfg.Fusion.TopK == 0 {
		cfg.Fusion.TopK = 3
	}
	if cfg.Fusion.MaxSources == 0 {
		cfg.Fusion.MaxSources = 3
	}
	if cfg.Fusion.MaxSuccesses == 0 {
		cfg.Fusion.MaxSuccesses = 2
	}
	if cfg.Fusion.MinWebContext == 0 {
		cfg.Fusion.MinWebContext = 300
	}
	if cfg.Fusion.BackgroundWorkers == 0 {
		cfg.Fusion.BackgroundWorkers = 8
	}
	if cfg.Reason.BaseURL == "" {
		cfg.Reason.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Reason.Model == "" {
		cfg.Reason.Model = "llama-3.3-70b-versatile"
	}
	if cfg.Reason.Temperature == 0 {
		cfg.Reason.Temperature = 0.2
	}
}
