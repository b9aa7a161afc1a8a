package embedding

import (
	"fmt"

	"github.com/nyayalegal/nyaya/internal/config"
)

// NewEmbedder creates an embedder for the configured provider.
// Supported providers: "onnx" (local MiniLM, requires CGO), "remote"
// (OpenAI-compatible embedding API), "mock" (deterministic, for tests).
func NewEmbedder(cfg *config.EmbeddingConfig) (Embedder, error) {
	switch cfg.Provider {
	case "onnx", "":
		return NewONNXEmbedder(cfg.ModelPath, cfg.Dimensions, cfg.MaxTokens, cfg.CacheSize)
	case "remote":
		return NewRemoteEmbedder(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Dimensions, cfg.CacheSize)
	case "mock":
		return NewMockEmbedder(cfg.Dimensions), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: onnx, remote, mock)", cfg.Provider)
	}
}
