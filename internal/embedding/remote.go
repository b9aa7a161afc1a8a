package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/nyayalegal/nyaya/pkg/utils"
)

// RemoteEmbedder produces embeddings via an OpenAI-compatible embedding API.
// Useful when the local ONNX runtime is unavailable (CGO disabled) but a
// hosted embedding endpoint is.
type RemoteEmbedder struct {
	embedder   *embeddings.EmbedderImpl
	dimensions int
	cache      *EmbeddingCache
}

// NewRemoteEmbedder creates a remote embedder against baseURL with the given
// model. Embeddings are L2-normalized so downstream cosine math matches the
// local providers.
func NewRemoteEmbedder(baseURL, apiKey, model string, dimensions, cacheSize int) (*RemoteEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("remote embedder requires an api key")
	}
	llm, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(strings.TrimPrefix(apiKey, "Bearer ")),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return &RemoteEmbedder{
		embedder:   embedder,
		dimensions: dimensions,
		cache:      NewEmbeddingCache(cacheSize),
	}, nil
}

// Embed returns the embedding for text, using the cache when available.
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached, nil
	}
	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("remote embed: %w", err)
	}
	utils.NormalizeL2(vec)
	e.cache.Set(text, vec)
	return vec, nil
}

// EmbedBatch embeds texts in one API call where possible.
func (e *RemoteEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var misses []string
	var missIdx []int
	for i, text := range texts {
		if cached, ok := e.cache.Get(text); ok {
			out[i] = cached
			continue
		}
		misses = append(misses, text)
		missIdx = append(missIdx, i)
	}
	if len(misses) == 0 {
		return out, nil
	}
	vecs, err := e.embedder.EmbedDocuments(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("remote embed batch: %w", err)
	}
	if len(vecs) != len(misses) {
		return nil, fmt.Errorf("remote embed batch: got %d vectors for %d texts", len(vecs), len(misses))
	}
	for j, vec := range vecs {
		utils.NormalizeL2(vec)
		e.cache.Set(misses[j], vec)
		out[missIdx[j]] = vec
	}
	return out, nil
}

// Dimensions returns the embedding dimension.
func (e *RemoteEmbedder) Dimensions() int {
	return e.dimensions
}

// Close is a no-op for RemoteEmbedder.
func (e *RemoteEmbedder) Close() error {
	return nil
}
