// Package embedding provides sentence embedding for the semantic index,
// with local ONNX, remote API, and deterministic mock providers plus an
// LRU cache keyed by text.
package embedding

import "context"

// Embedder produces unit-length vector embeddings for text. The semantic
// index assumes a fixed, deterministic embedding function: the same text
// always yields the same vector for a given provider.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
