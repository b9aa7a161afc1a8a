// Package corpus holds the static legal knowledge base: a small set of
// curated passages covering the supported legal domains, optionally
// supplemented with reference documents loaded from disk.
package corpus

import (
	"fmt"

	"github.com/nyayalegal/nyaya/internal/models"
)

// Store is an immutable, process-lifetime set of knowledge chunks.
type Store struct {
	chunks []models.KnowledgeChunk
	byID   map[string]int
}

// NewStore builds a store from chunks. Every chunk needs a unique ID, a
// known topic, and non-empty text; an empty chunk set is a configuration
// error (the semantic index cannot serve queries without a corpus).
func NewStore(chunks []models.KnowledgeChunk) (*Store, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	byID := make(map[string]int, len(chunks))
	for i, c := range chunks {
		if c.ID == "" {
			return nil, fmt.Errorf("chunk %d has empty id", i)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate chunk id %q", c.ID)
		}
		if err := c.Topic.Validate(); err != nil {
			return nil, fmt.Errorf("chunk %q: %w", c.ID, err)
		}
		if c.Text == "" {
			return nil, fmt.Errorf("chunk %q has empty text", c.ID)
		}
		byID[c.ID] = i
	}
	return &Store{chunks: chunks, byID: byID}, nil
}

// Chunks returns all chunks in insertion order. The returned slice is shared;
// callers must not mutate it.
func (s *Store) Chunks() []models.KnowledgeChunk {
	return s.chunks
}

// ByID returns the chunk with the given ID.
func (s *Store) ByID(id string) (models.KnowledgeChunk, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.KnowledgeChunk{}, false
	}
	return s.chunks[i], true
}

// Position returns the insertion-order index of the chunk with the given ID.
// Used as the stable tie-break rule for equal-distance query results.
func (s *Store) Position(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// Len returns the number of chunks.
func (s *Store) Len() int {
	return len(s.chunks)
}
