// Package lexical provides a Bleve keyword index over the legal corpus. It
// backs the debug endpoint only: the retrieval pipeline itself is semantic,
// but a plain-keyword view of the corpus is invaluable when diagnosing why a
// query landed on the wrong chunk.
package lexical

import (
	"context"
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/nyayalegal/nyaya/internal/corpus"
	"github.com/nyayalegal/nyaya/internal/models"
)

// Result is one keyword hit.
type Result struct {
	Chunk models.KnowledgeChunk `json:"chunk"`
	Score float64               `json:"score"`
}

// Index is an in-memory keyword index over the corpus. Rebuild swaps the
// underlying Bleve index, so searches may run concurrently with a corpus
// reload.
type Index struct {
	mu    sync.RWMutex
	index bleve.Index
	store *corpus.Store
}

type chunkDoc struct {
	Topic   string `json:"topic"`
	Section string `json:"section"`
	Text    string `json:"text"`
}

// NewIndex builds an in-memory Bleve index over store's chunks.
func NewIndex(store *corpus.Store) (*Index, error) {
	index, err := buildIndex(store)
	if err != nil {
		return nil, err
	}
	return &Index{index: index, store: store}, nil
}

func buildIndex(store *corpus.Store) (bleve.Index, error) {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming): legal terms
	// like "maintenance" must match exactly, not via a stem.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("text", textFieldMapping)
	docMapping.AddFieldMappingsAt("section", textFieldMapping)
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("topic", keywordFieldMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword index: %w", err)
	}

	batch := index.NewBatch()
	for _, chunk := range store.Chunks() {
		doc := chunkDoc{
			Topic:   string(chunk.Topic),
			Section: chunk.Section,
			Text:    chunk.Text,
		}
		if err := batch.Index(chunk.ID, doc); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to index chunk %s: %w", chunk.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to commit keyword batch: %w", err)
	}
	return index, nil
}

// Rebuild replaces the index with one over store. In-flight searches finish
// against the old index; it is closed after the swap. On build failure the
// current index stays in place.
func (idx *Index) Rebuild(store *corpus.Store) error {
	next, err := buildIndex(store)
	if err != nil {
		return err
	}

	idx.mu.Lock()
	old := idx.index
	idx.index = next
	idx.store = store
	idx.mu.Unlock()

	return old.Close()
}

// Search runs a match query and returns up to limit chunks, best first.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit

	idx.mu.RLock()
	index, store := idx.index, idx.store
	idx.mu.RUnlock()

	res, err := index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		chunk, ok := store.ByID(hit.ID)
		if !ok {
			continue
		}
		results = append(results, Result{Chunk: chunk, Score: hit.Score})
	}
	return results, nil
}

// Close releases the index.
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.index.Close()
}
