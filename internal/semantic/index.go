// Package semantic provides the nearest-neighbor index over the legal
// corpus, built on an in-memory chromem-go collection with cosine distance.
package semantic

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"

	chromem "github.com/philippgille/chromem-go"

	"github.com/nyayalegal/nyaya/internal/corpus"
	"github.com/nyayalegal/nyaya/internal/embedding"
	"github.com/nyayalegal/nyaya/internal/models"
)

const collectionName = "legal_chunks"

// Index is the semantic index over the knowledge corpus. The underlying
// collection is immutable once built; Rebuild swaps in a freshly built
// collection atomically, so concurrent readers never observe a partial index.
type Index struct {
	embedder embedding.Embedder
	state    atomic.Pointer[indexState]
}

// indexState bundles a built collection with the corpus snapshot it indexes.
// Replaced as a whole on rebuild.
type indexState struct {
	collection *chromem.Collection
	store      *corpus.Store
}

// NewIndex builds an index over store using embedder. Building embeds every
// chunk once; failure here is fatal to startup (the service cannot answer
// without its corpus index).
func NewIndex(ctx context.Context, store *corpus.Store, embedder embedding.Embedder) (*Index, error) {
	idx := &Index{embedder: embedder}
	state, err := idx.build(ctx, store)
	if err != nil {
		return nil, err
	}
	idx.state.Store(state)
	return idx, nil
}

func (idx *Index) build(ctx context.Context, store *corpus.Store) (*indexState, error) {
	if store == nil || store.Len() == 0 {
		return nil, fmt.Errorf("cannot build semantic index over empty corpus")
	}

	embedFn := func(ctx context.Context, text string) ([]float32, error) {
		return idx.embedder.Embed(ctx, text)
	}
	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	chunks := store.Chunks()
	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			ID:      c.ID,
			Content: c.Text,
			Metadata: map[string]string{
				"topic":   string(c.Topic),
				"section": c.Section,
			},
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	return &indexState{collection: collection, store: store}, nil
}

// Rebuild replaces the index with one built over store. Queries running
// concurrently keep using the previous collection until the swap.
func (idx *Index) Rebuild(ctx context.Context, store *corpus.Store) error {
	state, err := idx.build(ctx, store)
	if err != nil {
		return err
	}
	idx.state.Store(state)
	return nil
}

// Query returns the k chunks nearest to text, ordered by ascending cosine
// distance. Equal distances are broken by corpus insertion order, so
// repeated identical queries always return the same ordering. k is clamped
// to the corpus size.
func (idx *Index) Query(ctx context.Context, text string, k int) ([]models.RetrievedChunk, error) {
	state := idx.state.Load()
	if k <= 0 {
		return nil, nil
	}
	if k > state.store.Len() {
		k = state.store.Len()
	}

	// Over-fetch one result: when equally-distant chunks straddle the k
	// boundary, the backend's own pick would decide which one is returned
	// at all. With the extra result the stable sort below settles a
	// boundary tie by insertion order before the trim.
	fetchK := k
	if fetchK < state.store.Len() {
		fetchK++
	}

	results, err := state.collection.Query(ctx, text, fetchK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("semantic query: %w", err)
	}

	retrieved := make([]models.RetrievedChunk, 0, len(results))
	for _, r := range results {
		chunk, ok := state.store.ByID(r.ID)
		if !ok {
			// The collection only ever holds IDs from its own store snapshot.
			return nil, fmt.Errorf("index returned unknown chunk id %q", r.ID)
		}
		retrieved = append(retrieved, models.RetrievedChunk{
			Chunk:    chunk,
			Distance: 1 - float64(r.Similarity),
		})
	}
	sort.SliceStable(retrieved, func(i, j int) bool {
		if retrieved[i].Distance != retrieved[j].Distance {
			return retrieved[i].Distance < retrieved[j].Distance
		}
		pi, _ := state.store.Position(retrieved[i].Chunk.ID)
		pj, _ := state.store.Position(retrieved[j].Chunk.ID)
		return pi < pj
	})
	if len(retrieved) > k {
		retrieved = retrieved[:k]
	}
	return retrieved, nil
}

// ClassifyTopic returns the dominant topic for a query: the topic of the
// single nearest chunk. Classification deliberately reuses the retrieval
// index so the two can never disagree on vocabulary.
func (idx *Index) ClassifyTopic(ctx context.Context, text string) (models.Topic, error) {
	top, err := idx.Query(ctx, text, 1)
	if err != nil {
		return models.TopicUnknown, err
	}
	if len(top) == 0 {
		return models.TopicUnknown, fmt.Errorf("semantic index is empty")
	}
	return top[0].Chunk.Topic, nil
}

// Size returns the number of indexed chunks.
func (idx *Index) Size() int {
	return idx.state.Load().store.Len()
}

// Store returns the corpus snapshot the current index was built from.
func (idx *Index) Store() *corpus.Store {
	return idx.state.Load().store
}
