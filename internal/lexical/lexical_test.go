package lexical

import (
	"context"
	"testing"

	"github.com/nyayalegal/nyaya/internal/corpus"
	"github.com/nyayalegal/nyaya/internal/models"
)

func testLexIndex(t *testing.T) *Index {
	t.Helper()
	store, err := corpus.NewStore(corpus.DefaultChunks)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewIndex(store)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestSearchFindsRelevantChunk(t *testing.T) {
	idx := testLexIndex(t)
	results, err := idx.Search(context.Background(), "information commission appeal", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Chunk.Topic != models.TopicRTI {
		t.Errorf("top hit topic = %s, want RTI", results[0].Chunk.Topic)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatal("results not ordered by descending score")
		}
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	idx := testLexIndex(t)
	results, err := idx.Search(context.Background(), "act", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) > 2 {
		t.Fatalf("got %d results, want at most 2", len(results))
	}
}

func TestRebuildServesNewCorpus(t *testing.T) {
	idx := testLexIndex(t)

	// The term only exists in the reloaded corpus.
	if results, _ := idx.Search(context.Background(), "zamindari", 5); len(results) != 0 {
		t.Fatal("term found before rebuild")
	}

	chunks := append([]models.KnowledgeChunk{}, corpus.DefaultChunks...)
	chunks = append(chunks, models.KnowledgeChunk{
		ID:      "supplement_1",
		Topic:   models.TopicRTI,
		Section: "Land Records",
		Text:    "Records of zamindari abolition are held by the district collectorate and are accessible under the Act.",
	})
	store, err := corpus.NewStore(chunks)
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Rebuild(store); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search(context.Background(), "zamindari", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Chunk.ID != "supplement_1" {
		t.Fatalf("reloaded chunk not served, got %d results", len(results))
	}
}

func TestSearchNoMatch(t *testing.T) {
	idx := testLexIndex(t)
	results, err := idx.Search(context.Background(), "zymurgy", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
