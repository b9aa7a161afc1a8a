package semantic

import (
	"context"
	"strings"
	"testing"

	"github.com/nyayalegal/nyaya/internal/corpus"
	"github.com/nyayalegal/nyaya/internal/embedding"
	"github.com/nyayalegal/nyaya/internal/models"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	store, err := corpus.NewStore(corpus.DefaultChunks)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewIndex(context.Background(), store, embedding.NewMockEmbedder(64))
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	return idx
}

func TestNewIndexEmptyCorpus(t *testing.T) {
	if _, err := NewIndex(context.Background(), nil, embedding.NewMockEmbedder(8)); err == nil {
		t.Error("expected error building index over empty corpus")
	}
}

func TestQueryDeterministic(t *testing.T) {
	idx := testIndex(t)
	ctx := context.Background()

	first, err := idx.Query(ctx, "how do I file an RTI application", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 results, got %d", len(first))
	}
	for i := 0; i < 5; i++ {
		again, err := idx.Query(ctx, "how do I file an RTI application", 3)
		if err != nil {
			t.Fatal(err)
		}
		for j := range first {
			if again[j].Chunk.ID != first[j].Chunk.ID {
				t.Fatalf("run %d: result %d differs: %s vs %s",
					i, j, again[j].Chunk.ID, first[j].Chunk.ID)
			}
		}
	}
}

func TestQueryOrderedByDistance(t *testing.T) {
	idx := testIndex(t)
	results, err := idx.Query(context.Background(), "dowry harassment by husband", 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Errorf("results not in ascending distance order at %d", i)
		}
	}
}

func TestQueryClampsK(t *testing.T) {
	idx := testIndex(t)
	results, err := idx.Query(context.Background(), "anything", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != idx.Size() {
		t.Errorf("expected k clamped to corpus size %d, got %d", idx.Size(), len(results))
	}
}

func TestQueryBoundaryTieBreaksByInsertionOrder(t *testing.T) {
	// Two chunks with identical text embed identically, so at k=1 both sit
	// at the same distance with only one slot. The earlier-indexed chunk
	// must win regardless of which one the backend would have picked.
	store, err := corpus.NewStore([]models.KnowledgeChunk{
		{ID: "first", Topic: models.TopicRTI, Section: "A", Text: "identical passage text"},
		{ID: "second", Topic: models.TopicDivorce, Section: "B", Text: "identical passage text"},
		{ID: "other", Topic: models.TopicDomesticViolence, Section: "C", Text: "entirely different subject matter"},
	})
	if err != nil {
		t.Fatal(err)
	}
	idx, err := NewIndex(context.Background(), store, embedding.NewMockEmbedder(64))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		results, err := idx.Query(context.Background(), "identical passage text", 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].Chunk.ID != "first" {
			t.Fatalf("run %d: tie at the k boundary returned %q, want first", i, results[0].Chunk.ID)
		}
	}
}

func TestClassifyTopicReturnsConfiguredTopic(t *testing.T) {
	idx := testIndex(t)
	topic, err := idx.ClassifyTopic(context.Background(), "some legal question")
	if err != nil {
		t.Fatal(err)
	}
	if !topic.Known() {
		t.Errorf("classification returned unconfigured topic %q", topic)
	}
}

func TestRebuildSwapsCorpus(t *testing.T) {
	idx := testIndex(t)
	small, err := corpus.NewStore([]models.KnowledgeChunk{
		{ID: "only", Topic: models.TopicRTI, Section: "Sole", Text: "single passage"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Rebuild(context.Background(), small); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if idx.Size() != 1 {
		t.Errorf("expected size 1 after rebuild, got %d", idx.Size())
	}
	results, err := idx.Query(context.Background(), "anything", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Chunk.ID != "only" {
		t.Errorf("rebuild did not replace the collection: %+v", results)
	}
}

func TestRAGContextFormat(t *testing.T) {
	idx := testIndex(t)
	text, err := idx.RAGContext(context.Background(), "protection order against my husband", 3)
	if err != nil {
		t.Fatal(err)
	}
	if text == "" {
		t.Fatal("expected non-empty context")
	}
	if !strings.Contains(text, "[") || !strings.Contains(text, " — ") {
		t.Error("context should carry [topic — section] headers")
	}
	if got := strings.Count(text, "\n\n"); got < 2 {
		t.Errorf("expected 3 chunks separated by blank lines, got %d separators", got)
	}
}
