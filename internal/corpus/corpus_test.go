package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nyayalegal/nyaya/internal/models"
)

func TestNewStoreValidation(t *testing.T) {
	if _, err := NewStore(nil); err == nil {
		t.Error("expected error for empty corpus")
	}

	dup := []models.KnowledgeChunk{
		{ID: "a", Topic: models.TopicRTI, Section: "s", Text: "t"},
		{ID: "a", Topic: models.TopicRTI, Section: "s", Text: "t"},
	}
	if _, err := NewStore(dup); err == nil {
		t.Error("expected error for duplicate chunk IDs")
	}

	badTopic := []models.KnowledgeChunk{
		{ID: "a", Topic: "Tax Law", Section: "s", Text: "t"},
	}
	if _, err := NewStore(badTopic); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestDefaultChunks(t *testing.T) {
	store, err := NewStore(DefaultChunks)
	if err != nil {
		t.Fatalf("built-in corpus invalid: %v", err)
	}
	if store.Len() != 15 {
		t.Errorf("expected 15 built-in chunks, got %d", store.Len())
	}

	// Every configured topic is covered.
	seen := map[models.Topic]int{}
	for _, c := range store.Chunks() {
		seen[c.Topic]++
	}
	for _, topic := range models.Topics {
		if seen[topic] == 0 {
			t.Errorf("no built-in chunks for topic %s", topic)
		}
	}

	// The filing-procedure passage carries the Section 6(1) citation the
	// end-to-end fallback behavior depends on.
	chunk, ok := store.ByID("rti_filing_procedure")
	if !ok {
		t.Fatal("rti_filing_procedure chunk missing")
	}
	if !strings.Contains(chunk.Text, "Section 6(1)") {
		t.Error("rti_filing_procedure should cite Section 6(1)")
	}
}

func TestStorePosition(t *testing.T) {
	store, err := NewStore(DefaultChunks)
	if err != nil {
		t.Fatal(err)
	}
	pos, ok := store.Position("rti_scope_definition")
	if !ok || pos != 0 {
		t.Errorf("expected first chunk at position 0, got %d (ok=%v)", pos, ok)
	}
	if _, ok := store.Position("missing"); ok {
		t.Error("expected position lookup miss for unknown id")
	}
}

func TestChunkerSplit(t *testing.T) {
	c := NewChunker(5, 2)
	words := make([]string, 12)
	for i := range words {
		words[i] = "w"
	}
	parts := c.Split(strings.Join(words, " "))
	if len(parts) == 0 {
		t.Fatal("expected chunks")
	}
	for _, p := range parts {
		if n := len(strings.Fields(p)); n > 5 {
			t.Errorf("chunk has %d words, want <= 5", n)
		}
	}
	if c.Split("") != nil {
		t.Error("empty text should yield nil")
	}
}

func TestLoaderLoadDir(t *testing.T) {
	dir := t.TempDir()
	rtiDir := filepath.Join(dir, "rti")
	if err := os.MkdirAll(rtiDir, 0755); err != nil {
		t.Fatal(err)
	}
	body := strings.Repeat("The applicant may request information from the public authority. ", 10)
	if err := os.WriteFile(filepath.Join(rtiDir, "circular.txt"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	// Files outside a topic directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(50, 5, nil)
	chunks, err := loader.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected supplement chunks")
	}
	for _, c := range chunks {
		if c.Topic != models.TopicRTI {
			t.Errorf("expected RTI topic, got %s", c.Topic)
		}
		if c.Section != "circular" {
			t.Errorf("expected section from filename, got %q", c.Section)
		}
	}

	// Reloading produces the same stable IDs.
	again, err := loader.LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(chunks) || again[0].ID != chunks[0].ID {
		t.Error("supplement chunk IDs not stable across reloads")
	}
}

func TestLoaderMissingDir(t *testing.T) {
	loader := NewLoader(50, 5, nil)
	chunks, err := loader.LoadDir("/nonexistent/supplements")
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if chunks != nil {
		t.Error("missing dir should yield no chunks")
	}
}
