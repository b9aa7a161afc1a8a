package semantic

import (
	"context"
	"fmt"
	"strings"

	"github.com/nyayalegal/nyaya/internal/models"
)

// RAGContext embeds the query and returns the top-k chunk texts joined into
// a single context string, each prefixed with a [topic — section] provenance
// header.
func (idx *Index) RAGContext(ctx context.Context, query string, k int) (string, error) {
	retrieved, err := idx.Query(ctx, query, k)
	if err != nil {
		return "", err
	}
	return FormatContext(retrieved), nil
}

// FormatContext renders retrieved chunks as a context block.
func FormatContext(retrieved []models.RetrievedChunk) string {
	parts := make([]string, len(retrieved))
	for i, r := range retrieved {
		parts[i] = fmt.Sprintf("[%s — %s]\n%s", r.Chunk.Topic, r.Chunk.Section, r.Chunk.Text)
	}
	return strings.Join(parts, "\n\n")
}
