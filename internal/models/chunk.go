package models

import "github.com/nyayalegal/nyaya/pkg/utils"

// KnowledgeChunk is a single static passage of legal reference text.
// Chunks are defined at startup, loaded once into the semantic index,
// and never mutated.
type KnowledgeChunk struct {
	ID      string `json:"id" yaml:"id"`
	Topic   Topic  `json:"topic" yaml:"topic"`
	Section string `json:"section" yaml:"section"`
	Text    string `json:"text" yaml:"text"`
}

// RetrievedChunk is a chunk returned from a semantic query, with its cosine
// distance to the query (0 = identical, 2 = opposite).
type RetrievedChunk struct {
	Chunk    KnowledgeChunk `json:"chunk"`
	Distance float64        `json:"distance"`
}

// ChunkDebugView is the per-chunk observability record exposed by the
// retrieval debug endpoint, ordered by ascending distance.
type ChunkDebugView struct {
	Rank     int     `json:"rank"`
	Topic    Topic   `json:"topic"`
	Section  string  `json:"section"`
	Distance float64 `json:"distance"`
	Preview  string  `json:"preview"`
}

// previewLen caps debug previews so the endpoint stays scannable.
const previewLen = 160

// NewChunkDebugView builds the debug record for a retrieved chunk at the
// given 1-based rank.
func NewChunkDebugView(rank int, r RetrievedChunk) ChunkDebugView {
	preview := utils.Truncate(r.Chunk.Text, previewLen)
	return ChunkDebugView{
		Rank:     rank,
		Topic:    r.Chunk.Topic,
		Section:  r.Chunk.Section,
		Distance: r.Distance,
		Preview:  preview,
	}
}
