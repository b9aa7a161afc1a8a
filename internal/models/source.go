package models

// Source is a single authoritative external source: a government portal URL
// with a human-readable citation label. Static configuration, never mutated
// at runtime.
type Source struct {
	URL   string `json:"url" yaml:"url"`
	Label string `json:"label" yaml:"label"`
}

// ContextSource tags which retrieval paths contributed to a fused context.
type ContextSource string

const (
	// ContextWebSemantic means live web content passed the fusion threshold
	// and was combined with the semantic corpus results.
	ContextWebSemantic ContextSource = "web+semantic"
	// ContextSemanticOnly means web content was absent or below threshold and
	// the corpus results alone were used.
	ContextSemanticOnly ContextSource = "semantic-only"
)

// FusedContext is the request-scoped output of the fusion pipeline: the
// combined context handed to the reasoning step plus provenance metadata.
type FusedContext struct {
	Text          string        `json:"text"`
	ContextSource ContextSource `json:"context_source"`
	// SourcesUsed holds the labels of web sources that actually contributed,
	// in configured order. Empty when ContextSource is semantic-only.
	SourcesUsed []string `json:"sources_used"`
	// Topic is the dominant topic the query was classified into.
	Topic Topic `json:"topic"`
}
