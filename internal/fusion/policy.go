package fusion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/models"
)

// GetContext fetches live web context for topic: the fan-out described on
// fetchWeb, with the combined text and contributing source labels returned
// in configured order.
func (e *Engine) GetContext(ctx context.Context, topic models.Topic) (string, []string) {
	srcs := e.registry.Lookup(topic)
	if len(srcs) == 0 {
		e.logger.Debug("no web sources configured", zap.String("topic", string(topic)))
		return "", nil
	}
	return e.fetchWeb(ctx, srcs)
}

// Retrieve runs the full pipeline for a query: semantic retrieval, topic
// classification, live web fetch, and the fusion decision.
//
// The decision rule is all-or-nothing: when the combined web content reaches
// MinWebContext bytes it is prepended to the corpus context and every
// contributing source is cited; below that the web text is discarded
// wholesale and no source is cited, so a thin fragment never carries a
// citation it cannot back up.
func (e *Engine) Retrieve(ctx context.Context, query string) (models.FusedContext, error) {
	ragContext, err := e.index.RAGContext(ctx, query, e.cfg.TopK)
	if err != nil {
		return models.FusedContext{}, fmt.Errorf("semantic retrieval: %w", err)
	}

	topic, err := e.index.ClassifyTopic(ctx, query)
	if err != nil {
		return models.FusedContext{}, fmt.Errorf("topic classification: %w", err)
	}

	webContext, used := e.GetContext(ctx, topic)
	if len(webContext) >= e.cfg.MinWebContext {
		e.logger.Info("fused context",
			zap.String("topic", string(topic)),
			zap.Int("web_chars", len(webContext)),
			zap.Strings("sources_used", used))
		return models.FusedContext{
			Text:          fuseText(webContext, ragContext),
			ContextSource: models.ContextWebSemantic,
			SourcesUsed:   used,
			Topic:         topic,
		}, nil
	}

	e.logger.Info("semantic-only context",
		zap.String("topic", string(topic)),
		zap.Int("web_chars", len(webContext)))
	return models.FusedContext{
		Text:          ragContext,
		ContextSource: models.ContextSemanticOnly,
		SourcesUsed:   []string{},
		Topic:         topic,
	}, nil
}

// Debug returns the raw per-chunk retrieval view for a query, nearest first.
func (e *Engine) Debug(ctx context.Context, query string, k int) ([]models.ChunkDebugView, error) {
	if k <= 0 {
		k = e.cfg.TopK
	}
	retrieved, err := e.index.Query(ctx, query, k)
	if err != nil {
		return nil, err
	}
	views := make([]models.ChunkDebugView, len(retrieved))
	for i, r := range retrieved {
		views[i] = models.NewChunkDebugView(i+1, r)
	}
	return views, nil
}

// fuseText places live web content ahead of corpus content so the reasoning
// step sees current government guidance first.
func fuseText(webContext, ragContext string) string {
	return "=== LIVE GOVERNMENT SOURCES ===\n\n" + webContext +
		"\n\n=== LEGAL KNOWLEDGE BASE ===\n\n" + ragContext
}
