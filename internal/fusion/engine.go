// Package fusion combines semantic corpus retrieval with live government web
// content into a single context for the reasoning step.
package fusion

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/models"
	"github.com/nyayalegal/nyaya/internal/semantic"
	"github.com/nyayalegal/nyaya/internal/sources"
)

// webSeparator joins the contributions of distinct web sources.
const webSeparator = "\n\n---\n\n"

// PageFetcher fetches one source's labeled text. Absence (ok=false) covers
// every failure mode: timeout, non-200, thin content.
type PageFetcher interface {
	Fetch(ctx context.Context, src models.Source) (string, bool)
}

// Engine runs the fusion pipeline. It is safe for concurrent use.
type Engine struct {
	index    *semantic.Index
	registry *sources.Registry
	fetcher  PageFetcher
	cfg      config.FusionConfig
	logger   *zap.Logger
	// bg bounds straggler fetches that outlive their request and run only
	// to warm the cache.
	bg chan struct{}
}

// NewEngine wires the fusion engine from its three retrieval legs.
func NewEngine(index *semantic.Index, registry *sources.Registry, fetcher PageFetcher, cfg config.FusionConfig, logger *zap.Logger) *Engine {
	return &Engine{
		index:    index,
		registry: registry,
		fetcher:  fetcher,
		cfg:      cfg,
		logger:   logger,
		bg:       make(chan struct{}, cfg.BackgroundWorkers),
	}
}

type fetchResult struct {
	text string
	ok   bool
}

// fetchWeb fetches up to MaxSources sources concurrently and collects
// results in configured order, stopping once MaxSuccesses sources have
// contributed. Fetches not waited on keep running detached from the request
// context so their results still land in the cache for the next query.
func (e *Engine) fetchWeb(ctx context.Context, srcs []models.Source) (string, []string) {
	if len(srcs) > e.cfg.MaxSources {
		srcs = srcs[:e.cfg.MaxSources]
	}
	if len(srcs) == 0 {
		return "", nil
	}

	results := make([]chan fetchResult, len(srcs))
	for i := range srcs {
		results[i] = make(chan fetchResult, 1)
		go func(i int, src models.Source) {
			select {
			case e.bg <- struct{}{}:
			case <-ctx.Done():
				results[i] <- fetchResult{}
				return
			}
			defer func() { <-e.bg }()
			// Detached so a straggler can finish and populate the cache
			// after the request stops waiting. The fetcher applies its own
			// per-fetch timeout.
			text, ok := e.fetcher.Fetch(context.WithoutCancel(ctx), src)
			results[i] <- fetchResult{text: text, ok: ok}
		}(i, srcs[i])
	}

	var parts []string
	var used []string
	for i := range srcs {
		if len(used) >= e.cfg.MaxSuccesses {
			break
		}
		select {
		case res := <-results[i]:
			if res.ok {
				parts = append(parts, res.text)
				used = append(used, srcs[i].Label)
			}
		case <-ctx.Done():
			e.logger.Debug("web fetch wait cancelled", zap.Int("accepted", len(used)))
			return strings.Join(parts, webSeparator), used
		}
	}
	return strings.Join(parts, webSeparator), used
}
