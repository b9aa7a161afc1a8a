package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/corpus"
	"github.com/nyayalegal/nyaya/internal/embedding"
	"github.com/nyayalegal/nyaya/internal/fetch"
	"github.com/nyayalegal/nyaya/internal/fusion"
	"github.com/nyayalegal/nyaya/internal/history"
	"github.com/nyayalegal/nyaya/internal/lexical"
	"github.com/nyayalegal/nyaya/internal/reason"
	"github.com/nyayalegal/nyaya/internal/semantic"
	"github.com/nyayalegal/nyaya/internal/sources"
)

// Components holds the wired retrieval pipeline.
type Components struct {
	Store    *corpus.Store
	Embedder embedding.Embedder
	Index    *semantic.Index
	LexIndex *lexical.Index
	Registry *sources.Registry
	Fetcher  *fetch.Fetcher
	Engine   *fusion.Engine
	Reasoner reason.Reasoner
	History  *history.Store // nil when disabled
}

// initializeComponents builds the pipeline bottom-up: corpus, embedder,
// semantic index, registry, fetcher, fusion engine, reasoner, history.
// withReasoner controls whether the reasoning client is created; retrieval
// commands work without an API key.
func initializeComponents(cfg *config.Config, logger *zap.Logger, withReasoner bool) (*Components, error) {
	chunks := corpus.DefaultChunks
	if cfg.Corpus.SupplementDir != "" {
		loader := corpus.NewLoader(cfg.Corpus.ChunkSize, cfg.Corpus.ChunkOverlap, logger)
		supplements, err := loader.LoadDir(cfg.Corpus.SupplementDir)
		if err != nil {
			return nil, fmt.Errorf("load supplement corpus: %w", err)
		}
		chunks = append(chunks, supplements...)
		logger.Info("supplement corpus loaded", zap.Int("chunks", len(supplements)))
	}
	store, err := corpus.NewStore(chunks)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}

	embedder, err := embedding.NewEmbedder(&cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	index, err := semantic.NewIndex(context.Background(), store, embedder)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("build semantic index: %w", err)
	}

	lexIndex, err := lexical.NewIndex(store)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("build keyword index: %w", err)
	}

	registry := sources.NewRegistry()
	if cfg.Sources.OverridePath != "" {
		registry, err = sources.NewRegistryFromFile(cfg.Sources.OverridePath)
		if err != nil {
			_ = lexIndex.Close()
			_ = embedder.Close()
			return nil, fmt.Errorf("load sources override: %w", err)
		}
		logger.Info("sources override loaded", zap.String("path", cfg.Sources.OverridePath))
	}

	cache := fetch.NewMemoryCache(cfg.Fetch.CacheTTL)
	fetcher := fetch.NewFetcher(cfg.Fetch, cache, logger)
	engine := fusion.NewEngine(index, registry, fetcher, cfg.Fusion, logger)

	var reasoner reason.Reasoner
	if withReasoner {
		if cfg.Reason.Demo {
			reasoner = reason.DemoReasoner{}
			logger.Info("demo mode: canned analyses, no reasoning service")
		} else {
			reasoner, err = reason.NewOpenAIReasoner(cfg.Reason, logger)
			if err != nil {
				_ = lexIndex.Close()
				_ = embedder.Close()
				return nil, err
			}
		}
	}

	var historyStore *history.Store
	if cfg.History.DatabasePath != "" {
		historyStore, err = history.NewStore(cfg.History.DatabasePath)
		if err != nil {
			_ = lexIndex.Close()
			_ = embedder.Close()
			return nil, fmt.Errorf("open history store: %w", err)
		}
	}

	return &Components{
		Store:    store,
		Embedder: embedder,
		Index:    index,
		LexIndex: lexIndex,
		Registry: registry,
		Fetcher:  fetcher,
		Engine:   engine,
		Reasoner: reasoner,
		History:  historyStore,
	}, nil
}

// loadRegistry builds just the source registry, honoring any override file.
func loadRegistry(cfg *config.Config) (*sources.Registry, error) {
	if cfg.Sources.OverridePath != "" {
		return sources.NewRegistryFromFile(cfg.Sources.OverridePath)
	}
	return sources.NewRegistry(), nil
}

// RebuildCorpus reloads the supplement directory and swaps both indexes to
// the new corpus. Called from the file watcher.
func (c *Components) RebuildCorpus(cfg *config.Config, logger *zap.Logger) {
	chunks := corpus.DefaultChunks
	if cfg.Corpus.SupplementDir != "" {
		loader := corpus.NewLoader(cfg.Corpus.ChunkSize, cfg.Corpus.ChunkOverlap, logger)
		supplements, err := loader.LoadDir(cfg.Corpus.SupplementDir)
		if err != nil {
			logger.Warn("supplement reload failed", zap.Error(err))
			return
		}
		chunks = append(chunks, supplements...)
	}
	store, err := corpus.NewStore(chunks)
	if err != nil {
		logger.Warn("corpus rebuild failed", zap.Error(err))
		return
	}
	if err := c.Index.Rebuild(context.Background(), store); err != nil {
		logger.Warn("semantic index rebuild failed", zap.Error(err))
		return
	}
	if err := c.LexIndex.Rebuild(store); err != nil {
		logger.Warn("keyword index rebuild failed", zap.Error(err))
	}
	c.Store = store
	logger.Info("corpus rebuilt", zap.Int("chunks", store.Len()))
}

// Close releases all component resources.
func (c *Components) Close() {
	if c.History != nil {
		_ = c.History.Close()
	}
	if c.Reasoner != nil {
		_ = c.Reasoner.Close()
	}
	if c.LexIndex != nil {
		_ = c.LexIndex.Close()
	}
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}
