// Package server provides the HTTP API for Nyaya.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/fusion"
	"github.com/nyayalegal/nyaya/internal/history"
	"github.com/nyayalegal/nyaya/internal/lexical"
	"github.com/nyayalegal/nyaya/internal/reason"
	"github.com/nyayalegal/nyaya/internal/semantic"
	"github.com/nyayalegal/nyaya/internal/sources"
)

// Server is the HTTP server for the Nyaya API.
type Server struct {
	engine   *fusion.Engine
	reasoner reason.Reasoner
	index    *semantic.Index
	lexIndex *lexical.Index
	registry *sources.Registry
	history  *history.Store // nil when history is disabled
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies. historyStore may
// be nil.
func NewServer(
	engine *fusion.Engine,
	reasoner reason.Reasoner,
	index *semantic.Index,
	lexIndex *lexical.Index,
	registry *sources.Registry,
	historyStore *history.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:   engine,
		reasoner: reasoner,
		index:    index,
		lexIndex: lexIndex,
		registry: registry,
		history:  historyStore,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/extract_form", s.handleExtractForm)
	r.Get("/api/context", s.handleContext)
	r.Get("/api/debug/retrieve", s.handleDebugRetrieve)
	r.Get("/api/debug/lexical", s.handleDebugLexical)
	r.Get("/api/debug/sources", s.handleDebugSources)
	r.Get("/api/history", s.handleHistory)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
