package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/forms"
	"github.com/nyayalegal/nyaya/internal/models"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("analyze request", zap.Int("query_len", len(req.Text)))

	fused, err := s.engine.Retrieve(r.Context(), req.Text)
	if err != nil {
		s.logger.Error("retrieval failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	analysis, err := s.reasoner.Analyze(r.Context(), req.Text, fused)
	if err != nil {
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusBadGateway, "reasoning service unavailable")
		return
	}

	if s.history != nil {
		if _, err := s.history.Record(r.Context(), req.Text, analysis); err != nil {
			// History is an audit convenience; a failed write never blocks
			// the answer.
			s.logger.Warn("history record failed", zap.Error(err))
		}
	}

	s.respondJSON(w, http.StatusOK, analysis)
}

type extractFormRequest struct {
	Topic        string `json:"topic"`
	Conversation string `json:"conversation"`
}

type extractFormResponse struct {
	Topic   models.Topic      `json:"topic"`
	Title   string            `json:"title"`
	Values  map[string]string `json:"values"`
	Missing []forms.Field     `json:"missing"`
}

func (s *Server) handleExtractForm(w http.ResponseWriter, r *http.Request) {
	var req extractFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Conversation == "" {
		s.respondError(w, http.StatusBadRequest, "conversation cannot be empty")
		return
	}

	schema, err := forms.Lookup(models.ParseTopic(req.Topic))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	values, err := s.reasoner.ExtractForm(r.Context(), req.Conversation, schema.FieldNames())
	if err != nil {
		s.logger.Error("form extraction failed", zap.Error(err))
		s.respondError(w, http.StatusBadGateway, "reasoning service unavailable")
		return
	}

	s.respondJSON(w, http.StatusOK, extractFormResponse{
		Topic:   schema.Topic,
		Title:   schema.Title,
		Values:  values,
		Missing: schema.Missing(values),
	})
}

func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	topic := models.ParseTopic(r.URL.Query().Get("topic"))
	if err := topic.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, used := s.engine.GetContext(r.Context(), topic)
	if used == nil {
		used = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"topic":         topic,
		"combined_text": text,
		"sources_used":  used,
	})
}

func (s *Server) handleDebugRetrieve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q parameter required")
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	views, err := s.engine.Debug(r.Context(), query, n)
	if err != nil {
		s.logger.Error("debug retrieve failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleDebugLexical(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q parameter required")
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	results, err := s.lexIndex.Search(r.Context(), query, n)
	if err != nil {
		s.logger.Error("lexical search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleDebugSources(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("topic"); raw != "" {
		topic := models.ParseTopic(raw)
		if err := topic.Validate(); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondJSON(w, http.StatusOK, map[models.Topic][]models.Source{
			topic: s.registry.Lookup(topic),
		})
		return
	}
	s.respondJSON(w, http.StatusOK, s.registry.All())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.respondError(w, http.StatusNotFound, "history is disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := s.history.List(r.Context(), limit)
	if err != nil {
		s.logger.Error("history list failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	s.respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	topics := make([]models.Topic, len(models.Topics))
	copy(topics, models.Topics)

	resp := map[string]interface{}{
		"chunks": s.index.Size(),
		"topics": topics,
		"config": map[string]interface{}{
			"embedding_provider":   s.config.Embedding.Provider,
			"embedding_dimensions": s.config.Embedding.Dimensions,
			"fetch_timeout":        s.config.Fetch.Timeout.String(),
			"cache_ttl":            s.config.Fetch.CacheTTL.String(),
			"fusion_threshold":     s.config.Fusion.MinWebContext,
			"top_k":                s.config.Fusion.TopK,
			"demo_mode":            s.config.Reason.Demo,
			"history_enabled":      s.history != nil,
		},
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
