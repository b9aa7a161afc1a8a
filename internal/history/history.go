// Package history provides the SQLite audit log of completed analyses.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nyayalegal/nyaya/internal/models"
)

// Store records analyses for later review. Entries are append-only; there
// is no update path.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dbPath. Parent
// directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		topic TEXT NOT NULL,
		context_source TEXT NOT NULL,
		sources_used TEXT,
		kill_switch INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
	CREATE INDEX IF NOT EXISTS idx_analyses_topic ON analyses(topic);
	`
	_, err := db.Exec(schema)
	return err
}

// Record appends one completed analysis and returns its generated ID.
func (s *Store) Record(ctx context.Context, query string, analysis *models.Analysis) (string, error) {
	sourcesJSON, err := json.Marshal(analysis.SourcesUsed)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sources: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, query, topic, context_source, sources_used, kill_switch, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, query, string(analysis.IntentDetected), string(analysis.ContextSource),
		string(sourcesJSON), analysis.KillSwitchTriggered, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to record analysis: %w", err)
	}
	return id, nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, topic, context_source, sources_used, kill_switch, created_at
		FROM analyses ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var topic, contextSource, sourcesJSON string
		if err := rows.Scan(&entry.ID, &entry.Query, &topic, &contextSource,
			&sourcesJSON, &entry.KillSwitch, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Topic = models.Topic(topic)
		entry.ContextSource = models.ContextSource(contextSource)
		if sourcesJSON != "" {
			if err := json.Unmarshal([]byte(sourcesJSON), &entry.SourcesUsed); err != nil {
				return nil, fmt.Errorf("failed to parse sources for %s: %w", entry.ID, err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded analyses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&n)
	return n, err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
