// Package sources holds the web source registry: for each legal topic, an
// ordered list of authoritative government portals to fetch live context from.
package sources

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nyayalegal/nyaya/internal/models"
)

// Registry maps topics to their configured sources. Lookups for unconfigured
// topics return an empty list, never an error; the fusion pipeline degrades
// to semantic-only context in that case.
type Registry struct {
	mu      sync.RWMutex
	byTopic map[models.Topic][]models.Source
}

// NewRegistry returns a registry with the built-in government portal map.
func NewRegistry() *Registry {
	return &Registry{byTopic: defaultSources()}
}

// NewRegistryFromFile loads a registry override from path. YAML (.yaml/.yml)
// and XLSX (.xlsx) registries are supported; legal teams tend to maintain the
// portal list as a spreadsheet, ops as YAML.
func NewRegistryFromFile(path string) (*Registry, error) {
	var (
		byTopic map[models.Topic][]models.Source
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		byTopic, err = loadYAML(path)
	case ".xlsx":
		byTopic, err = loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported registry format %q (use .yaml or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if len(byTopic) == 0 {
		return nil, fmt.Errorf("registry file %s defines no sources", path)
	}
	return &Registry{byTopic: byTopic}, nil
}

// Lookup returns the ordered source list for topic. The returned slice is a
// copy; callers may not affect the registry through it.
func (r *Registry) Lookup(topic models.Topic) []models.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	srcs := r.byTopic[topic]
	out := make([]models.Source, len(srcs))
	copy(out, srcs)
	return out
}

// All returns every configured topic and its sources.
func (r *Registry) All() map[models.Topic][]models.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[models.Topic][]models.Source, len(r.byTopic))
	for topic, srcs := range r.byTopic {
		cp := make([]models.Source, len(srcs))
		copy(cp, srcs)
		out[topic] = cp
	}
	return out
}

// Replace swaps the registry contents. Used by the reload watcher when the
// override file changes; the map is replaced as a whole, never mutated in
// place.
func (r *Registry) Replace(byTopic map[models.Topic][]models.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTopic = byTopic
}

// Reload re-reads the override file at path and replaces the registry
// contents. On error the previous contents are kept.
func (r *Registry) Reload(path string) error {
	loaded, err := NewRegistryFromFile(path)
	if err != nil {
		return err
	}
	r.Replace(loaded.byTopic)
	return nil
}
