package corpus

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/extract"
	"github.com/nyayalegal/nyaya/internal/models"
)

// supplementExtensions are the document formats accepted as corpus supplements.
var supplementExtensions = []string{".txt", ".md", ".pdf", ".docx"}

// topicDirs maps supplement subdirectory names to topics. Files under a
// directory that is not listed here are skipped with a warning.
var topicDirs = map[string]models.Topic{
	"rti":               models.TopicRTI,
	"domestic-violence": models.TopicDomesticViolence,
	"divorce":           models.TopicDivorce,
}

// Loader ingests supplementary reference documents into knowledge chunks.
// The topic of each document is taken from its parent directory name
// (rti/, domestic-violence/, divorce/); the section label is the file name.
type Loader struct {
	extractor *extract.Extractor
	chunker   *Chunker
	logger    *zap.Logger
}

// NewLoader creates a loader. logger may be nil.
func NewLoader(chunkSize, chunkOverlap int, logger *zap.Logger) *Loader {
	return &Loader{
		extractor: extract.NewExtractor(),
		chunker:   NewChunker(chunkSize, chunkOverlap),
		logger:    logger,
	}
}

// LoadDir walks dir and returns chunks for every supported document found.
// A missing directory is not an error (supplements are optional); individual
// unreadable documents are skipped with a warning so one bad file cannot
// block startup.
func (l *Loader) LoadDir(dir string) ([]models.KnowledgeChunk, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var chunks []models.KnowledgeChunk
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supportedExtension(path) {
			return nil
		}
		topic, ok := topicForPath(dir, path)
		if !ok {
			if l.logger != nil {
				l.logger.Warn("supplement outside a topic directory, skipping",
					zap.String("path", path))
			}
			return nil
		}
		docChunks, err := l.loadFile(path, topic)
		if err != nil {
			if l.logger != nil {
				l.logger.Warn("supplement extraction failed, skipping",
					zap.String("path", path), zap.Error(err))
			}
			return nil
		}
		chunks = append(chunks, docChunks...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk supplement dir: %w", err)
	}
	return chunks, nil
}

func (l *Loader) loadFile(path string, topic models.Topic) ([]models.KnowledgeChunk, error) {
	text, err := l.extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	text = Preprocess(text)
	if text == "" {
		return nil, fmt.Errorf("no text content")
	}

	section := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var chunks []models.KnowledgeChunk
	for i, part := range l.chunker.Split(text) {
		chunks = append(chunks, models.KnowledgeChunk{
			ID:      supplementChunkID(path, i),
			Topic:   topic,
			Section: section,
			Text:    part,
		})
	}
	return chunks, nil
}

// supplementChunkID derives a stable chunk ID from the file path and chunk
// position, so reloading the same directory yields the same IDs.
func supplementChunkID(path string, index int) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(path))
	return fmt.Sprintf("doc_%x_%d", h.Sum64(), index)
}

func supportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range supplementExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// topicForPath resolves the topic directory a supplement file sits under.
func topicForPath(root, path string) (models.Topic, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return "", false
	}
	topic, ok := topicDirs[strings.ToLower(parts[0])]
	return topic, ok
}
