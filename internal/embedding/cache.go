package embedding

import (
	"container/list"
	"sync"
)

// EmbeddingCache is an LRU cache keyed by input text. Index builds embed
// corpus chunks from several goroutines at once and every HTTP query embeds
// through the same cache, so Get takes the write lock too: a hit promotes
// the entry in the recency list, which mutates it.
type EmbeddingCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	recency  *list.List
}

type embeddingEntry struct {
	text   string
	vector []float32
}

// NewEmbeddingCache creates a cache holding at most capacity embeddings.
func NewEmbeddingCache(capacity int) *EmbeddingCache {
	return &EmbeddingCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		recency:  list.New(),
	}
}

// Get returns the cached embedding for text and marks it recently used.
func (c *EmbeddingCache) Get(text string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[text]
	if !ok {
		return nil, false
	}
	c.recency.MoveToFront(elem)
	return elem.Value.(*embeddingEntry).vector, true
}

// Set stores the embedding for text, evicting the least recently used entry
// when the cache is full.
func (c *EmbeddingCache) Set(text string, vector []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[text]; ok {
		c.recency.MoveToFront(elem)
		elem.Value.(*embeddingEntry).vector = vector
		return
	}

	c.entries[text] = c.recency.PushFront(&embeddingEntry{text: text, vector: vector})
	if c.recency.Len() > c.capacity {
		oldest := c.recency.Back()
		if oldest != nil {
			c.recency.Remove(oldest)
			delete(c.entries, oldest.Value.(*embeddingEntry).text)
		}
	}
}
