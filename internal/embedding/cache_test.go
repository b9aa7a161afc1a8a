package embedding

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestEmbeddingCacheLRU(t *testing.T) {
	c := NewEmbeddingCache(2)
	c.Set("a", []float32{1})
	c.Set("b", []float32{2})

	if _, ok := c.Get("a"); !ok {
		t.Error("expected a in cache")
	}
	// a was just touched, so inserting c should evict b.
	c.Set("c", []float32{3})
	if _, ok := c.Get("b"); ok {
		t.Error("expected b evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a retained")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c present")
	}
}

// Index builds embed chunks from parallel goroutines and every query path
// reads through the cache; a hit also promotes the entry in the recency
// list, so concurrent Gets must be safe under the race detector.
func TestEmbeddingCacheConcurrentGets(t *testing.T) {
	c := NewEmbeddingCache(64)
	for i := 0; i < 32; i++ {
		c.Set(fmt.Sprintf("chunk-%d", i), []float32{float32(i)})
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := fmt.Sprintf("chunk-%d", i%32)
				if vec, ok := c.Get(key); !ok || len(vec) != 1 {
					t.Errorf("missing or malformed entry %s", key)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMockEmbedderDeterministic(t *testing.T) {
	e := NewMockEmbedder(16)
	ctx := context.Background()

	a1, err := e.Embed(ctx, "how do I file an RTI")
	if err != nil {
		t.Fatal(err)
	}
	a2, err := e.Embed(ctx, "how do I file an RTI")
	if err != nil {
		t.Fatal(err)
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatal("same text produced different embeddings")
		}
	}

	b, err := e.Embed(ctx, "divorce by mutual consent")
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a1 {
		if a1[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts produced identical embeddings")
	}
}

func TestMockEmbedderUnitNorm(t *testing.T) {
	e := NewMockEmbedder(32)
	vec, err := e.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("expected unit norm, got %f", sum)
	}
}
