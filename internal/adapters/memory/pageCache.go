package memory

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// PageCache is an in-memory implementation of the PageCache port with
// an injectable clock, so tests can step past the TTL without
// sleeping.
type PageCache struct {
	mu      sync.Mutex
	Now     func() time.Time
	entries map[string]cacheEntry
}

func NewPageCache() *PageCache {
	return &PageCache{
		Now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if c.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.body, true, nil
}

func (c *PageCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{body: body, expiresAt: c.Now().Add(ttl)}
	return nil
}

func (c *PageCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	return nil
}
