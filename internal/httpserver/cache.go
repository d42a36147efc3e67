package httpserver

import "sync"

// TagCache is an in-memory response cache keyed by (tag, key). Mutation
// actions drop a whole tag at once so the next read refetches from the
// vendor.
type TagCache struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte
}

func NewTagCache() *TagCache {
	return &TagCache{entries: make(map[string]map[string][]byte)}
}

func (c *TagCache) Get(tag, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[tag][key]
	return payload, ok
}

func (c *TagCache) Set(tag, key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[tag] == nil {
		c.entries[tag] = make(map[string][]byte)
	}
	c.entries[tag][key] = payload
}

// Invalidate drops every entry stored under the tag.
func (c *TagCache) Invalidate(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tag)
}
