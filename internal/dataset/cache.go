package dataset

import (
	"path/filepath"
	"sync"

	"github.com/arkose/analytics-api/internal/models"
)

// Cache is a read-through store of parsed record sets keyed by source path.
// A source is loaded once and the cached slice is treated as read-only from
// then on; the only invalidation is an explicit Reload. Load failures are not
// cached, so a source that appears later is picked up on the next read.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]models.DailyRecord
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]models.DailyRecord)}
}

// Records returns the parsed records for path, loading them on first access.
// Safe for concurrent use by multiple rendering requests.
func (c *Cache) Records(path string) ([]models.DailyRecord, error) {
	key := filepath.Clean(path)

	c.mu.RLock()
	records, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return records, nil
	}

	return c.load(key)
}

// Reload discards any cached records for path and parses the source again.
func (c *Cache) Reload(path string) ([]models.DailyRecord, error) {
	key := filepath.Clean(path)

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return c.load(key)
}

func (c *Cache) load(key string) ([]models.DailyRecord, error) {
	records, err := Load(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another request may have loaded the same source concurrently; keep the
	// existing slice so readers never observe two copies of one source.
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = records
	return records, nil
}
