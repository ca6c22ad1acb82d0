package rates

import (
	"sync"
	"time"

	"service-fxrates/internal/models"
)

// Cache keeps the most recent rate table for readers that outlive a single
// fetch and parse cycle. Set replaces the table wholesale; entries are
// never updated in place.
type Cache struct {
	base string

	mu        sync.RWMutex
	table     Table
	fetchedAt time.Time
}

func NewCache(base string) *Cache {
	return &Cache{base: base}
}

func (c *Cache) Set(t Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = t
	c.fetchedAt = time.Now()
}

// Latest returns the cached table and reports whether anything has been
// cached yet.
func (c *Cache) Latest() (models.LatestRates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return models.LatestRates{}, false
	}
	return models.LatestRates{
		Base:      c.base,
		FetchedAt: c.fetchedAt,
		Rates:     c.table,
	}, true
}
