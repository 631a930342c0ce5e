package plexconfig

import (
	"sync"
	"time"

	"plexconsole/internal/platform/models"
)

type cachedConfig struct {
	config   models.TenantPlexConfig
	cachedAt time.Time
}

// ConfigCache is a process-wide read cache for tenant configurations. Entries
// hold deep copies so callers can never mutate a cached value in place.
type ConfigCache struct {
	store sync.Map // map[tenant_id]*cachedConfig
	ttl   time.Duration
}

func NewConfigCache(ttl time.Duration) *ConfigCache {
	return &ConfigCache{
		ttl: ttl,
	}
}

func (c *ConfigCache) Get(tenantID string) (*models.TenantPlexConfig, bool) {
	val, ok := c.store.Load(tenantID)
	if !ok {
		return nil, false
	}

	entry := val.(*cachedConfig)
	if time.Since(entry.cachedAt) > c.ttl {
		c.store.Delete(tenantID)
		return nil, false
	}

	cfg := entry.config.Clone()
	return &cfg, true
}

func (c *ConfigCache) Set(tenantID string, cfg *models.TenantPlexConfig) {
	c.store.Store(tenantID, &cachedConfig{
		config:   cfg.Clone(),
		cachedAt: time.Now(),
	})
}

func (c *ConfigCache) Invalidate(tenantID string) {
	c.store.Delete(tenantID)
}
