package cache_impl

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type CacheI[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
	Remove(key K) (present bool)
}

// Cache keeps copies of orders by id. Callers get their own copy so a
// mutation outside never leaks into the cached value. An entry is never
// replaced by a snapshot with an older UpdatedAt.
type Cache struct {
	mu    sync.Mutex
	cache CacheI[string, *models.Order]
	log   logger.Logger
}

func NewCache(cache CacheI[string, *models.Order], log logger.Logger) *Cache {
	return &Cache{
		cache: cache,
		log:   log,
	}
}

func NewOrderLRU(log logger.Logger, size int, ttl time.Duration) *Cache {
	return NewCache(expirable.NewLRU[string, *models.Order](size, nil, ttl), log)
}

func (c *Cache) Add(key string, value *models.Order) (evicted bool) {
	if value == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.cache.Get(key); ok && cur != nil && cur.UpdatedAt.After(value.UpdatedAt) {
		c.log.Debug("cache_impl.Cache.Add", logger.String("stale_for", key))
		return false
	}

	cp := *value

	evicted = c.cache.Add(key, &cp)
	if evicted {
		c.log.Debug("cache_impl.Cache.Add", logger.String("evicted_for", key))
	}

	return evicted
}

func (c *Cache) Get(key string) (value *models.Order, ok bool) {
	value, ok = c.cache.Get(key)
	if !ok || value == nil {
		return nil, false
	}

	cp := *value

	return &cp, true
}

func (c *Cache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Remove(key)
}
