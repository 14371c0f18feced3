// internal/catalog/cached_store.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"inventory-risk-service/internal/common/logger"
	"inventory-risk-service/internal/common/metrics"
)

// Cache key layout
const (
	cacheKeyProducts = "catalog:products"
	cacheKeyProduct  = "catalog:product:%s"
)

// CachedStore is a read-through Redis cache in front of another Store.
// Cache failures are logged and the request falls through to the
// underlying store, so Redis being down never fails a lookup.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

// NewCachedStore wraps a store with a Redis read-through cache.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// List returns every product, serving from cache when possible.
func (s *CachedStore) List(ctx context.Context) ([]Product, error) {
	cached, err := s.client.Get(ctx, cacheKeyProducts).Result()
	if err == nil {
		var products []Product
		if jsonErr := json.Unmarshal([]byte(cached), &products); jsonErr == nil {
			metrics.CatalogRequests.WithLabelValues("cache", "hit").Inc()
			return products, nil
		}
		// Corrupt cache entry, drop it and reload
		s.client.Del(ctx, cacheKeyProducts)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("catalog cache read failed, falling through", map[string]interface{}{
			"key":   cacheKeyProducts,
			"error": err.Error(),
		})
	}

	metrics.CatalogRequests.WithLabelValues("cache", "miss").Inc()

	products, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeInCache(ctx, cacheKeyProducts, products)
	return products, nil
}

// Get returns the product with the given id, serving from cache when possible.
func (s *CachedStore) Get(ctx context.Context, id string) (Product, error) {
	key := fmt.Sprintf(cacheKeyProduct, id)

	cached, err := s.client.Get(ctx, key).Result()
	if err == nil {
		var p Product
		if jsonErr := json.Unmarshal([]byte(cached), &p); jsonErr == nil {
			metrics.CatalogRequests.WithLabelValues("cache", "hit").Inc()
			return p, nil
		}
		s.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("catalog cache read failed, falling through", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	metrics.CatalogRequests.WithLabelValues("cache", "miss").Inc()

	p, err := s.inner.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	s.storeInCache(ctx, key, p)
	return p, nil
}

func (s *CachedStore) storeInCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.log.Warn("catalog cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
