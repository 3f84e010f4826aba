package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

const defaultOwnershipTTL = 5 * time.Minute

// CacheObserver is told about every cache lookup (metrics).
type CacheObserver func(hit bool)

// OwnershipCache is a read-through cache of ownership records in front of a
// ports.ResourceStore.
// Key format: ownership:<kind>:<id>
//
// Owners never change, so a cached record can only go stale through a soft
// delete or a publish. Both invalidate the key. Repositories re-check
// deleted_at on every mutation, so a stale hit can never resurrect a record.
type OwnershipCache struct {
	client  *redis.Client
	next    ports.ResourceStore
	ttl     time.Duration
	observe CacheObserver
	log     zerolog.Logger
}

func NewOwnershipCache(client *redis.Client, next ports.ResourceStore, ttl time.Duration, observe CacheObserver, log zerolog.Logger) *OwnershipCache {
	if ttl <= 0 {
		ttl = defaultOwnershipTTL
	}
	if observe == nil {
		observe = func(bool) {}
	}
	return &OwnershipCache{client: client, next: next, ttl: ttl, observe: observe, log: log}
}

// FindByID serves from Redis when possible. A Redis failure degrades to a
// direct store read. Missing records are not cached.
func (c *OwnershipCache) FindByID(ctx context.Context, kind domain.ResourceKind, id int64) (*domain.Resource, error) {
	key := c.key(kind, id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var res domain.Resource
		if jsonErr := json.Unmarshal(raw, &res); jsonErr == nil {
			c.observe(true)
			return &res, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable ownership cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("ownership cache read failed")
	}
	c.observe(false)

	res, err := c.next.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(res); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("ownership cache write failed")
		}
	}
	return res, nil
}

// Invalidate drops the cached record of kind/id.
func (c *OwnershipCache) Invalidate(ctx context.Context, kind domain.ResourceKind, id int64) error {
	if err := c.client.Del(ctx, c.key(kind, id)).Err(); err != nil {
		return fmt.Errorf("invalidate %s %d: %w", kind, id, err)
	}
	return nil
}

func (c *OwnershipCache) key(kind domain.ResourceKind, id int64) string {
	return fmt.Sprintf("ownership:%s:%d", kind, id)
}
