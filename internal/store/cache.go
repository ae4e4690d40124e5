package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTokenTTL bounds how long a revoked token can keep authenticating
// from the cache after its account is deleted.
const DefaultTokenTTL = 15 * time.Minute

// TokenCache fronts Store.ResolveToken with Redis: cache hit first, database
// on miss, best-effort write-back. The cache is an availability and latency
// aid only - a miss or a Redis outage degrades to the database lookup, never
// to an authentication bypass.
type TokenCache struct {
	rdb   *redis.Client
	store *Store
	ttl   time.Duration
}

// NewTokenCache wraps the store's token resolution with a Redis cache.
// A zero ttl falls back to DefaultTokenTTL.
func NewTokenCache(rdb *redis.Client, store *Store, ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCache{rdb: rdb, store: store, ttl: ttl}
}

func tokenKey(token string) string {
	return "auth:token:" + token
}

// ResolveToken maps a bearer token to an account identity.
func (c *TokenCache) ResolveToken(ctx context.Context, token string) (uuid.UUID, error) {
	if val, err := c.rdb.Get(ctx, tokenKey(token)).Result(); err == nil {
		if uid, err := uuid.Parse(val); err == nil {
			return uid, nil
		}
	}

	uid, err := c.store.ResolveToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	// Best effort; a failed SET only costs the next lookup a database hit.
	c.rdb.Set(ctx, tokenKey(token), uid.String(), c.ttl)

	return uid, nil
}
