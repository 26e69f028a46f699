// Copyright 2025 Staffly Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-staffly/staffly/pkg/log"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store implementation backed by Redis.
// Keys live under a generation namespace; InvalidateAll bumps the
// generation counter instead of scanning keys, stale generations
// simply age out via TTL.
type RedisStore struct {
	cache  ICache
	prefix string
}

// NewRedisStore creates a RedisStore with the given key prefix.
func NewRedisStore(cache ICache, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "staffly:store"
	}
	return &RedisStore{cache: cache, prefix: prefix}
}

func (rs *RedisStore) genKey() string {
	return rs.prefix + ":gen"
}

func (rs *RedisStore) render(ctx context.Context, key string) string {
	gen, err := rs.cache.Get(ctx, rs.genKey()).Int64()
	if err != nil && err != redis.Nil {
		log.Warnw("redis store generation lookup failed", "error", err)
	}
	return fmt.Sprintf("%s:g%d:%s", rs.prefix, gen, key)
}

// Get returns the value for the given key.
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := rs.cache.Get(ctx, rs.render(ctx, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warnw("redis store get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return value, true
}

// Set sets the value for the given key with expiration.
func (rs *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := rs.cache.Set(ctx, rs.render(ctx, key), value, ttl).Err(); err != nil {
		log.Warnw("redis store set failed", "key", key, "error", err)
	}
}

// Invalidate removes a single key.
func (rs *RedisStore) Invalidate(ctx context.Context, key string) {
	if err := rs.cache.Del(ctx, rs.render(ctx, key)).Err(); err != nil {
		log.Warnw("redis store del failed", "key", key, "error", err)
	}
}

// InvalidateAll bumps the generation counter so every key misses.
func (rs *RedisStore) InvalidateAll(ctx context.Context) {
	if err := rs.cache.Incr(ctx, rs.genKey()).Err(); err != nil {
		log.Warnw("redis store invalidate all failed", "error", err)
	}
}
