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
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
)

// FastStore is a local Store implementation using VictoriaMetrics fastcache.
// Expiration is tracked out of band since fastcache has no TTL support.
type FastStore struct {
	cache *fastcache.Cache
	ttls  sync.Map // map[string]time.Time
	mu    sync.RWMutex
}

// NewFastStore creates a new FastStore instance.
func NewFastStore(maxBytes int) *FastStore {
	if maxBytes <= 0 {
		maxBytes = 16 * 1024 * 1024 // default 16MB
	}
	return &FastStore{
		cache: fastcache.New(maxBytes),
	}
}

// Get returns the value for the given key.
func (fs *FastStore) Get(ctx context.Context, key string) ([]byte, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if exp, ok := fs.ttls.Load(key); ok {
		if time.Now().After(exp.(time.Time)) {
			return nil, false
		}
	}

	value, ok := fs.cache.HasGet(nil, []byte(key))
	if !ok {
		return nil, false
	}
	return value, true
}

// Set sets the value for the given key with expiration.
func (fs *FastStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.cache.Set([]byte(key), value)
	if ttl > 0 {
		fs.ttls.Store(key, time.Now().Add(ttl))
	} else {
		fs.ttls.Delete(key)
	}
}

// Invalidate removes a single key.
func (fs *FastStore) Invalidate(ctx context.Context, key string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.cache.Del([]byte(key))
	fs.ttls.Delete(key)
}

// InvalidateAll removes every key.
func (fs *FastStore) InvalidateAll(ctx context.Context) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.cache.Reset()
	fs.ttls.Range(func(k, _ any) bool {
		fs.ttls.Delete(k)
		return true
	})
}
