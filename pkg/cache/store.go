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
	"time"
)

// Store 定义键值缓存抽象，带显式失效契约。
// 作为依赖注入使用，避免环境全局缓存状态。
type Store interface {
	// Get 获取缓存值，第二个返回值表示是否命中
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set 设置缓存值，ttl <= 0 表示不过期
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Invalidate 删除单个 key
	Invalidate(ctx context.Context, key string)
	// InvalidateAll 清空所有 key
	InvalidateAll(ctx context.Context)
}

// StoreConf holds cache store configuration.
type StoreConf struct {
	Driver   string        // local 或 redis
	MaxBytes int           // 本地缓存最大字节数
	TTL      time.Duration // 默认过期时间
	Prefix   string        // redis key 前缀
}
