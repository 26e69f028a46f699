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
	"testing"
	"time"
)

func TestFastStore_Set_Get(t *testing.T) {
	store := NewFastStore(1024 * 1024)
	ctx := context.Background()

	store.Set(ctx, "k1", []byte("v1"), time.Hour)

	value, ok := store.Get(ctx, "k1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(value) != "v1" {
		t.Errorf("expected v1, got %s", value)
	}
}

func TestFastStore_Miss(t *testing.T) {
	store := NewFastStore(1024 * 1024)

	if _, ok := store.Get(context.Background(), "absent"); ok {
		t.Error("expected cache miss for absent key")
	}
}

func TestFastStore_Expiration(t *testing.T) {
	store := NewFastStore(1024 * 1024)
	ctx := context.Background()

	store.Set(ctx, "expiring", []byte("v"), 50*time.Millisecond)

	if _, ok := store.Get(ctx, "expiring"); !ok {
		t.Fatal("expected hit before expiration")
	}

	time.Sleep(80 * time.Millisecond)

	if _, ok := store.Get(ctx, "expiring"); ok {
		t.Error("expected miss after expiration")
	}
}

func TestFastStore_Invalidate(t *testing.T) {
	store := NewFastStore(1024 * 1024)
	ctx := context.Background()

	store.Set(ctx, "k1", []byte("v1"), time.Hour)
	store.Set(ctx, "k2", []byte("v2"), time.Hour)

	store.Invalidate(ctx, "k1")

	if _, ok := store.Get(ctx, "k1"); ok {
		t.Error("expected k1 to be gone")
	}
	if _, ok := store.Get(ctx, "k2"); !ok {
		t.Error("expected k2 to survive")
	}
}

func TestFastStore_InvalidateAll(t *testing.T) {
	store := NewFastStore(1024 * 1024)
	ctx := context.Background()

	store.Set(ctx, "k1", []byte("v1"), time.Hour)
	store.Set(ctx, "k2", []byte("v2"), 0)

	store.InvalidateAll(ctx)

	if _, ok := store.Get(ctx, "k1"); ok {
		t.Error("expected k1 to be gone")
	}
	if _, ok := store.Get(ctx, "k2"); ok {
		t.Error("expected k2 to be gone")
	}
}
