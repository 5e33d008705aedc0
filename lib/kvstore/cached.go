// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package kvstore

import (
	"context"

	"git.lukeshu.com/dsworkbench/lib/containers"
)

type cacheEntry struct {
	val    []byte
	exists bool
}

// CachedStore wraps a Store with a read-through, write-through cache
// of the most recently used keys.  Absent keys are cached too.
type CachedStore struct {
	inner Store
	cache *containers.LRUCache[string, cacheEntry]
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(inner Store, size int) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: containers.NewLRUCache[string, cacheEntry](size),
	}
}

func (s *CachedStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if entry, ok := s.cache.Get(key); ok {
		return append([]byte(nil), entry.val...), entry.exists, nil
	}
	val, ok, err := s.inner.Load(ctx, key)
	if err != nil {
		return nil, false, err
	}
	s.cache.Add(key, cacheEntry{val: append([]byte(nil), val...), exists: ok})
	return val, ok, nil
}

func (s *CachedStore) Store(ctx context.Context, key string, val []byte) error {
	if err := s.inner.Store(ctx, key, val); err != nil {
		s.cache.Remove(key)
		return err
	}
	s.cache.Add(key, cacheEntry{val: append([]byte(nil), val...), exists: true})
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		s.cache.Remove(key)
		return err
	}
	s.cache.Add(key, cacheEntry{exists: false})
	return nil
}

// Purge drops every cached entry, so that the next Load of each key
// goes to the underlying Store.
func (s *CachedStore) Purge() {
	s.cache.Purge()
}
