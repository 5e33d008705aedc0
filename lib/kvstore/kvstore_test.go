// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/dsworkbench/lib/kvstore"
)

func testStore(ctx context.Context, t *testing.T, store kvstore.Store) {
	t.Helper()

	_, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Store(ctx, "k", []byte("v1")))
	val, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), val)

	// whole-value replacement
	require.NoError(t, store.Store(ctx, "k", []byte("2")))
	val, _, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)

	// the caller owns the returned slice
	val[0] = 'X'
	val, _, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, store.Delete(ctx, "k"))

	for _, key := range []string{"", ".", "..", "a/b", `a\b`, ".hidden"} {
		assert.ErrorIsf(t, store.Store(ctx, key, nil), kvstore.ErrInvalidKey, "key=%q", key)
		_, _, err := store.Load(ctx, key)
		assert.ErrorIsf(t, err, kvstore.ErrInvalidKey, "key=%q", key)
		assert.ErrorIsf(t, store.Delete(ctx, key), kvstore.ErrInvalidKey, "key=%q", key)
	}
}

func TestMemStore(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)
	testStore(ctx, t, new(kvstore.MemStore))
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)
	dir := filepath.Join(t.TempDir(), "state")
	store, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
	testStore(ctx, t, store)

	require.NoError(t, store.Store(ctx, "k", []byte("on disk")))
	dat, err := os.ReadFile(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(dat))

	// no temporary files left behind
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, ents, 1)
}

func TestCachedStore(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)
	testStore(ctx, t, kvstore.NewCachedStore(new(kvstore.MemStore), 4))
}

type countingStore struct {
	kvstore.MemStore
	loads int
}

func (s *countingStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.loads++
	return s.MemStore.Load(ctx, key)
}

func TestCachedStoreHits(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, false)
	inner := new(countingStore)
	store := kvstore.NewCachedStore(inner, 4)

	_, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, inner.loads)

	require.NoError(t, store.Store(ctx, "k", []byte("v")))
	val, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)
	assert.Equal(t, 1, inner.loads)

	store.Purge()
	val, ok, err = store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)
	assert.Equal(t, 2, inner.loads)
}
