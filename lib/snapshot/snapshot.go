// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package snapshot persists the full state of the lists, stack, and
// queue to a kvstore.Store as JSON, one fixed key per widget.
//
// Loading never fails: a missing key yields empty state, and a value
// that cannot be read or parsed yields empty state plus a warning in
// the log.
package snapshot

import (
	"bytes"
	"context"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/dsworkbench/lib/containers"
	"git.lukeshu.com/dsworkbench/lib/kvstore"
	"git.lukeshu.com/dsworkbench/lib/registry"
)

const (
	KeyLists      = "linkedlists"
	KeyStackQueue = "stackqueue"
)

// StackQueue is the persisted form of the stack and the queue.
type StackQueue struct {
	Stack []string `json:"stack"`
	Queue []string `json:"queue"`
}

func encode(obj any) ([]byte, error) {
	var buf bytes.Buffer
	if err := lowmemjson.Encode(&buf, obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// load reads key from store and decodes it into ptr, returning false
// if there is nothing usable there.
func load(ctx context.Context, store kvstore.Store, key string, ptr any) bool {
	ctx = dlog.WithField(ctx, "dsworkbench.store.key", key)
	dat, ok, err := store.Load(ctx, key)
	if err != nil {
		dlog.Warnf(ctx, "could not read saved state, starting empty: %v", err)
		return false
	}
	if !ok {
		dlog.Debug(ctx, "no saved state")
		return false
	}
	if err := lowmemjson.DecodeThenEOF(bytes.NewReader(dat), ptr); err != nil {
		dlog.Warnf(ctx, "discarding malformed saved state, starting empty: %v", err)
		return false
	}
	return true
}

// SaveLists writes a snapshot of every list in reg.
func SaveLists(ctx context.Context, store kvstore.Store, reg *registry.Registry) error {
	dat, err := encode(reg.Snapshot())
	if err != nil {
		return err
	}
	return store.Store(ctx, KeyLists, dat)
}

// LoadLists returns a registry rebuilt from the saved snapshot, or an
// empty registry if there is no usable snapshot.
func LoadLists(ctx context.Context, store kvstore.Store) *registry.Registry {
	reg := registry.New()
	var snap registry.Snapshot
	if !load(ctx, store, KeyLists, &snap) {
		return reg
	}
	if skipped := reg.Restore(snap); len(skipped) > 0 {
		dlog.Warnf(dlog.WithField(ctx, "dsworkbench.store.key", KeyLists),
			"skipped %d saved lists with unusable names: %q", len(skipped), skipped)
	}
	return reg
}

// SaveStackQueue writes a snapshot of the stack and the queue.
func SaveStackQueue(ctx context.Context, store kvstore.Store, stack *containers.Stack[string], queue *containers.Queue[string]) error {
	dat, err := encode(StackQueue{
		Stack: stack.Snapshot(),
		Queue: queue.Snapshot(),
	})
	if err != nil {
		return err
	}
	return store.Store(ctx, KeyStackQueue, dat)
}

// LoadStackQueue restores the stack and the queue from the saved
// snapshot; both are left empty if there is no usable snapshot.  A
// snapshot that lacks one of the two leaves that one empty.
func LoadStackQueue(ctx context.Context, store kvstore.Store, stack *containers.Stack[string], queue *containers.Queue[string]) {
	stack.Clear()
	queue.Clear()
	var snap StackQueue
	if !load(ctx, store, KeyStackQueue, &snap) {
		return
	}
	stack.Restore(snap.Stack)
	queue.Restore(snap.Queue)
}
