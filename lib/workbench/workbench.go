// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package workbench ties the data structures to their persistent
// storage: a Session is one user's lists, stack, and queue.
package workbench

import (
	"context"

	"github.com/datawire/dlib/derror"

	"git.lukeshu.com/dsworkbench/lib/containers"
	"git.lukeshu.com/dsworkbench/lib/kvstore"
	"git.lukeshu.com/dsworkbench/lib/registry"
	"git.lukeshu.com/dsworkbench/lib/snapshot"
)

// A Session owns an independent set of lists, a stack, and a queue.
// It is not safe for concurrent use.
type Session struct {
	Lists *registry.Registry
	Stack *containers.Stack[string]
	Queue *containers.Queue[string]

	store kvstore.Store
}

// Open rehydrates a Session from the store.  Unusable saved state is
// logged and discarded, never returned as an error.
func Open(ctx context.Context, store kvstore.Store) *Session {
	sess := &Session{
		Lists: snapshot.LoadLists(ctx, store),
		Stack: new(containers.Stack[string]),
		Queue: new(containers.Queue[string]),
		store: store,
	}
	snapshot.LoadStackQueue(ctx, store, sess.Stack, sess.Queue)
	return sess
}

// SaveLists persists the lists.
func (sess *Session) SaveLists(ctx context.Context) error {
	return snapshot.SaveLists(ctx, sess.store, sess.Lists)
}

// SaveStackQueue persists the stack and the queue.
func (sess *Session) SaveStackQueue(ctx context.Context) error {
	return snapshot.SaveStackQueue(ctx, sess.store, sess.Stack, sess.Queue)
}

// Save persists everything, attempting every write even if an
// earlier one fails.
func (sess *Session) Save(ctx context.Context) error {
	var errs derror.MultiError
	for _, fn := range []func(context.Context) error{
		sess.SaveLists,
		sess.SaveStackQueue,
	} {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddToBoth pushes val onto the stack and enqueues it onto the queue.
func (sess *Session) AddToBoth(val string) {
	sess.Stack.Push(val)
	sess.Queue.Enqueue(val)
}
