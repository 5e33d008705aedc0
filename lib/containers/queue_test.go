// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/dsworkbench/lib/containers"
)

func TestQueueScenario(t *testing.T) {
	t.Parallel()
	var q containers.Queue[string]
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	front, ok := q.PeekFront()
	assert.True(t, ok)
	assert.Equal(t, "a", front)
	rear, ok := q.PeekRear()
	assert.True(t, ok)
	assert.Equal(t, "c", rear)

	val, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", val)
	assert.Equal(t, []string{"b", "c"}, q.Snapshot())
}

func TestQueueEmpty(t *testing.T) {
	t.Parallel()
	var q containers.Queue[int]
	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.PeekFront()
	assert.False(t, ok)
	_, ok = q.PeekRear()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, []int{}, q.Snapshot())
}

func TestQueueFIFO(t *testing.T) {
	t.Parallel()
	for n := 0; n < 40; n++ {
		var q containers.Queue[int]
		for i := 0; i < n; i++ {
			q.Enqueue(i)
		}
		require.Equal(t, n, q.Len())
		for i := 0; i < n; i++ {
			val, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, i, val)
		}
		require.True(t, q.IsEmpty())
	}
}

func TestQueueWraparound(t *testing.T) {
	t.Parallel()
	var q containers.Queue[int]
	var model []int
	next := 0
	// Interleave so that the ring's front walks all the way around
	// several times, and the buffer grows while wrapped.
	for round := 0; round < 50; round++ {
		for i := 0; i < 3; i++ {
			q.Enqueue(next)
			model = append(model, next)
			next++
		}
		for i := 0; i < 2; i++ {
			val, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, model[0], val)
			model = model[1:]
		}
		require.Equal(t, model, q.Snapshot())
		front, _ := q.PeekFront()
		rear, _ := q.PeekRear()
		require.Equal(t, model[0], front)
		require.Equal(t, model[len(model)-1], rear)
	}
}

func TestQueueSnapshotRestore(t *testing.T) {
	t.Parallel()
	var q containers.Queue[string]
	in := []string{"x", "y"}
	q.Restore(in)
	in[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, q.Snapshot())

	q.Enqueue("z")
	val, _ := q.Dequeue()
	assert.Equal(t, "x", val)
	assert.Equal(t, []string{"y", "z"}, q.Snapshot())

	q.Clear()
	assert.True(t, q.IsEmpty())
	q.Restore(nil)
	q.Enqueue("after")
	assert.Equal(t, []string{"after"}, q.Snapshot())
}
