// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

// Queue is a FIFO container backed by a growable ring buffer, so
// that both Enqueue and Dequeue are O(1) amortized.  The zero Queue
// is empty and ready to use.
type Queue[T any] struct {
	buf   []T
	front int
	len   int
}

const queueMinCap = 8

func (q *Queue[T]) Len() int {
	return q.len
}

func (q *Queue[T]) IsEmpty() bool {
	return q.len == 0
}

func (q *Queue[T]) at(i int) int {
	return (q.front + i) % len(q.buf)
}

func (q *Queue[T]) grow() {
	newCap := 2 * len(q.buf)
	if newCap < queueMinCap {
		newCap = queueMinCap
	}
	buf := make([]T, newCap)
	q.copyTo(buf)
	q.buf = buf
	q.front = 0
}

// copyTo copies the queue's contents, front first, into dst, which
// must have room for at least q.len values.
func (q *Queue[T]) copyTo(dst []T) {
	if q.len == 0 {
		return
	}
	if end := q.front + q.len; end <= len(q.buf) {
		copy(dst, q.buf[q.front:end])
	} else {
		n := copy(dst, q.buf[q.front:])
		copy(dst[n:], q.buf[:end-len(q.buf)])
	}
}

// Enqueue adds a value at the rear of the queue.
func (q *Queue[T]) Enqueue(val T) {
	if q.len == len(q.buf) {
		q.grow()
	}
	q.buf[q.at(q.len)] = val
	q.len++
}

// Dequeue removes the value at the front of the queue and returns
// it, or returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.len == 0 {
		return zero, false
	}
	val := q.buf[q.front]
	q.buf[q.front] = zero
	q.front = (q.front + 1) % len(q.buf)
	q.len--
	if q.len == 0 {
		q.front = 0
	}
	return val, true
}

// PeekFront returns the value at the front of the queue (the next
// one to be dequeued) without removing it.
func (q *Queue[T]) PeekFront() (T, bool) {
	if q.len == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.front], true
}

// PeekRear returns the most recently enqueued value without removing
// it.
func (q *Queue[T]) PeekRear() (T, bool) {
	if q.len == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.at(q.len-1)], true
}

func (q *Queue[T]) Clear() {
	*q = Queue[T]{}
}

// Snapshot returns a copy of the queue's contents, front first.
func (q *Queue[T]) Snapshot() []T {
	ret := make([]T, q.len)
	q.copyTo(ret)
	return ret
}

// Restore replaces the queue's contents with a copy of vals, which is
// interpreted front first.
func (q *Queue[T]) Restore(vals []T) {
	q.buf = make([]T, len(vals))
	copy(q.buf, vals)
	q.front = 0
	q.len = len(vals)
}
