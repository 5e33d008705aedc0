// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

// Stack is a LIFO container backed by a slice; the end of the slice
// is the "top".  The zero Stack is empty and ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push puts a value on top of the stack.
func (s *Stack[T]) Push(val T) {
	s.items = append(s.items, val)
}

// Pop removes the value on top of the stack and returns it, or
// returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	val := s.items[top]
	s.items[top] = zero
	s.items = s.items[:top]
	return val, true
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Clear() {
	s.items = nil
}

// Snapshot returns a copy of the stack's contents, bottom first.
func (s *Stack[T]) Snapshot() []T {
	ret := make([]T, len(s.items))
	copy(ret, s.items)
	return ret
}

// Restore replaces the stack's contents with a copy of vals, which
// is interpreted bottom first.
func (s *Stack[T]) Restore(vals []T) {
	s.items = make([]T, len(vals))
	copy(s.items, vals)
}
