// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"
	"strings"

	"git.lukeshu.com/go/typedsync"
)

// LinkedListNode[T] is a cell in a LinkedList[T].
type LinkedListNode[T comparable] struct {
	next  *LinkedListNode[T]
	Value T
}

// Next returns the following node, or nil if this is the tail.
func (n *LinkedListNode[T]) Next() *LinkedListNode[T] {
	return n.next
}

// LinkedList is a singly-linked list that tracks both its head and
// its tail, so that appending is O(1).  Removing from the tail is
// O(n), since finding the new tail requires walking from the head.
//
// Values are compared with == (for IndexOf), so T must be comparable.
//
// The zero LinkedList is an empty list, ready to use.
//
// Like the pooled list that this was derived from, LinkedList keeps
// a Pool of nodes, so churning through push/pop does not churn out
// garbage.
type LinkedList[T comparable] struct {
	Name string

	head, tail *LinkedListNode[T]
	length     int
	pool       typedsync.Pool[*LinkedListNode[T]]
}

func (l *LinkedList[T]) newNode(val T) *LinkedListNode[T] {
	node, ok := l.pool.Get()
	if !ok {
		node = new(LinkedListNode[T])
	}
	*node = LinkedListNode[T]{
		Value: val,
	}
	return node
}

func (l *LinkedList[T]) freeNode(node *LinkedListNode[T]) {
	*node = LinkedListNode[T]{} // no memory leaks
	l.pool.Put(node)
}

// Len returns the number of values in the list.
func (l *LinkedList[T]) Len() int {
	return l.length
}

// IsEmpty returns whether the list empty or not.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first node of the list, or nil if the list is
// empty.
func (l *LinkedList[T]) Head() *LinkedListNode[T] {
	return l.head
}

// Tail returns the last node of the list, or nil if the list is
// empty.
func (l *LinkedList[T]) Tail() *LinkedListNode[T] {
	return l.tail
}

// Append adds a value to the tail end of the list.
func (l *LinkedList[T]) Append(val T) {
	node := l.newNode(val)
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.length++
}

// Prepend adds a value to the head end of the list.
func (l *LinkedList[T]) Prepend(val T) {
	node := l.newNode(val)
	node.next = l.head
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.length++
}

// RemoveLast removes the value at the tail end of the list and
// returns it.  If the list is empty, it returns false and does
// nothing.
func (l *LinkedList[T]) RemoveLast() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	old := l.tail
	if l.head == old {
		l.head = nil
		l.tail = nil
	} else {
		pred := l.head
		for pred.next != old {
			pred = pred.next
		}
		pred.next = nil
		l.tail = pred
	}
	l.length--
	val := old.Value
	l.freeNode(old)
	return val, true
}

// RemoveFirst removes the value at the head end of the list and
// returns it.  If the list is empty, it returns false and does
// nothing.
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	old := l.head
	l.head = old.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	val := old.Value
	l.freeNode(old)
	return val, true
}

// nodeAt returns the node at the 0-based index idx, or nil if idx is
// out of range.
func (l *LinkedList[T]) nodeAt(idx int) *LinkedListNode[T] {
	if idx < 0 || idx >= l.length {
		return nil
	}
	node := l.head
	for i := 0; i < idx; i++ {
		node = node.next
	}
	return node
}

// Get returns the value at the 0-based index idx, or false if idx is
// out of range.
func (l *LinkedList[T]) Get(idx int) (T, bool) {
	node := l.nodeAt(idx)
	if node == nil {
		var zero T
		return zero, false
	}
	return node.Value, true
}

// Set overwrites the value at the 0-based index idx, returning false
// (and leaving the list untouched) if idx is out of range.
func (l *LinkedList[T]) Set(idx int, val T) bool {
	node := l.nodeAt(idx)
	if node == nil {
		return false
	}
	node.Value = val
	return true
}

// IndexOf returns the index of the first value equal to val, or -1.
func (l *LinkedList[T]) IndexOf(val T) int {
	idx := 0
	for node := l.head; node != nil; node = node.next {
		if node.Value == val {
			return idx
		}
		idx++
	}
	return -1
}

// Range calls fn for each value from head to tail, stopping early if
// fn returns false.
func (l *LinkedList[T]) Range(fn func(idx int, val T) bool) {
	idx := 0
	for node := l.head; node != nil; node = node.next {
		if !fn(idx, node.Value) {
			return
		}
		idx++
	}
}

// Slice returns the values of the list, head first.  The returned
// slice is never nil.
func (l *LinkedList[T]) Slice() []T {
	ret := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		ret = append(ret, node.Value)
	}
	return ret
}

// Clear removes every value from the list.
func (l *LinkedList[T]) Clear() {
	for node := l.head; node != nil; {
		next := node.next
		l.freeNode(node)
		node = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Load replaces the contents of the list with vals, in order.
func (l *LinkedList[T]) Load(vals []T) {
	l.Clear()
	for _, val := range vals {
		l.Append(val)
	}
}

// String renders the list as a chain of arrows, e.g. "a → b → null".
func (l *LinkedList[T]) String() string {
	var out strings.Builder
	for node := l.head; node != nil; node = node.next {
		fmt.Fprintf(&out, "%v → ", node.Value)
	}
	out.WriteString("null")
	return out.String()
}

// Describe returns a multi-line human-readable dump of the list: its
// name, its length, and each (index, value) pair from head to tail.
//
//	List: L
//	Size: 2
//	Structure: [index: 0, value: "a"] → [index: 1, value: "b"] → null
func (l *LinkedList[T]) Describe() string {
	var out strings.Builder
	fmt.Fprintf(&out, "List: %s\n", l.Name)
	fmt.Fprintf(&out, "Size: %d\n", l.length)
	out.WriteString("Structure: ")
	idx := 0
	for node := l.head; node != nil; node = node.next {
		fmt.Fprintf(&out, "[index: %d, value: \"%v\"] → ", idx, node.Value)
		idx++
	}
	out.WriteString("null")
	return out.String()
}
