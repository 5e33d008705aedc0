// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLinkedList verifies the structural invariants of l, and that
// it holds exactly exp.
func checkLinkedList[T comparable](t *testing.T, exp []T, l *LinkedList[T]) {
	t.Helper()

	// length == 0  ⇔  head == nil  ⇔  tail == nil
	require.Equal(t, l.length == 0, l.head == nil)
	require.Equal(t, l.length == 0, l.tail == nil)

	// tail is the last node
	if l.tail != nil {
		require.Nil(t, l.tail.next)
	}

	// exactly `length` hops from head to nil, ending at tail
	var last *LinkedListNode[T]
	cnt := 0
	for node := l.head; node != nil; node = node.next {
		require.Less(t, cnt, len(exp)+1, "cycle or overlong chain")
		last = node
		cnt++
	}
	require.Equal(t, l.length, cnt)
	require.Equal(t, l.tail, last)

	require.Equal(t, len(exp), l.Len())
	require.Equal(t, exp, l.Slice())
}

func TestLinkedListScenario(t *testing.T) {
	t.Parallel()
	l := &LinkedList[string]{Name: "L"}
	l.Append("a")
	l.Append("b")
	l.Prepend("z")
	checkLinkedList(t, []string{"z", "a", "b"}, l)

	val, ok := l.RemoveLast()
	assert.True(t, ok)
	assert.Equal(t, "b", val)
	checkLinkedList(t, []string{"z", "a"}, l)

	assert.True(t, l.Set(0, "Z"))
	val, ok = l.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "Z", val)

	assert.Equal(t, 1, l.IndexOf("a"))
	assert.Equal(t, -1, l.IndexOf("q"))
}

func TestLinkedListEmpty(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	checkLinkedList(t, []int{}, &l)
	assert.True(t, l.IsEmpty())

	_, ok := l.RemoveLast()
	assert.False(t, ok)
	checkLinkedList(t, []int{}, &l)

	_, ok = l.RemoveFirst()
	assert.False(t, ok)
	checkLinkedList(t, []int{}, &l)

	_, ok = l.Get(0)
	assert.False(t, ok)
	assert.False(t, l.Set(0, 1))
	assert.Equal(t, -1, l.IndexOf(0))
	assert.Equal(t, "null", l.String())
}

func TestLinkedListRemoveToEmpty(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	l.Append(1)
	val, ok := l.RemoveFirst()
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	checkLinkedList(t, []int{}, &l)

	l.Prepend(2)
	val, ok = l.RemoveLast()
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	checkLinkedList(t, []int{}, &l)

	// the list must still be usable after draining
	l.Append(3)
	l.Append(4)
	checkLinkedList(t, []int{3, 4}, &l)
}

func TestLinkedListBounds(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	for n := 0; n < 5; n++ {
		for _, idx := range []int{-2, -1, n, n + 1} {
			_, ok := l.Get(idx)
			assert.Falsef(t, ok, "len=%d idx=%d", n, idx)
			assert.Falsef(t, l.Set(idx, 99), "len=%d idx=%d", n, idx)
		}
		for idx := 0; idx < n; idx++ {
			assert.True(t, l.Set(idx, idx*10))
			val, ok := l.Get(idx)
			assert.True(t, ok)
			assert.Equal(t, idx*10, val)
		}
		l.Append(n)
	}
}

func TestLinkedListIndexOfFirstMatch(t *testing.T) {
	t.Parallel()
	var l LinkedList[string]
	l.Load([]string{"x", "y", "x", "y"})
	assert.Equal(t, 0, l.IndexOf("x"))
	assert.Equal(t, 1, l.IndexOf("y"))
}

func TestLinkedListLoadRoundTrip(t *testing.T) {
	t.Parallel()
	var l LinkedList[string]
	l.Load([]string{"a", "b", "c"})
	checkLinkedList(t, []string{"a", "b", "c"}, &l)
	l.Load(l.Slice())
	checkLinkedList(t, []string{"a", "b", "c"}, &l)
	l.Load(nil)
	checkLinkedList(t, []string{}, &l)
}

func TestLinkedListRange(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	l.Load([]int{5, 6, 7})
	var idxs, vals []int
	l.Range(func(idx, val int) bool {
		idxs = append(idxs, idx)
		vals = append(vals, val)
		return idx < 1
	})
	assert.Equal(t, []int{0, 1}, idxs)
	assert.Equal(t, []int{5, 6}, vals)
}

func TestLinkedListText(t *testing.T) {
	t.Parallel()
	l := &LinkedList[string]{Name: "L"}
	assert.Equal(t, "List: L\nSize: 0\nStructure: null", l.Describe())

	l.Load([]string{"a", "b"})
	assert.Equal(t, "a → b → null", l.String())
	assert.Equal(t,
		"List: L\nSize: 2\nStructure: [index: 0, value: \"a\"] → [index: 1, value: \"b\"] → null",
		l.Describe())
}

func TestLinkedListDescribeLong(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	for i := 0; i < 100_000; i++ {
		l.Append(i)
	}
	assert.Contains(t, l.Describe(), "[index: 99999, value: \"99999\"] → null")
}

func FuzzLinkedList(f *testing.F) {
	const (
		opAppend      = uint8(0b000_00000)
		opPrepend     = uint8(0b001_00000)
		opRemoveLast  = uint8(0b010_00000)
		opRemoveFirst = uint8(0b011_00000)
		opSet         = uint8(0b100_00000)
		opGet         = uint8(0b101_00000)
		opIndexOf     = uint8(0b110_00000)
		opReload      = uint8(0b111_00000)
	)

	f.Add([]uint8{})
	f.Add([]uint8{opAppend | 1, opPrepend | 2, opRemoveLast, opRemoveFirst, opRemoveLast})
	f.Add([]uint8{opAppend | 1, opAppend | 2, opSet | 1, opGet | 1, opIndexOf | 2, opReload})

	f.Fuzz(func(t *testing.T, dat []uint8) {
		var l LinkedList[uint8]
		var model []uint8
		checkLinkedList(t, []uint8{}, &l)
		for _, b := range dat {
			op, arg := b&0b111_00000, b&0b000_11111
			switch op {
			case opAppend:
				l.Append(arg)
				model = append(model, arg)
			case opPrepend:
				l.Prepend(arg)
				model = append([]uint8{arg}, model...)
			case opRemoveLast:
				val, ok := l.RemoveLast()
				require.Equal(t, len(model) > 0, ok)
				if ok {
					require.Equal(t, model[len(model)-1], val)
					model = model[:len(model)-1]
				}
			case opRemoveFirst:
				val, ok := l.RemoveFirst()
				require.Equal(t, len(model) > 0, ok)
				if ok {
					require.Equal(t, model[0], val)
					model = model[1:]
				}
			case opSet:
				idx := int(arg)
				ok := l.Set(idx, arg)
				require.Equal(t, idx < len(model), ok)
				if ok {
					model[idx] = arg
				}
			case opGet:
				idx := int(arg)
				val, ok := l.Get(idx)
				require.Equal(t, idx < len(model), ok)
				if ok {
					require.Equal(t, model[idx], val)
				}
			case opIndexOf:
				exp := -1
				for i, v := range model {
					if v == arg {
						exp = i
						break
					}
				}
				require.Equal(t, exp, l.IndexOf(arg))
			case opReload:
				l.Load(l.Slice())
			}
			exp := model
			if exp == nil {
				exp = []uint8{}
			}
			checkLinkedList(t, append([]uint8{}, exp...), &l)
		}
	})
}
