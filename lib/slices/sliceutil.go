// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package slices implements generic (type-parameterized) utilities
// for working with simple Go slices.
package slices

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Contains[T comparable](needle T, haystack []T) bool {
	for _, straw := range haystack {
		if needle == straw {
			return true
		}
	}
	return false
}

// RemoveAllFunc removes (in-place) every member of haystack for
// which f returns true, preserving the order of the rest.
func RemoveAllFunc[T any](haystack []T, f func(T) bool) []T {
	ret := haystack[:0]
	for _, straw := range haystack {
		if !f(straw) {
			ret = append(ret, straw)
		}
	}
	var zero T
	for i := len(ret); i < len(haystack); i++ {
		haystack[i] = zero
	}
	return ret
}

func Sort[T constraints.Ordered](slice []T) {
	sort.Slice(slice, func(i, j int) bool {
		return slice[i] < slice[j]
	})
}
