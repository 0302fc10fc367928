// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyset provides a small generic set type used for comparing the
// key populations of environment files. Sets are map-backed; iteration
// order is undefined, use Sorted for a deterministic view.
package keyset

import (
	"cmp"
	"slices"
)

type Set[T comparable] map[T]struct{}

// New builds a set from the given items.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Diff returns the elements of a that are not in b.
func Diff[T comparable](a, b Set[T]) Set[T] {
	result := make(Set[T])
	for v := range a {
		if !b.Has(v) {
			result.Add(v)
		}
	}
	return result
}

// Sorted returns the elements of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	result := make([]T, 0, len(s))
	for v := range s {
		result = append(result, v)
	}
	slices.Sort(result)
	return result
}
