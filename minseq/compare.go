// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: Structural equality and ordering.
// Policy:
//   - Only the elements take part. Two sequences holding the same elements are
//     equal even when their minimums differ: Repeat(2, 5) equals
//     MustOfMin(2, 2, 2, 2, 2, 2).
//   - Compare orders lexicographically, like slices.Compare.

package minseq

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Minimums are ignored. A nil sequence equals an empty one.
func Equal[T comparable](a, b *Seq[T]) bool {
	return slices.Equal(a.view(), b.view())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Seq[T1], b *Seq[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

// Compare compares the elements of a and b lexicographically and returns
// -1, 0 or +1. Minimums are ignored.
func Compare[T cmp.Ordered](a, b *Seq[T]) int {
	return slices.Compare(a.view(), b.view())
}

// CompareFunc is like Compare but uses cmpFn on each pair of elements.
func CompareFunc[T1, T2 any](a *Seq[T1], b *Seq[T2], cmpFn func(T1, T2) int) int {
	return slices.CompareFunc(a.view(), b.view(), cmpFn)
}

// view returns the elements, tolerating a nil receiver.
func (s *Seq[T]) view() []T {
	if s == nil {
		return nil
	}

	return s.items
}
