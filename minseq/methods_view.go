// SPDX-License-Identifier: MIT
//
// File: methods_view.go
// Role: Read-only queries, borrowed views, iteration and conversion back to a
// plain slice. Nothing here changes the length.

package minseq

import (
	"fmt"
	"iter"
	"slices"
)

// Len returns the number of elements. Len() >= Min() always holds.
func (s *Seq[T]) Len() int { return len(s.items) }

// Cap returns the capacity of the backing slice.
func (s *Seq[T]) Cap() int { return cap(s.items) }

// Min returns the minimum length fixed at construction.
func (s *Seq[T]) Min() int { return s.min }

// At returns the element at index i. Like slice indexing, it panics if i is
// out of range; use Lookup for a checked access.
func (s *Seq[T]) At(i int) T { return s.items[i] }

// Lookup returns the element at index i and whether i was in range.
func (s *Seq[T]) Lookup(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}

	return s.items[i], true
}

// Last returns the last element, or false when the sequence is empty
// (possible only with minimum 0).
func (s *Seq[T]) Last() (T, bool) {
	return s.Lookup(len(s.items) - 1)
}

// AsSlice returns the elements as a slice sharing the sequence's storage.
// Elements may be modified through it; its capacity is clipped so appending
// to it never writes into the sequence. The view is invalidated by the next
// length-changing call on s.
func (s *Seq[T]) AsSlice() []T {
	return s.items[:len(s.items):len(s.items)]
}

// MinSlice returns a view of exactly the first Min() elements, which are
// guaranteed to exist. No copy is made.
func (s *Seq[T]) MinSlice() []T {
	return s.items[:s.min:s.min]
}

// IntoInner hands the backing slice to the caller and resets s to the zero
// sequence (empty, minimum 0). The returned slice is no longer guarded.
// Wrap it again with New to restore the guarantee.
func (s *Seq[T]) IntoInner() []T {
	items := s.items
	s.items, s.min = nil, 0

	return items
}

// Clone returns a copy of s with its own backing slice and the same minimum.
// Elements are copied by assignment.
func (s *Seq[T]) Clone() *Seq[T] {
	return &Seq[T]{items: slices.Clone(s.items), min: s.min}
}

// All returns an iterator over index/value pairs in order. The iterator is
// restartable and observes the length at the time each iteration starts.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (s *Seq[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// String formats the elements like a slice, e.g. "[1 2 3]".
func (s *Seq[T]) String() string {
	return fmt.Sprint(s.items)
}
