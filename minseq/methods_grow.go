// SPDX-License-Identifier: MIT
//
// File: methods_grow.go
// Role: Mutations that never decrease the length. They delegate directly to
// the backing slice; the only errors they return are index errors.

package minseq

import (
	"iter"
	"slices"

	"braces.dev/errtrace"
)

// Push appends vs to the end of the sequence.
// Complexity: amortized O(len(vs)).
func (s *Seq[T]) Push(vs ...T) {
	s.items = append(s.items, vs...)
}

// AppendSlice appends a copy of the elements of other.
func (s *Seq[T]) AppendSlice(other []T) {
	s.items = append(s.items, other...)
}

// Extend appends every element produced by seq.
func (s *Seq[T]) Extend(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	s.items = slices.AppendSeq(s.items, seq)
}

// ExtendFromWithin appends a copy of the elements in [i, j).
//
// Errors:
//   - IndexError if the range does not satisfy 0 <= i <= j <= Len().
func (s *Seq[T]) ExtendFromWithin(i, j int) error {
	if err := s.checkRange("extend from within", i, j); err != nil {
		return errtrace.Wrap(err)
	}
	s.items = append(s.items, s.items[i:j]...)

	return nil
}

// Insert inserts vs at index i, shifting later elements up.
// i == Len() appends.
//
// Errors:
//   - IndexError if i is outside [0, Len()].
//
// Complexity: O(Len() + len(vs)).
func (s *Seq[T]) Insert(i int, vs ...T) error {
	if i < 0 || i > len(s.items) {
		return errtrace.Wrap(IndexError{Op: "insert", Index: i, Len: len(s.items)})
	}
	s.items = slices.Insert(s.items, i, vs...)

	return nil
}

// Set replaces the element at index i.
//
// Errors:
//   - IndexError if i is outside [0, Len()).
func (s *Seq[T]) Set(i int, v T) error {
	if err := s.checkIndex("set", i); err != nil {
		return errtrace.Wrap(err)
	}
	s.items[i] = v

	return nil
}

// Reserve ensures room for at least n more elements without reallocation.
// Panics if n < 0, like slices.Grow.
func (s *Seq[T]) Reserve(n int) {
	s.items = slices.Grow(s.items, n)
}

// ShrinkToFit reallocates the backing slice so its capacity matches the
// length, releasing unused storage.
func (s *Seq[T]) ShrinkToFit() {
	if cap(s.items) > len(s.items) {
		s.items = slices.Clone(s.items)
	}
}

func (s *Seq[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= len(s.items) {
		return IndexError{Op: op, Index: i, Len: len(s.items)}
	}

	return nil
}

// checkRange validates the half-open range [i, j).
func (s *Seq[T]) checkRange(op string, i, j int) error {
	n := len(s.items)
	switch {
	case i < 0 || i > n:
		return IndexError{Op: op, Index: i, Len: n}
	case j < i || j > n:
		return IndexError{Op: op, Index: j, Len: n}
	}

	return nil
}
