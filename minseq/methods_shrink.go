// SPDX-License-Identifier: MIT
//
// File: methods_shrink.go
// Role: Mutations that may decrease the length (guarded operations).
// Policy:
//   - Single-element removals refuse with ErrAtMinimum when Len() == Min().
//     The minimum check runs before the index check.
//   - Bulk operations compute the resulting length first and either apply the
//     whole operation or reject it with a MinimumError; nothing is mutated on
//     rejection.
//   - Removed slots are zeroed so the backing array does not pin references.

package minseq

import (
	"slices"

	"braces.dev/errtrace"
)

// ---------- Single-element removal ----------

// Pop removes and returns the last element.
//
// Errors:
//   - ErrAtMinimum if Len() == Min(); the sequence is left unchanged.
//
// Complexity: O(1).
func (s *Seq[T]) Pop() (T, error) {
	var zero T
	if len(s.items) <= s.min {
		return zero, errtrace.Wrap(ErrAtMinimum)
	}

	return s.popUnchecked(), nil
}

// PopToMin removes and returns the last element while Len() > Min().
// At the boundary it returns (zero, false) and does nothing, so
//
//	for _, ok := s.PopToMin(); ok; _, ok = s.PopToMin() {}
//
// drains the sequence to exactly Min() elements.
func (s *Seq[T]) PopToMin() (T, bool) {
	if len(s.items) <= s.min {
		var zero T
		return zero, false
	}

	return s.popUnchecked(), true
}

// Remove removes and returns the element at index i, shifting later elements
// down.
//
// Errors:
//   - ErrAtMinimum if Len() == Min().
//   - IndexError if i is outside [0, Len()).
//
// Complexity: O(Len() - i).
func (s *Seq[T]) Remove(i int) (T, error) {
	var zero T
	if len(s.items) <= s.min {
		return zero, errtrace.Wrap(ErrAtMinimum)
	}
	if err := s.checkIndex("remove", i); err != nil {
		return zero, errtrace.Wrap(err)
	}
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)

	return v, nil
}

// SwapRemove removes and returns the element at index i, replacing it with the
// last element. Order is not preserved.
//
// Errors: as Remove.
//
// Complexity: O(1).
func (s *Seq[T]) SwapRemove(i int) (T, error) {
	var zero T
	if len(s.items) <= s.min {
		return zero, errtrace.Wrap(ErrAtMinimum)
	}
	if err := s.checkIndex("swap remove", i); err != nil {
		return zero, errtrace.Wrap(err)
	}
	v := s.items[i]
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]

	return v, nil
}

// ---------- Bulk shrinking ----------

// Truncate shortens the sequence to n elements. n >= Len() is a no-op.
//
// Errors:
//   - IndexError if n < 0.
//   - MinimumError (matches ErrWouldViolateMinimum) if n < Min().
func (s *Seq[T]) Truncate(n int) error {
	if n < 0 {
		return errtrace.Wrap(IndexError{Op: "truncate", Index: n, Len: len(s.items)})
	}
	if n < s.min {
		return errtrace.Wrap(s.minimumError("truncate", n))
	}
	s.truncate(n)

	return nil
}

// TruncateOrMin shortens the sequence to max(n, Min()) elements.
func (s *Seq[T]) TruncateOrMin(n int) {
	s.truncate(max(n, s.min))
}

// TruncateToMin shortens the sequence to exactly Min() elements.
func (s *Seq[T]) TruncateToMin() {
	s.truncate(s.min)
}

// Resize changes the length to n, filling new slots with copies of v.
//
// Errors:
//   - IndexError if n < 0.
//   - MinimumError if n < Min().
func (s *Seq[T]) Resize(n int, v T) error {
	return errtrace.Wrap(s.ResizeFunc(n, func() T { return v }))
}

// ResizeFunc changes the length to n, filling new slots with values returned
// by fn, called once per new slot in order. A nil fn fills zero values.
//
// Errors: as Resize.
func (s *Seq[T]) ResizeFunc(n int, fn func() T) error {
	if n < 0 {
		return errtrace.Wrap(IndexError{Op: "resize", Index: n, Len: len(s.items)})
	}
	if n < s.min {
		return errtrace.Wrap(s.minimumError("resize", n))
	}
	s.resize(n, fn)

	return nil
}

// ResizeOrMin resizes to max(n, Min()), filling new slots with copies of v.
func (s *Seq[T]) ResizeOrMin(n int, v T) {
	s.resize(max(n, s.min), func() T { return v })
}

// ResizeOrMinFunc resizes to max(n, Min()), filling new slots from fn.
func (s *Seq[T]) ResizeOrMinFunc(n int, fn func() T) {
	s.resize(max(n, s.min), fn)
}

// Drain removes the elements in [i, j) and returns them in a new slice.
//
// Errors:
//   - IndexError if the range does not satisfy 0 <= i <= j <= Len().
//   - MinimumError if Len()-(j-i) < Min().
func (s *Seq[T]) Drain(i, j int) ([]T, error) {
	if err := s.checkRange("drain", i, j); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if result := len(s.items) - (j - i); result < s.min {
		return nil, errtrace.Wrap(s.minimumError("drain", result))
	}
	removed := slices.Clone(s.items[i:j])
	s.items = slices.Delete(s.items, i, j)

	return removed, nil
}

// Splice replaces the elements in [i, j) with repl and returns the removed
// elements. The check accounts for both the loss and the gain, so replacing
// with at least as many elements as removed always succeeds.
//
// Errors: as Drain, with the result length Len()-(j-i)+len(repl).
func (s *Seq[T]) Splice(i, j int, repl ...T) ([]T, error) {
	if err := s.checkRange("splice", i, j); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if result := len(s.items) - (j - i) + len(repl); result < s.min {
		return nil, errtrace.Wrap(s.minimumError("splice", result))
	}
	removed := slices.Clone(s.items[i:j])
	s.items = slices.Replace(s.items, i, j, repl...)

	return removed, nil
}

// Retain keeps only the elements for which keep returns true, preserving
// order. keep is called exactly once per element, in order; the decisions are
// buffered and applied only if enough elements survive.
//
// Errors:
//   - MinimumError if fewer than Min() elements would be kept.
func (s *Seq[T]) Retain(keep func(T) bool) error {
	return errtrace.Wrap(s.RetainIndexed(func(_ int, v T) bool { return keep(v) }))
}

// RetainIndexed is like Retain but also passes the element's index.
func (s *Seq[T]) RetainIndexed(keep func(int, T) bool) error {
	mask := make([]bool, len(s.items))
	kept := 0
	for i, v := range s.items {
		if keep(i, v) {
			mask[i] = true
			kept++
		}
	}
	if kept < s.min {
		return errtrace.Wrap(s.minimumError("retain", kept))
	}

	w := 0
	for i, ok := range mask {
		if ok {
			s.items[w] = s.items[i]
			w++
		}
	}
	clear(s.items[w:])
	s.items = s.items[:w]

	return nil
}

// Clear removes every element. Only sequences with minimum 0 can be cleared.
//
// Errors:
//   - MinimumError if Min() > 0.
func (s *Seq[T]) Clear() error {
	if s.min > 0 {
		return errtrace.Wrap(s.minimumError("clear", 0))
	}
	s.truncate(0)

	return nil
}

// ---------- Internal helpers (callers enforce the invariant) ----------

func (s *Seq[T]) popUnchecked() T {
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]

	return v
}

func (s *Seq[T]) truncate(n int) {
	if n >= len(s.items) {
		return
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

func (s *Seq[T]) resize(n int, fn func() T) {
	if n <= len(s.items) {
		s.truncate(n)
		return
	}
	old := len(s.items)
	s.items = slices.Grow(s.items, n-old)[:n]
	if fn == nil {
		clear(s.items[old:])
		return
	}
	for i := old; i < n; i++ {
		s.items[i] = fn()
	}
}

func (s *Seq[T]) minimumError(op string, result int) MinimumError {
	return MinimumError{Op: op, Minimum: s.min, Result: result}
}
