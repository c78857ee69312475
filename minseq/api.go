// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors. Every path into a Seq validates the length against the
// requested minimum exactly once, here.
// Policy:
//   - Slice-taking constructors take ownership of the slice (no copy) unless
//     named otherwise (FromSlice).
//   - Literal constructors (Of, Repeat, Filled) cannot fail.

package minseq

import (
	"iter"

	"braces.dev/errtrace"
)

// New wraps items as a Seq with the given minimum.
//
// It succeeds iff len(items) >= min; otherwise it returns a TooShortError
// carrying the required minimum and the observed length. New takes ownership
// of items: the caller must not modify the slice afterwards.
//
// Errors:
//   - ErrNegativeMinimum if min < 0.
//   - TooShortError (matches ErrTooShort) if len(items) < min.
//
// Complexity: O(1).
func New[T any](items []T, min int) (*Seq[T], error) {
	if err := validate(len(items), min); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &Seq[T]{items: items, min: min}, nil
}

// FromSlice is like New but copies items, leaving the caller's slice unshared.
//
// Complexity: O(n).
func FromSlice[T any](items []T, min int) (*Seq[T], error) {
	if err := validate(len(items), min); err != nil {
		return nil, errtrace.Wrap(err)
	}
	owned := make([]T, len(items))
	copy(owned, items)

	return &Seq[T]{items: owned, min: min}, nil
}

// Collect drains seq into a new Seq with the given minimum.
//
// Storage for the minimum (plus WithCapacity extra) is reserved up front, up
// to maxCollectReserve elements each. The whole input is consumed before
// validation.
func Collect[T any](seq iter.Seq[T], minimum int, opts ...Option) (*Seq[T], error) {
	if minimum < 0 {
		return nil, errtrace.Wrap(ErrNegativeMinimum)
	}
	o := gatherOptions(opts...)
	items := make([]T, 0, min(minimum, maxCollectReserve)+min(o.extra, maxCollectReserve))
	if seq != nil {
		for v := range seq {
			items = append(items, v)
		}
	}

	return errtrace.Wrap2(New(items, minimum))
}

// Of builds a Seq from literal elements; its minimum is the number of
// elements given. Of(1, 2, 3) can never shrink below three elements.
func Of[T any](items ...T) *Seq[T] {
	owned := make([]T, len(items))
	copy(owned, items)

	return &Seq[T]{items: owned, min: len(owned)}
}

// OfMin builds a Seq from literal elements with an explicit minimum.
//
// The minimum is a floor, not an exact count: OfMin(2, 1, 2, 3) succeeds.
// It fails exactly like New when min exceeds the number of elements.
func OfMin[T any](min int, items ...T) (*Seq[T], error) {
	return errtrace.Wrap2(FromSlice(items, min))
}

// MustOfMin is like OfMin but panics on error. It simplifies safe
// initialization of package-level sequences.
func MustOfMin[T any](min int, items ...T) *Seq[T] {
	s, err := OfMin(min, items...)
	if err != nil {
		panic(err)
	}

	return s
}

// Repeat returns n copies of v with minimum n. Panics if n < 0.
func Repeat[T any](v T, n int) *Seq[T] {
	if n < 0 {
		panic(ErrNegativeMinimum)
	}
	items := make([]T, n)
	for i := range items {
		items[i] = v
	}

	return &Seq[T]{items: items, min: n}
}

// Filled returns a Seq of exactly min elements produced by fn, called once per
// element in order. A nil fn yields zero values. Panics if min < 0.
func Filled[T any](min int, fn func() T) *Seq[T] {
	if min < 0 {
		panic(ErrNegativeMinimum)
	}
	items := make([]T, min)
	if fn != nil {
		for i := range items {
			items[i] = fn()
		}
	}

	return &Seq[T]{items: items, min: min}
}

// validate is the single construction-time invariant check.
func validate(n, min int) error {
	if min < 0 {
		return ErrNegativeMinimum
	}
	if n < min {
		return TooShortError{Required: min, Actual: n}
	}

	return nil
}
