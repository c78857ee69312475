// SPDX-License-Identifier: MIT

// Package minseq: core types. This file defines:
//   - Seq, the minimum-length sequence,
//   - One, the at-least-one-element specialization,
//   - Option / options (functional configuration for collecting constructors).
//
// Invariant (every exported method, including refused calls):
//
//	len(items) >= min
package minseq

// Seq is an ordered, growable sequence of T that never holds fewer than Min()
// elements.
//
// The minimum is fixed when the sequence is constructed. Operations that only
// grow the sequence always succeed; operations that shrink it are checked and
// refused with an error when they would break the invariant.
//
// The zero value is an empty sequence with minimum 0 and is ready to use.
// A Seq is not safe for concurrent mutation; guard it with a sync.Mutex when
// it is shared between goroutines.
type Seq[T any] struct {
	items []T // owned backing slice
	min   int // minimum length, immutable after construction
}

// One is a sequence that always holds at least one element.
//
// It wraps a Seq with minimum 1 and delegates every operation to it, adding
// First and FirstPtr which cannot fail. The zero value is NOT usable; build a
// One with OneOf, NewOne, CollectOne or FromSeq.
type One[T any] struct {
	seq Seq[T]
}

// ---------- Options ----------

// DefaultExtraCapacity is the capacity reserved beyond the minimum by Collect
// when WithCapacity is not given.
const DefaultExtraCapacity = 0

// maxCollectReserve bounds each part of the capacity Collect reserves before
// the input length is known.
const maxCollectReserve = 1 << 16

const panicNegativeCapacity = "minseq: WithCapacity: extra must be non-negative"

// Option configures the collecting constructors (Collect, CollectOne).
type Option func(*options)

type options struct {
	extra int // capacity reserved beyond the minimum
}

// WithCapacity reserves room for extra elements on top of the minimum when
// collecting, avoiding regrowth for inputs known to be longer than the bound.
// Panics if extra < 0.
func WithCapacity(extra int) Option {
	if extra < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *options) { o.extra = extra }
}

func gatherOptions(opts ...Option) options {
	o := options{extra: DefaultExtraCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
