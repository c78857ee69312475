// SPDX-License-Identifier: MIT
//
// File: one.go
// Role: One, the minimum-1 specialization of Seq.
// Policy:
//   - Every method delegates to the wrapped Seq with its minimum pinned to 1.
//     No guard is re-implemented here.
//   - First/FirstPtr/Last are total on a constructed One. A One left zero by
//     a decoder fails Validate and panics with a TooShortError in them.

package minseq

import (
	"cmp"
	"encoding/json"
	"iter"
	"log/slog"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// oneMin is the minimum of every One.
const oneMin = 1

// ---------- Constructors ----------

// OneOf builds a One from first and rest. It cannot fail.
func OneOf[T any](first T, rest ...T) *One[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)

	return &One[T]{seq: Seq[T]{items: items, min: oneMin}}
}

// NewOne wraps items, taking ownership of the slice.
//
// Errors:
//   - TooShortError{Required: 1, Actual: 0} if items is empty.
func NewOne[T any](items []T) (*One[T], error) {
	s, err := New(items, oneMin)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &One[T]{seq: *s}, nil
}

// CollectOne drains seq into a new One.
func CollectOne[T any](seq iter.Seq[T], opts ...Option) (*One[T], error) {
	s, err := Collect(seq, oneMin, opts...)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &One[T]{seq: *s}, nil
}

// FromSeq converts s into a One, taking over its elements. s is reset to the
// zero sequence on success and left untouched on failure.
//
// Errors:
//   - TooShortError if s is nil or empty.
func FromSeq[T any](s *Seq[T]) (*One[T], error) {
	if err := validate(len(s.view()), oneMin); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &One[T]{seq: Seq[T]{items: s.IntoInner(), min: oneMin}}, nil
}

// IntoSeq converts o into a Seq with minimum 1, taking over its elements.
// o must not be used afterwards. It panics with a TooShortError if o is empty.
func (o *One[T]) IntoSeq() *Seq[T] {
	o.mustHoldOne()
	s := &Seq[T]{items: o.seq.items, min: oneMin}
	o.seq = Seq[T]{}

	return s
}

// Validate reports a TooShortError if o holds no element.
//
// Constructors never produce such a One, but decoders do: a missing key, or a
// YAML null (yaml.v3 never calls UnmarshalYAML for one), leaves the field
// zero. Call Validate on One fields after decoding.
func (o *One[T]) Validate() error {
	return errtrace.Wrap(validate(len(o.seq.items), oneMin))
}

// pinned returns the wrapped Seq with its minimum forced to 1, so a zero One
// refuses to shrink and becomes valid once it grows.
func (o *One[T]) pinned() *Seq[T] {
	o.seq.min = oneMin

	return &o.seq
}

func (o *One[T]) mustHoldOne() {
	if len(o.seq.items) < oneMin {
		panic(TooShortError{Required: oneMin, Actual: len(o.seq.items)})
	}
}

// ---------- Total accessors ----------

// First returns the first element. It never fails on a constructed One; on
// an empty one (see Validate) it panics with a TooShortError.
func (o *One[T]) First() T {
	o.mustHoldOne()

	return o.seq.items[0]
}

// FirstPtr returns a pointer to the first element for in-place updates. The
// pointer is invalidated by the next length-changing call on o.
func (o *One[T]) FirstPtr() *T {
	o.mustHoldOne()

	return &o.seq.items[0]
}

// Last returns the last element. Like First, it panics only on an empty One.
func (o *One[T]) Last() T {
	o.mustHoldOne()

	return o.seq.items[len(o.seq.items)-1]
}

// ---------- Delegated queries & views ----------

// Len returns the number of elements.
func (o *One[T]) Len() int { return o.seq.Len() }

// Cap returns the capacity of the backing slice.
func (o *One[T]) Cap() int { return o.seq.Cap() }

// Min is always 1.
func (o *One[T]) Min() int { return oneMin }

// At returns the element at i and panics when i is out of range.
func (o *One[T]) At(i int) T { return o.seq.At(i) }

// Lookup returns the element at i, or false when i is out of range.
func (o *One[T]) Lookup(i int) (T, bool) { return o.seq.Lookup(i) }

// AsSlice borrows all elements; see Seq.AsSlice.
func (o *One[T]) AsSlice() []T { return o.seq.AsSlice() }

// MinSlice borrows the first element as a one-element slice.
func (o *One[T]) MinSlice() []T {
	if len(o.seq.items) < oneMin {
		return o.seq.AsSlice()
	}

	return o.seq.items[:oneMin:oneMin]
}

// All yields index/element pairs in order.
func (o *One[T]) All() iter.Seq2[int, T] { return o.seq.All() }

// Values yields the elements in order.
func (o *One[T]) Values() iter.Seq[T] { return o.seq.Values() }

// Backward yields index/element pairs from last to first.
func (o *One[T]) Backward() iter.Seq2[int, T] { return o.seq.Backward() }

// String renders the elements like a slice.
func (o *One[T]) String() string { return o.seq.String() }

// LogValue groups min, len and a preview of the elements.
func (o *One[T]) LogValue() slog.Value {
	v := Seq[T]{items: o.seq.items, min: oneMin}

	return v.LogValue()
}

// Clone returns a One holding a copy of the elements.
func (o *One[T]) Clone() *One[T] {
	c := o.seq.Clone()
	c.min = oneMin

	return &One[T]{seq: *c}
}

// IntoInner hands the elements over as a plain slice; o must not be used
// afterwards.
func (o *One[T]) IntoInner() []T { return o.seq.IntoInner() }

// ---------- Delegated growth ----------

// Push appends vs.
func (o *One[T]) Push(vs ...T) { o.pinned().Push(vs...) }

// AppendSlice appends the elements of other.
func (o *One[T]) AppendSlice(other []T) { o.pinned().AppendSlice(other) }

// Extend appends every value produced by seq.
func (o *One[T]) Extend(seq iter.Seq[T]) { o.pinned().Extend(seq) }

// ExtendFromWithin appends a copy of the elements in [i, j).
func (o *One[T]) ExtendFromWithin(i, j int) error {
	return o.pinned().ExtendFromWithin(i, j)
}

// Insert inserts vs at index i.
func (o *One[T]) Insert(i int, vs ...T) error { return o.pinned().Insert(i, vs...) }

// Set replaces the element at i.
func (o *One[T]) Set(i int, v T) error { return o.pinned().Set(i, v) }

// Reserve ensures room for n more elements without reallocation.
func (o *One[T]) Reserve(n int) { o.pinned().Reserve(n) }

// ShrinkToFit drops unused capacity.
func (o *One[T]) ShrinkToFit() { o.pinned().ShrinkToFit() }

// ---------- Delegated shrinking ----------

// Pop removes the last element, or fails with ErrAtMinimum if it is the only one.
func (o *One[T]) Pop() (T, error) { return o.pinned().Pop() }

// PopToMin pops the last element while more than one remains.
func (o *One[T]) PopToMin() (T, bool) { return o.pinned().PopToMin() }

// Remove removes the element at i, or fails with ErrAtMinimum if it is the
// only one.
func (o *One[T]) Remove(i int) (T, error) { return o.pinned().Remove(i) }

// SwapRemove removes the element at i, moving the last element into its
// place. It fails with ErrAtMinimum if it is the only one.
func (o *One[T]) SwapRemove(i int) (T, error) { return o.pinned().SwapRemove(i) }

// Truncate keeps the first n elements; n must be at least 1.
func (o *One[T]) Truncate(n int) error { return o.pinned().Truncate(n) }

// TruncateOrMin keeps the first max(n, 1) elements.
func (o *One[T]) TruncateOrMin(n int) { o.pinned().TruncateOrMin(n) }

// TruncateToMin keeps only the first element.
func (o *One[T]) TruncateToMin() { o.pinned().TruncateToMin() }

// Resize sets the length to n, padding with v; n must be at least 1.
func (o *One[T]) Resize(n int, v T) error { return o.pinned().Resize(n, v) }

// ResizeFunc is Resize with padding produced by fn.
func (o *One[T]) ResizeFunc(n int, fn func() T) error { return o.pinned().ResizeFunc(n, fn) }

// ResizeOrMin sets the length to max(n, 1), padding with v.
func (o *One[T]) ResizeOrMin(n int, v T) { o.pinned().ResizeOrMin(n, v) }

// ResizeOrMinFunc is ResizeOrMin with padding produced by fn.
func (o *One[T]) ResizeOrMinFunc(n int, fn func() T) { o.pinned().ResizeOrMinFunc(n, fn) }

// Drain removes and returns the elements in [i, j) unless that would leave
// o empty.
func (o *One[T]) Drain(i, j int) ([]T, error) { return o.pinned().Drain(i, j) }

// Splice replaces the elements in [i, j) with repl and returns the removed
// ones, unless the result would be empty.
func (o *One[T]) Splice(i, j int, repl ...T) ([]T, error) {
	return o.pinned().Splice(i, j, repl...)
}

// Retain keeps the elements for which keep returns true, unless none would
// remain.
func (o *One[T]) Retain(keep func(T) bool) error { return o.pinned().Retain(keep) }

// RetainIndexed is Retain with the element index passed to keep.
func (o *One[T]) RetainIndexed(keep func(int, T) bool) error {
	return o.pinned().RetainIndexed(keep)
}

// Clear always fails on a One: it would leave zero elements.
func (o *One[T]) Clear() error { return o.pinned().Clear() }

// ---------- Codecs ----------

// MarshalJSON encodes the elements as a JSON array.
func (o One[T]) MarshalJSON() ([]byte, error) { return o.seq.MarshalJSON() }

// UnmarshalJSON decodes a non-empty JSON array; an empty array or null is
// refused with a TooShortError.
func (o *One[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(o.seq.replace(items, oneMin))
}

// MarshalYAML encodes the elements as a YAML sequence.
func (o One[T]) MarshalYAML() (any, error) { return o.seq.MarshalYAML() }

// UnmarshalYAML decodes a non-empty YAML sequence.
func (o *One[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(o.seq.replace(items, oneMin))
}

// ---------- Comparison ----------

// EqualOne reports whether a and b hold the same elements in the same order.
func EqualOne[T comparable](a, b *One[T]) bool {
	return Equal(a.inner(), b.inner())
}

// CompareOne compares the elements of a and b lexicographically.
func CompareOne[T cmp.Ordered](a, b *One[T]) int {
	return Compare(a.inner(), b.inner())
}

func (o *One[T]) inner() *Seq[T] {
	if o == nil {
		return nil
	}

	return &o.seq
}
