// SPDX-License-Identifier: MIT

// Package minseq provides sequences that can never hold fewer than a minimum
// number of elements.
//
// 🚀 What is a minimum-length sequence?
//
//	A Seq[T] is a growable slice paired with a floor fixed at construction.
//	Every operation that could shrink it below that floor is checked and
//	refused with an error; the sequence is never left half-modified.
//	One[T] is the common special case "at least one element", with a First
//	accessor that cannot fail.
//
// ✨ Key features:
//   - validated construction: New, FromSlice, Collect, Of, OfMin, Repeat, Filled
//   - growth delegated straight to the slice: Push, Insert, Extend, ...
//   - guarded removal: Pop, Remove, SwapRemove refuse with ErrAtMinimum
//   - atomic bulk shrinking: Truncate, Resize, Drain, Splice, Retain, Clear
//     either apply fully or fail with a MinimumError
//   - drain-to-min: PopToMin removes one trailing element per call until the floor
//   - zero-copy views: AsSlice, MinSlice; iterators All, Values, Backward
//   - JSON / YAML codecs that validate the decoded length
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecmin/minseq"
//
//	s, err := minseq.New([]int{1, 2, 3}, 2) // at least two elements
//	if err != nil {
//	  // errors.Is(err, minseq.ErrTooShort)
//	}
//	s.Push(4)
//	for _, ok := s.PopToMin(); ok; _, ok = s.PopToMin() {
//	}
//	fmt.Println(s.Len()) // 2
//	_, err = s.Pop()     // errors.Is(err, minseq.ErrAtMinimum)
//
// Equality:
//
//	Equal and Compare look at elements only. The minimum is a property of the
//	container, not of its contents, so Repeat(2, 5) and
//	MustOfMin(2, 2, 2, 2, 2, 2) are equal.
//
// Concurrency:
//
//	A Seq has no internal locking. Share it between goroutines only behind a
//	sync.Mutex or by handing over ownership.
//
// Errors:
//
//	ErrTooShort / TooShortError       - input shorter than the minimum.
//	ErrAtMinimum                      - single removal at the minimum.
//	ErrWouldViolateMinimum / MinimumError - bulk shrink below the minimum.
//	ErrIndexOutOfRange / IndexError   - bad index or range.
//	ErrNegativeMinimum                - minimum below zero.
//
// Returned errors carry an errtrace return trace (braces.dev/errtrace);
// match them with errors.Is / errors.As.
package minseq
