// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Error taxonomy for minimum-length sequences.
// Policy:
//   - Every refused operation returns an error and leaves the sequence untouched.
//   - Structured errors match their sentinel through errors.Is.

package minseq

import (
	"errors"
	"fmt"
)

// Sentinel errors for minseq operations.
var (
	// ErrTooShort indicates a construction or conversion from a collection
	// shorter than the requested minimum.
	ErrTooShort = errors.New("minseq: collection shorter than minimum")

	// ErrAtMinimum indicates a single-element removal attempted while the
	// sequence holds exactly its minimum number of elements.
	ErrAtMinimum = errors.New("minseq: sequence is at its minimum length")

	// ErrWouldViolateMinimum indicates a bulk-shrinking operation whose result
	// would fall below the minimum.
	ErrWouldViolateMinimum = errors.New("minseq: operation would reduce length below minimum")

	// ErrIndexOutOfRange indicates an index or range outside the sequence.
	ErrIndexOutOfRange = errors.New("minseq: index out of range")

	// ErrNegativeMinimum indicates a minimum bound below zero.
	ErrNegativeMinimum = errors.New("minseq: minimum must be non-negative")
)

// TooShortError is returned when a collection does not satisfy the requested
// minimum. It matches ErrTooShort.
type TooShortError struct {
	Required int // requested minimum
	Actual   int // observed length
}

func (e TooShortError) Error() string {
	return fmt.Sprintf("minseq: collection shorter than minimum: required %d, actual %d", e.Required, e.Actual)
}

// Is reports whether target is ErrTooShort.
func (e TooShortError) Is(target error) bool { return target == ErrTooShort }

// MinimumError is returned when a bulk operation is rejected because its
// result would hold fewer than Minimum elements. It matches
// ErrWouldViolateMinimum.
type MinimumError struct {
	Op      string // operation name, e.g. "truncate"
	Minimum int    // the sequence minimum
	Result  int    // length the operation would have produced
}

func (e MinimumError) Error() string {
	return fmt.Sprintf("minseq: %s would reduce length to %d, below minimum %d", e.Op, e.Result, e.Minimum)
}

// Is reports whether target is ErrWouldViolateMinimum.
func (e MinimumError) Is(target error) bool { return target == ErrWouldViolateMinimum }

// IndexError is returned when an index or a [Index, Index+n) range does not
// fit the sequence. It matches ErrIndexOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("minseq: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
