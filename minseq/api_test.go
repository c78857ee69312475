// SPDX-License-Identifier: MIT

package minseq_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"braces.dev/errtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmin/minseq"
)

// TestNew_Validation checks New succeeds iff len(items) >= min and records
// both length and minimum.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name  string
		items []int
		min   int
		ok    bool
	}{
		{"empty/min0", nil, 0, true},
		{"exact", []int{1, 2, 3}, 3, true},
		{"longer", []int{1, 2, 3}, 1, true},
		{"shorter", []int{1, 2}, 3, false},
		{"empty/min1", []int{}, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := minseq.New(tc.items, tc.min)
			if !tc.ok {
				require.ErrorIs(t, err, minseq.ErrTooShort)
				assert.Nil(t, s)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.items), s.Len(), "length preserved")
			assert.Equal(t, tc.min, s.Min(), "minimum recorded")
		})
	}
}

// TestNew_TooShortError verifies the structured error carries the required
// minimum and the observed length.
func TestNew_TooShortError(t *testing.T) {
	_, err := minseq.New([]int{1, 2}, 3)
	require.Error(t, err)

	var tse minseq.TooShortError
	require.ErrorAs(t, err, &tse)
	assert.Equal(t, minseq.TooShortError{Required: 3, Actual: 2}, tse)
	assert.EqualError(t, tse, "minseq: collection shorter than minimum: required 3, actual 2")
}

// TestNew_NegativeMinimum rejects a negative bound.
func TestNew_NegativeMinimum(t *testing.T) {
	_, err := minseq.New([]int{1}, -1)
	assert.ErrorIs(t, err, minseq.ErrNegativeMinimum)
	assert.False(t, errors.Is(err, minseq.ErrTooShort))
}

// TestNew_ErrorTrace ensures returned errors carry a return trace.
func TestNew_ErrorTrace(t *testing.T) {
	_, err := minseq.New([]int{}, 1)
	require.Error(t, err)
	assert.Contains(t, errtrace.FormatString(err), "api.go")
}

// TestNew_TakesOwnership shows New does not copy while FromSlice does.
func TestNew_TakesOwnership(t *testing.T) {
	raw := []int{1, 2, 3}
	owned, err := minseq.New(raw, 1)
	require.NoError(t, err)
	copied, err := minseq.FromSlice(raw, 1)
	require.NoError(t, err)

	raw[0] = 42
	assert.Equal(t, 42, owned.At(0), "New shares the caller's slice")
	assert.Equal(t, 1, copied.At(0), "FromSlice owns a copy")
}

// TestCollect covers collecting from an iterator with and without capacity.
func TestCollect(t *testing.T) {
	s, err := minseq.Collect(slices.Values([]string{"a", "b", "c"}), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.AsSlice())
	assert.Equal(t, 2, s.Min())

	s, err = minseq.Collect(slices.Values([]string{"a"}), 1, minseq.WithCapacity(16))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Cap(), 17, "min + extra reserved up front")

	_, err = minseq.Collect(slices.Values([]string{"a"}), 2)
	var tse minseq.TooShortError
	require.ErrorAs(t, err, &tse)
	assert.Equal(t, 2, tse.Required)
	assert.Equal(t, 1, tse.Actual)

	empty, err := minseq.Collect[int](nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = minseq.Collect[int](nil, -3)
	assert.ErrorIs(t, err, minseq.ErrNegativeMinimum)
}

// TestCollect_HugeMinimum returns TooShortError instead of reserving an
// impossible capacity up front.
func TestCollect_HugeMinimum(t *testing.T) {
	for _, opts := range [][]minseq.Option{nil, {minseq.WithCapacity(5)}} {
		_, err := minseq.Collect(slices.Values([]int{1, 2}), math.MaxInt, opts...)
		var tse minseq.TooShortError
		require.ErrorAs(t, err, &tse)
		assert.Equal(t, minseq.TooShortError{Required: math.MaxInt, Actual: 2}, tse)
	}

	s, err := minseq.Collect(slices.Values([]int{1}), 1, minseq.WithCapacity(math.MaxInt))
	require.NoError(t, err, "min + extra must not overflow")
	assert.Equal(t, []int{1}, s.AsSlice())
}

// TestWithCapacity_PanicsOnNegative documents option validation.
func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { minseq.WithCapacity(-1) })
}

// TestOf infers the minimum from the literal length.
func TestOf(t *testing.T) {
	s := minseq.Of(1, 2, 3)
	assert.Equal(t, 3, s.Min())
	assert.Equal(t, []int{1, 2, 3}, s.AsSlice())

	empty := minseq.Of[int]()
	assert.Equal(t, 0, empty.Min())
	assert.Equal(t, 0, empty.Len())
}

// TestOfMin treats the explicit minimum as a floor.
func TestOfMin(t *testing.T) {
	s, err := minseq.OfMin(2, 2, 2, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Min())
	assert.Equal(t, 5, s.Len())

	_, err = minseq.OfMin(4, 1, 2)
	var tse minseq.TooShortError
	require.ErrorAs(t, err, &tse)
	assert.Equal(t, minseq.TooShortError{Required: 4, Actual: 2}, tse)

	assert.Panics(t, func() { minseq.MustOfMin(4, 1, 2) })
	assert.NotPanics(t, func() { minseq.MustOfMin[int](0) })
}

// TestRepeat builds n copies with minimum n.
func TestRepeat(t *testing.T) {
	s := minseq.Repeat(2, 5)
	assert.Equal(t, 5, s.Min())
	assert.Equal(t, []int{2, 2, 2, 2, 2}, s.AsSlice())

	assert.Equal(t, 0, minseq.Repeat("x", 0).Len())
	assert.Panics(t, func() { minseq.Repeat(1, -1) })
}

// TestFilled generates exactly min elements in order.
func TestFilled(t *testing.T) {
	next := 0
	s := minseq.Filled(3, func() int {
		next++
		return next
	})
	assert.Equal(t, []int{1, 2, 3}, s.AsSlice())
	assert.Equal(t, 3, s.Min())

	zeros := minseq.Filled[string](2, nil)
	assert.Equal(t, []string{"", ""}, zeros.AsSlice())
	assert.Panics(t, func() { minseq.Filled[int](-1, nil) })
}

// TestZeroValue shows the zero Seq is an empty sequence with minimum 0.
func TestZeroValue(t *testing.T) {
	var s minseq.Seq[int]
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Min())

	s.Push(7)
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = s.Pop()
	assert.ErrorIs(t, err, minseq.ErrAtMinimum)
	assert.NoError(t, s.Clear())
}
