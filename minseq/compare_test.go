// SPDX-License-Identifier: MIT

package minseq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vecmin/minseq"
)

// TestEqual_IgnoresMinimum: contents decide equality, not the bound.
func TestEqual_IgnoresMinimum(t *testing.T) {
	five := minseq.Repeat(2, 5)
	two := minseq.MustOfMin(2, 2, 2, 2, 2, 2)

	assert.Equal(t, 5, five.Min())
	assert.Equal(t, 2, two.Min())
	assert.True(t, minseq.Equal(five, two))
	assert.Equal(t, 0, minseq.Compare(five, two))

	two.Push(2)
	assert.False(t, minseq.Equal(five, two))
}

// TestEqual_Nil treats nil like an empty sequence.
func TestEqual_Nil(t *testing.T) {
	assert.True(t, minseq.Equal(nil, minseq.Of[int]()))
	assert.False(t, minseq.Equal(nil, minseq.Of(1)))
}

// TestCompare orders lexicographically.
func TestCompare(t *testing.T) {
	assert.Equal(t, -1, minseq.Compare(minseq.Of(1, 2), minseq.Of(1, 3)))
	assert.Equal(t, 1, minseq.Compare(minseq.Of(1, 2, 0), minseq.Of(1, 2)))
	assert.Equal(t, -1, minseq.Compare(minseq.Of[int](), minseq.Of(0)))
}

// TestEqualFunc_CompareFunc use caller-provided element relations.
func TestEqualFunc_CompareFunc(t *testing.T) {
	a := minseq.Of("Go", "GOPHER")
	b := minseq.Of("go", "gopher")
	assert.True(t, minseq.EqualFunc(a, b, strings.EqualFold))
	assert.Equal(t, 0, minseq.CompareFunc(a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}))
}
