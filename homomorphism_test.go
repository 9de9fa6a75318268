// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// family builds the union of several singleton subsets, for readability in
// test setup.
func family(e *Engine[int], subsets ...[]int) Handle[int] {
	acc := e.MakeTerminal(false)
	for _, s := range subsets {
		acc = acc.Union(singleton(e, s...))
	}
	return acc
}

func TestUpdateForcesKeyPresent(t *testing.T) {
	e := newIntEngine(t)

	// family({1}, {2}, {1,3})
	f := family(e, []int{1}, []int{2}, []int{1, 3})

	updated := e.Update(f, []int{2}, nil)

	want := family(e, []int{1, 2}, []int{2}, []int{1, 2, 3})
	assert.True(t, updated.Equal(want))
}

func TestUpdateForcesKeyAbsent(t *testing.T) {
	e := newIntEngine(t)

	f := family(e, []int{1}, []int{2}, []int{1, 2, 3})

	updated := e.Update(f, nil, []int{2})

	want := family(e, []int{1}, []int{}, []int{1, 3})
	assert.True(t, updated.Equal(want))
}

func TestUpdateOnAndOffTogether(t *testing.T) {
	e := newIntEngine(t)

	f := family(e, []int{1}, []int{2}, []int{3})

	updated := e.Update(f, []int{2}, []int{1})

	want := family(e, []int{2}, []int{2}, []int{2, 3})
	assert.True(t, updated.Equal(want))
}

func TestFilterRequiredSymbol(t *testing.T) {
	e := newIntEngine(t)

	f := family(e, []int{1}, []int{2}, []int{1, 2})

	filtered := e.Filter(f, NewPattern(Minterm[int]{{Value: 1, Enabled: true}}))

	want := family(e, []int{1}, []int{1, 2})
	assert.True(t, filtered.Equal(want))
}

func TestFilterForbiddenSymbol(t *testing.T) {
	e := newIntEngine(t)

	f := family(e, []int{1}, []int{2}, []int{1, 2})

	filtered := e.Filter(f, NewPattern(Minterm[int]{{Value: 1, Enabled: false}}))

	want := family(e, []int{2})
	assert.True(t, filtered.Equal(want))
}

func TestFilterDisjunctionOfMinterms(t *testing.T) {
	e := newIntEngine(t)

	f := family(e, []int{1}, []int{2}, []int{3}, []int{1, 2})

	pattern := NewPattern(
		Minterm[int]{{Value: 1, Enabled: true}, {Value: 2, Enabled: false}},
		Minterm[int]{{Value: 3, Enabled: true}},
	)
	filtered := e.Filter(f, pattern)

	want := family(e, []int{1}, []int{3})
	assert.True(t, filtered.Equal(want))
}

func TestFilterEmptyPatternMatchesNothing(t *testing.T) {
	e := newIntEngine(t)
	f := family(e, []int{1}, []int{2})

	filtered := e.Filter(f, NewPattern[int]())
	assert.True(t, filtered.IsZero())
}
