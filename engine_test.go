// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntEngine(t *testing.T, opts ...Option) *Engine[int] {
	t.Helper()
	e, err := New[int](opts...)
	require.NoError(t, err)
	return e
}

func singleton(e *Engine[int], keys ...int) Handle[int] {
	h := e.MakeTerminal(true)
	for i := len(keys) - 1; i >= 0; i-- {
		h = e.MakeNode(keys[i], h, e.MakeTerminal(false))
	}
	return h
}

func TestNewRejectsInvalidCacheSize(t *testing.T) {
	_, err := New[int](UnionCacheSize(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCacheSize)
}

func TestMakeTerminalIdentity(t *testing.T) {
	e := newIntEngine(t)

	zero := e.MakeTerminal(false)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsOne())

	one := e.MakeTerminal(true)
	assert.False(t, one.IsZero())
	assert.True(t, one.IsOne())

	// The terminal node is a per-engine singleton.
	assert.True(t, one.Equal(e.MakeTerminal(true)))
}

func TestZeroSuppression(t *testing.T) {
	e := newIntEngine(t)

	// A node whose then-child is the empty family collapses to its
	// else-child: MakeNode(k, 0, h) == h for any h.
	h := singleton(e, 2, 4)
	collapsed := e.MakeNode(1, e.MakeTerminal(false), h)
	assert.True(t, collapsed.Equal(h))
}

func TestCanonicity(t *testing.T) {
	e := newIntEngine(t)

	// Two handles built independently from the same structural
	// description must be pointer-identical (the unique table's
	// guarantee), not merely "equal" by some deep comparison.
	a := singleton(e, 1, 3, 5)
	b := singleton(e, 1, 3, 5)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := singleton(e, 1, 3, 6)
	assert.False(t, a.Equal(c))
}

func TestSizeLaw(t *testing.T) {
	e := newIntEngine(t)

	a := singleton(e, 1, 2)
	b := singleton(e, 1, 3)
	union := a.Union(b)

	// {1,2} and {1,3} are distinct subsets, so their union's family has
	// two members.
	assert.EqualValues(t, 2, union.Size())

	empty := e.MakeTerminal(false)
	justEmptySet := e.MakeTerminal(true)
	assert.EqualValues(t, 0, empty.Size())
	assert.EqualValues(t, 1, justEmptySet.Size())
}

func TestStatsReportsUniqueTableAndCacheActivity(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)
	b := singleton(e, 1, 3)

	_ = a.Union(b)
	_ = a.Union(b) // second call should hit the union cache

	stats := e.Stats()
	assert.Positive(t, stats.UniqueTableSize)
	assert.Positive(t, stats.NodesCreated)
	assert.GreaterOrEqual(t, stats.Union.Hits, uint64(1))
}

func TestHandleRetainReleaseDoesNotCorruptSharedNodes(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)

	clone := a.Retain()
	clone.Release()

	// a still denotes the same family after the clone's independent
	// release.
	assert.True(t, a.Equal(singleton(e, 1, 2)))
}

func TestAccessorsPanicOnTerminalOrNullHandle(t *testing.T) {
	e := newIntEngine(t)

	assert.Panics(t, func() { e.MakeTerminal(false).Key() })
	assert.Panics(t, func() { e.MakeTerminal(true).Then() })
	assert.Panics(t, func() { e.MakeTerminal(true).Else() })
}

func TestInteriorAccessors(t *testing.T) {
	e := newIntEngine(t)
	h := singleton(e, 2, 4)

	assert.Equal(t, 2, h.Key())
	assert.True(t, h.Then().Equal(singleton(e, 4)))
	assert.True(t, h.Else().IsZero())
}

func TestOperationAcrossDifferentEnginesPanics(t *testing.T) {
	e1 := newIntEngine(t)
	e2 := newIntEngine(t)

	a := singleton(e1, 1)
	b := singleton(e2, 1)

	assert.Panics(t, func() { a.Union(b) })
}
