// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcreteScenarioOne(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	assert.EqualValues(t, 1, one.Size())
	assert.True(t, one.Intersection(one).Equal(one))
	assert.True(t, one.Union(e.MakeTerminal(false)).Equal(one))
}

func TestConcreteScenarioTwo(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	zero := e.MakeTerminal(false)
	a := e.MakeNode(1, one, zero)

	assert.EqualValues(t, 1, a.Size())
	assert.Equal(t, 1, a.Key())
	assert.True(t, a.Then().Equal(one))
	assert.True(t, a.Else().Equal(zero))
}

func TestConcreteScenarioThree(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	zero := e.MakeTerminal(false)
	a := e.MakeNode(1, one, zero)
	b := e.MakeNode(1, one, e.MakeNode(2, one, zero))

	assert.EqualValues(t, 2, b.Size())
	assert.True(t, a.LessOrEqual(b))
	assert.True(t, a.Union(b).Equal(b))

	diff := b.Difference(a)
	assert.EqualValues(t, 1, diff.Size())
	assert.True(t, diff.Equal(e.MakeNode(2, one, zero)))
}

func TestConcreteScenarioFour(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	zero := e.MakeTerminal(false)
	a := e.MakeNode(1, one, zero)
	b := e.MakeNode(1, one, e.MakeNode(2, one, zero))

	inter := a.Intersection(b)
	assert.True(t, inter.Equal(a))
	assert.EqualValues(t, 1, inter.Size())
}

func TestConcreteScenarioFive(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	zero := e.MakeTerminal(false)
	a := e.MakeNode(1, one, zero)
	b := e.MakeNode(1, one, e.MakeNode(2, one, zero))

	symdiff := a.SymmetricDifference(b)
	assert.EqualValues(t, 1, symdiff.Size())
	assert.True(t, symdiff.Equal(e.MakeNode(2, one, zero)))
	assert.True(t, symdiff.Equal(b.Difference(a)))
}

func TestConcreteScenarioSix(t *testing.T) {
	e := newIntEngine(t)

	one := e.MakeTerminal(true)
	zero := e.MakeTerminal(false)

	direct := e.MakeNode(1, one, e.MakeNode(2, one, zero))
	built := e.MakeNode(1, one, zero).Union(e.MakeNode(2, one, zero))

	assert.True(t, direct.Equal(built))
}

func TestIdempotence(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 3)

	assert.True(t, a.Union(a).Equal(a))
	assert.True(t, a.Intersection(a).Equal(a))
}

func TestAbsorption(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)
	b := singleton(e, 1, 3)

	assert.True(t, a.Union(a.Intersection(b)).Equal(a))
	assert.True(t, a.Intersection(a.Union(b)).Equal(a))
}

func TestCommutativity(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)
	b := singleton(e, 1, 3)

	assert.True(t, a.Union(b).Equal(b.Union(a)))
	assert.True(t, a.Intersection(b).Equal(b.Intersection(a)))
	assert.True(t, a.SymmetricDifference(b).Equal(b.SymmetricDifference(a)))
}

func TestAssociativity(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1)
	b := singleton(e, 2)
	c := singleton(e, 3)

	assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
	assert.True(t, a.Intersection(b).Intersection(c).Equal(a.Intersection(b.Intersection(c))))
	assert.True(t, a.SymmetricDifference(b).SymmetricDifference(c).Equal(
		a.SymmetricDifference(b.SymmetricDifference(c))))
}

func TestDistributivity(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)
	b := singleton(e, 1, 3)
	c := singleton(e, 2, 3)

	left := a.Intersection(b.Union(c))
	right := a.Intersection(b).Union(a.Intersection(c))
	assert.True(t, left.Equal(right))
}

func TestIdentities(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1, 2)
	zero := e.MakeTerminal(false)
	one := e.MakeTerminal(true)

	assert.True(t, a.Union(zero).Equal(a))
	assert.True(t, a.Difference(zero).Equal(a))
	assert.True(t, a.Difference(a).Equal(zero))
	assert.True(t, a.SymmetricDifference(a).Equal(zero))
	assert.True(t, a.SymmetricDifference(zero).Equal(a))

	// a does not contain the empty set, so a ∩ 1 == 0.
	assert.True(t, a.Intersection(one).Equal(zero))

	withEmpty := one.Union(a)
	assert.True(t, withEmpty.Intersection(one).Equal(one))
}

func TestInclusionCardinality(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1)
	b := singleton(e, 1).Union(singleton(e, 2))

	assert.True(t, a.LessOrEqual(b))
	assert.LessOrEqual(t, a.Size(), b.Size())

	union := a.Union(b)
	inter := a.Intersection(b)
	assert.EqualValues(t, a.Size()+b.Size()-inter.Size(), union.Size())

	symdiff := a.SymmetricDifference(b)
	assert.EqualValues(t, union.Size()-inter.Size(), symdiff.Size())
}

func TestLessIsStrictInclusion(t *testing.T) {
	e := newIntEngine(t)
	a := singleton(e, 1)
	b := singleton(e, 1).Union(singleton(e, 2))

	assert.True(t, a.Less(b))
	assert.False(t, a.Less(a))
	assert.True(t, a.LessOrEqual(a))
	assert.False(t, b.Less(a))
}
