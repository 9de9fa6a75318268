// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

// This file implements the four set-algebra operations as a co-recursion on
// the two operands' top keys, each consulting its own operation cache before
// recomputing, following the same public-wrapper/private-recursive-core
// split as the rudd library's apply/ite pair (operations.go), generalized
// from a single fixed Boolean-operator table to the four operations a YDD
// supports.

// Union returns the handle for family(h) ∪ family(other).
func (h Handle[K]) Union(other Handle[K]) Handle[K] {
	e := h.engineFor(other, "Union")
	if e == nil {
		return Handle[K]{}
	}
	return e.wrap(e.unionRaw(h.rawNode(), other.rawNode()))
}

// Intersection returns the handle for family(h) ∩ family(other).
func (h Handle[K]) Intersection(other Handle[K]) Handle[K] {
	e := h.engineFor(other, "Intersection")
	if e == nil {
		return Handle[K]{}
	}
	return e.wrap(e.intersectionRaw(h.rawNode(), other.rawNode()))
}

// Difference returns the handle for family(h) \ family(other).
func (h Handle[K]) Difference(other Handle[K]) Handle[K] {
	e := h.engineFor(other, "Difference")
	if e == nil {
		return Handle[K]{}
	}
	return e.wrap(e.differenceRaw(h.rawNode(), other.rawNode()))
}

// SymmetricDifference returns the handle for family(h) △ family(other).
func (h Handle[K]) SymmetricDifference(other Handle[K]) Handle[K] {
	e := h.engineFor(other, "SymmetricDifference")
	if e == nil {
		return Handle[K]{}
	}
	return e.wrap(e.symmetricDifferenceRaw(h.rawNode(), other.rawNode()))
}

// engineFor returns the engine the two handles share, or nil when both are
// 0-handles (the four operations above then return the 0-handle directly,
// since each of them maps (0, 0) to 0), panicking if both
// carry a non-nil engine and they differ. This is the one cheap
// cross-engine check this package performs; deeper misuse (e.g. a handle
// surviving its engine) is a programmer error the spec does not require
// detecting.
func (h Handle[K]) engineFor(other Handle[K], op string) *Engine[K] {
	a, b := h.engine(), other.engine()
	if a != nil && b != nil && a != b {
		panic(errMismatchedEngine(op))
	}
	if a != nil {
		return a
	}
	return b
}

// elseMost walks a node's else-chain down to its terminal or null leaf. Used
// by intersection and difference when one operand is the 1-handle: the
// "else-most" leaf records whether ∅ is a member of the other operand's
// family.
func elseMost[K Key](n *node[K]) *node[K] {
	for n != nil && !n.terminal {
		n = n.els
	}
	return n
}

func (e *Engine[K]) unionRaw(l, r *node[K]) *node[K] {
	if res, ok := e.union.lookup(l, r); ok {
		return res
	}
	res := e.unionCompute(l, r)
	e.union.store(l, r, res)
	return res
}

func (e *Engine[K]) unionCompute(l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.terminal && r.terminal:
		return l
	case l.terminal:
		child := e.pin(e.unionRaw(r.els, l))
		res := e.makeNode(r.key, r.then, child)
		e.unpin(child)
		return res
	case r.terminal:
		child := e.pin(e.unionRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key < r.key:
		child := e.pin(e.unionRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key == r.key:
		then := e.pin(e.unionRaw(l.then, r.then))
		els := e.pin(e.unionRaw(l.els, r.els))
		res := e.makeNode(l.key, then, els)
		e.unpin(then)
		e.unpin(els)
		return res
	default: // l.key > r.key
		child := e.pin(e.unionRaw(r.els, l))
		res := e.makeNode(r.key, r.then, child)
		e.unpin(child)
		return res
	}
}

func (e *Engine[K]) intersectionRaw(l, r *node[K]) *node[K] {
	if res, ok := e.intersection.lookup(l, r); ok {
		return res
	}
	res := e.intersectionCompute(l, r)
	e.intersection.store(l, r, res)
	return res
}

func (e *Engine[K]) intersectionCompute(l, r *node[K]) *node[K] {
	switch {
	case l == nil || r == nil:
		return nil
	case l.terminal:
		return elseMost(r)
	case r.terminal:
		return elseMost(l)
	case l.key < r.key:
		return e.intersectionRaw(l.els, r)
	case l.key == r.key:
		then := e.pin(e.intersectionRaw(l.then, r.then))
		els := e.pin(e.intersectionRaw(l.els, r.els))
		res := e.makeNode(l.key, then, els)
		e.unpin(then)
		e.unpin(els)
		return res
	default: // l.key > r.key
		return e.intersectionRaw(l, r.els)
	}
}

func (e *Engine[K]) differenceRaw(l, r *node[K]) *node[K] {
	if res, ok := e.difference.lookup(l, r); ok {
		return res
	}
	res := e.differenceCompute(l, r)
	e.difference.store(l, r, res)
	return res
}

func (e *Engine[K]) differenceCompute(l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return nil
	case r == nil:
		return l
	case l.terminal:
		if elseMost(r) == nil {
			return l
		}
		return nil
	case r.terminal:
		child := e.pin(e.differenceRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key < r.key:
		child := e.pin(e.differenceRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key == r.key:
		then := e.pin(e.differenceRaw(l.then, r.then))
		els := e.pin(e.differenceRaw(l.els, r.els))
		res := e.makeNode(l.key, then, els)
		e.unpin(then)
		e.unpin(els)
		return res
	default: // l.key > r.key
		return e.differenceRaw(l, r.els)
	}
}

func (e *Engine[K]) symmetricDifferenceRaw(l, r *node[K]) *node[K] {
	if res, ok := e.symdiff.lookup(l, r); ok {
		return res
	}
	res := e.symmetricDifferenceCompute(l, r)
	e.symdiff.store(l, r, res)
	return res
}

func (e *Engine[K]) symmetricDifferenceCompute(l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.terminal && r.terminal:
		return nil
	case l.terminal:
		child := e.pin(e.symmetricDifferenceRaw(l, r.els))
		res := e.makeNode(r.key, r.then, child)
		e.unpin(child)
		return res
	case r.terminal:
		child := e.pin(e.symmetricDifferenceRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key < r.key:
		child := e.pin(e.symmetricDifferenceRaw(l.els, r))
		res := e.makeNode(l.key, l.then, child)
		e.unpin(child)
		return res
	case l.key == r.key:
		then := e.pin(e.symmetricDifferenceRaw(l.then, r.then))
		els := e.pin(e.symmetricDifferenceRaw(l.els, r.els))
		res := e.makeNode(l.key, then, els)
		e.unpin(then)
		e.unpin(els)
		return res
	default: // l.key > r.key
		child := e.pin(e.symmetricDifferenceRaw(l, r.els))
		res := e.makeNode(r.key, r.then, child)
		e.unpin(child)
		return res
	}
}
