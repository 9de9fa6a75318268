// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import "runtime"

// Handle is a (possibly null) owning reference to a node of an Engine. The
// nil node represents the empty family (0); a Handle whose node has terminal
// set to true represents {∅} (1). Handle equality is pointer equality on the
// underlying node, which by the engine's canonicity invariant is equivalent
// to equality of the families the handles denote.
//
// A Handle wraps a small heap-allocated box rather than holding the engine
// and node pointers directly. Plain Go copies of a Handle value (assignment,
// passing by value, storing in a slice) alias the same box and therefore the
// same reference-count share: the node stays alive as long as any one of
// those copies is reachable, and the finalizer attached to the box fires
// exactly once, when none of them are any more. A second, independently
// released share of the same family is obtained explicitly with Retain.
type Handle[K Key] struct {
	box *handleBox[K]
}

type handleBox[K Key] struct {
	engine *Engine[K]
	node   *node[K]
}

// wrap installs a Handle around n and increments its reference count, unless
// n is nil (the 0-handle, which needs no box and no accounting). It arranges
// for the count to be decremented automatically if the caller never calls
// Release, the Go analogue of the copy-constructor the original C++ engine
// this package's ownership model is grounded on relies on (see
// original_source/src/ydd.hpp's Root class).
func (e *Engine[K]) wrap(n *node[K]) Handle[K] {
	if n == nil {
		return Handle[K]{}
	}
	retain(n)
	b := &handleBox[K]{engine: e, node: n}
	runtime.SetFinalizer(b, func(b *handleBox[K]) {
		b.engine.releaseNode(b.node)
	})
	return Handle[K]{box: b}
}

// Retain returns a new Handle sharing the same underlying family, bumping the
// reference count once more. Call it whenever you are about to store a
// second, independently-released copy of a Handle you were handed (e.g. to
// stash it in a container whose lifetime is unrelated to the handle you
// received). This is the Go equivalent of what a copy-constructor does
// automatically in a language that has one.
func (h Handle[K]) Retain() Handle[K] {
	if h.box == nil {
		return h
	}
	return h.box.engine.wrap(h.box.node)
}

// Release decrements the reference count this Handle contributes and, if it
// was the last one, removes the node from the engine's unique table and
// releases its children transitively. Calling Release more than once on the
// same Handle value is a programmer error (double release); calling it on
// the 0-handle is a no-op. After Release, the Handle must not be used again.
func (h *Handle[K]) Release() {
	b := h.box
	h.box = nil
	if b == nil {
		return
	}
	runtime.SetFinalizer(b, nil)
	b.engine.releaseNode(b.node)
}

// releaseNode decrements n's reference count and, at zero, forgets it from
// the unique table and releases its then/else children transitively (cache
// records holding those children keep them alive independently, per the
// engine's §3 lifecycle rule).
func (e *Engine[K]) releaseNode(n *node[K]) {
	if n == nil || n.terminal {
		// The terminal node is an engine-wide singleton; it is never
		// forgotten, so its count needs no bookkeeping.
		return
	}
	n.refcou--
	if n.refcou > 0 {
		return
	}
	e.unique.forget(n)
	e.releaseNode(n.then)
	e.releaseNode(n.els)
}

// retain increments n's reference count, unless n is nil or terminal (the
// null handle and the shared terminal singleton need no accounting).
func retain[K Key](n *node[K]) {
	if n != nil && !n.terminal {
		n.refcou++
	}
}

// IsZero reports whether h denotes the empty family (0).
func (h Handle[K]) IsZero() bool {
	return h.rawNode() == nil
}

// IsOne reports whether h denotes the family containing only the empty set
// (1).
func (h Handle[K]) IsOne() bool {
	n := h.rawNode()
	return n != nil && n.terminal
}

// Key returns the branching key of an interior handle. Calling Key on the
// 0-handle or the 1-handle is a programmer error and panics, per §4.5.
func (h Handle[K]) Key() K {
	h.mustBeInterior("Key")
	return h.box.node.key
}

// Then returns the then-child of an interior handle. Calling Then on the
// 0-handle or the 1-handle is a programmer error and panics.
func (h Handle[K]) Then() Handle[K] {
	h.mustBeInterior("Then")
	return h.box.engine.wrap(h.box.node.then)
}

// Else returns the else-child of an interior handle. Calling Else on the
// 0-handle or the 1-handle is a programmer error and panics.
func (h Handle[K]) Else() Handle[K] {
	h.mustBeInterior("Else")
	return h.box.engine.wrap(h.box.node.els)
}

func (h Handle[K]) mustBeInterior(method string) {
	n := h.rawNode()
	if n == nil || n.terminal {
		panic("ydd: " + method + " called on a terminal or null Handle")
	}
}

// rawNode returns the underlying node pointer, or nil for a box-less (0 or
// zero-value) Handle.
func (h Handle[K]) rawNode() *node[K] {
	if h.box == nil {
		return nil
	}
	return h.box.node
}

// Size returns the cardinality of the family denoted by h: the number of
// subsets it contains.
func (h Handle[K]) Size() uint64 {
	return famSize(h.rawNode())
}

// Equal reports whether h and other denote the same family. Both handles
// must come from the same engine.
func (h Handle[K]) Equal(other Handle[K]) bool {
	return h.rawNode() == other.rawNode()
}

// Hash returns a value suitable for use as a Go map key, derived from the
// identity of the underlying node (the null handle hashes to 0).
func (h Handle[K]) Hash() uint64 {
	return famID(h.rawNode())
}

// engine returns the Engine that produced h, or nil for the 0-handle.
func (h Handle[K]) engine() *Engine[K] {
	if h.box == nil {
		return nil
	}
	return h.box.engine
}
