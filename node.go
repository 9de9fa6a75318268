// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

// node is the interior entity of a YDD. It is immutable once constructed:
// every field except refcou is set by the engine's makeNode when the node is
// interned and never changes afterwards. A node denotes the family:
//
//	{ {key} ∪ s | s in family(then) } ∪ family(else)
//
// unless terminal is true, in which case it denotes the family {∅} regardless
// of key/then/else, which are unused.
//
// A nil *node[K] is not a valid interior node: it is the representation of the
// empty family (the 0-handle). There is exactly one terminal node per engine,
// materialized lazily the first time MakeTerminal(true) is called.
type node[K Key] struct {
	key      K
	then     *node[K]
	els      *node[K] // named els, not else, which is a keyword
	terminal bool
	size     uint64 // number of subsets in the family this node denotes
	refcou   int32  // owning references: Handle boxes, parent nodes, cache entries and pins
	id       uint64 // monotonic identity, used by the operation caches
}

// nodeKey is the structural identity of a candidate node, used as the key of
// the engine's unique table. Equality of nodeKey values is equality of
// (terminal, key, then, else), with then/else compared by pointer identity as
// required by the canonicity invariant.
type nodeKey[K Key] struct {
	terminal bool
	key      K
	then     *node[K]
	els      *node[K]
}

func (n *node[K]) isTerminal() bool {
	return n != nil && n.terminal
}

// famSize returns the size (cardinality of the family) denoted by a possibly
// nil node, i.e. 0 for the 0-handle.
func famSize[K Key](n *node[K]) uint64 {
	if n == nil {
		return 0
	}
	return n.size
}

// famID returns a stable identity for a possibly nil node, used to index the
// operation caches. The 0-handle and the 1-handle get the reserved identities
// 0 and 1 respectively, matching the convention used throughout the rudd
// library this package is adapted from.
func famID[K Key](n *node[K]) uint64 {
	if n == nil {
		return 0
	}
	return n.id
}
