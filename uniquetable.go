// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

// uniqueTable maps a node's structural description to its one canonical
// instance. It is the sole source of the engine's canonicity guarantee:
// two calls to makeNode with the same (key, then, else) always return the
// same *node[K], so pointer equality of nodes is equality of families.
//
// The rudd library this package is adapted from hand-packs a byte hash for
// its array-indexed nodes (huddhash in hashing.go) because pre-generics Go
// had no way to make an arbitrary struct a map key. With generics and a
// comparable element type K, the structural description nodeKey[K] is
// itself a valid, comparable Go map key, so a native map gives the same
// O(1) expected-time interning without any hand-rolled hashing.
type uniqueTable[K Key] struct {
	table map[nodeKey[K]]*node[K]
}

func newUniqueTable[K Key]() uniqueTable[K] {
	return uniqueTable[K]{table: make(map[nodeKey[K]]*node[K])}
}

// lookup returns the existing node matching desc, if any.
func (t *uniqueTable[K]) lookup(desc nodeKey[K]) (*node[K], bool) {
	n, ok := t.table[desc]
	return n, ok
}

// intern registers n as the canonical instance for desc. Callers must have
// already confirmed, via lookup, that no instance exists.
func (t *uniqueTable[K]) intern(desc nodeKey[K], n *node[K]) {
	t.table[desc] = n
}

// forget removes n from the table once its reference count has reached
// zero. n must be an interior node (the terminal singleton is never
// interned under a nodeKey and must never be passed here).
func (t *uniqueTable[K]) forget(n *node[K]) {
	desc := nodeKey[K]{key: n.key, then: n.then, els: n.els}
	delete(t.table, desc)
}

// len reports the number of live interior nodes, excluding the terminal
// singleton.
func (t *uniqueTable[K]) len() int {
	return len(t.table)
}
