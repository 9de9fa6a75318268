// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

// Engine owns the unique table and the per-operation caches for one family
// of K-keyed YDDs. Handles produced by one Engine must never be mixed with
// handles produced by another. Union, Intersection, Difference and
// SymmetricDifference panic when their two operands carry different engines;
// no other method of this package detects that misuse.
//
// The zero value of Engine is not usable; construct one with New.
type Engine[K Key] struct {
	unique uniqueTable[K]

	union        *opCache[K]
	intersection *opCache[K]
	difference   *opCache[K]
	symdiff      *opCache[K]

	terminal *node[K]
	nextID   uint64

	stats Stats
}

// New creates an Engine ready to build and combine families of subsets of K.
// Cache sizes default to 512 per operation, one of the sizes the rudd
// library this package is adapted from uses for its own operation caches;
// each configured size is rounded up to the next prime (521 for 512) to give
// the cache's slot count. Use the Option values in options.go to override
// them.
func New[K Key](opts ...Option) (*Engine[K], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine[K]{
		unique: newUniqueTable[K](),
		nextID: 2, // 0 is reserved for the 0-handle, 1 for the terminal node
	}
	e.union = e.newOpCache(cfg.unionCacheSize)
	e.intersection = e.newOpCache(cfg.intersectionCacheSize)
	e.difference = e.newOpCache(cfg.differenceCacheSize)
	e.symdiff = e.newOpCache(cfg.symdiffCacheSize)

	dlogf("engine: created with cache sizes union=%d intersection=%d difference=%d symdiff=%d",
		cfg.unionCacheSize, cfg.intersectionCacheSize, cfg.differenceCacheSize, cfg.symdiffCacheSize)

	return e, nil
}

// MakeTerminal returns the 0-handle (value false) or the 1-handle (value
// true), materializing the shared terminal node on its first use.
func (e *Engine[K]) MakeTerminal(value bool) Handle[K] {
	if !value {
		return Handle[K]{}
	}
	if e.terminal == nil {
		e.terminal = &node[K]{terminal: true, size: 1, id: 1}
	}
	return e.wrap(e.terminal)
}

// MakeNode constructs the node denoting { {key} ∪ s | s in family(then) } ∪
// family(else), applying the zero-suppression rule and the unique table, and
// returns an owned Handle to it. then and else must come from this engine;
// mixing handles across engines is a programmer error this method does not
// detect.
func (e *Engine[K]) MakeNode(key K, then, els Handle[K]) Handle[K] {
	return e.wrap(e.makeNode(key, then.rawNode(), els.rawNode()))
}

// makeNode is the raw-pointer core of MakeNode: it applies zero-suppression
// and interning but does not itself take an ownership share in the returned
// node on behalf of its caller. Callers that keep the returned pointer
// around (store it as another node's child, put it in a cache slot, or wrap
// it in a Handle) are responsible for retaining it at that point.
func (e *Engine[K]) makeNode(key K, then, els *node[K]) *node[K] {
	if then == nil {
		// Zero-suppression: a node whose then-child is the empty family
		// collapses to its else-child.
		return els
	}

	desc := nodeKey[K]{key: key, then: then, els: els}
	if existing, ok := e.unique.lookup(desc); ok {
		return existing
	}

	n := &node[K]{
		key:  key,
		then: then,
		els:  els,
		size: famSize(then) + famSize(els),
		id:   e.nextID,
	}
	e.nextID++
	retain(then)
	retain(els)
	e.unique.intern(desc, n)
	e.stats.NodesCreated++
	dlogf("engine: interned fresh node id=%d key=%v then=%d els=%d size=%d", n.id, key, famID(then), famID(els), n.size)
	return n
}

// pin temporarily retains a raw node for the duration of a recursive
// operation step, protecting it from being forgotten by a cache eviction
// triggered by a sibling recursive call before the caller has had a chance
// to give it a durable home (a parent node's child slot or a cache entry).
// See cache.go's store, which documents the corresponding hazard.
func (e *Engine[K]) pin(n *node[K]) *node[K] {
	retain(n)
	return n
}

// unpin releases the temporary share taken by pin.
func (e *Engine[K]) unpin(n *node[K]) {
	e.releaseNode(n)
}

// Stats returns a snapshot of the engine's bookkeeping counters.
func (e *Engine[K]) Stats() Stats {
	s := e.stats
	s.UniqueTableSize = e.unique.len()
	s.Union = e.union.stats()
	s.Intersection = e.intersection.stats()
	s.Difference = e.difference.stats()
	s.SymmetricDifference = e.symdiff.stats()
	return s
}
