// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import "sort"

// Update returns the family obtained from family(h) by forcing every key in
// on to be present in each subset and every key in off to be absent,
// leaving every other key untouched. Grounded on
// original_source/ydd/homomorphisms.py's Update: on and off are merged into
// a single list of (key, enabled) symbols sorted by key, the same order the
// original processes a pattern's symbols in, and applied one at a time.
func (e *Engine[K]) Update(h Handle[K], on, off []K) Handle[K] {
	symbols := make([]Symbol[K], 0, len(on)+len(off))
	for _, k := range on {
		symbols = append(symbols, Symbol[K]{Value: k, Enabled: true})
	}
	for _, k := range off {
		symbols = append(symbols, Symbol[K]{Value: k, Enabled: false})
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Value < symbols[j].Value })

	// n starts out owned by h for the duration of this call. Once the loop
	// reassigns it to an intermediate result of its own, that result is not
	// yet owned by anything durable, so it is pinned across iterations: the
	// next iteration's recursion goes through union's cache, whose stores
	// can evict and release unrelated nodes, and n must survive that.
	n := h.rawNode()
	owned := false
	for _, sym := range symbols {
		memo := make(map[*node[K]]*node[K])
		var next *node[K]
		if sym.Enabled {
			next = e.set(sym.Value, n, memo)
		} else {
			next = e.unset(sym.Value, n, memo)
		}
		if owned {
			e.unpin(n)
		}
		n = e.pin(next)
		owned = true
	}
	res := e.wrap(n)
	if owned {
		e.unpin(n)
	}
	return res
}

// set forces key to be present in every subset of family(n), moving it out
// of the else-branch and merging it into the then-branch wherever it
// already occurs below the insertion point.
func (e *Engine[K]) set(key K, n *node[K], memo map[*node[K]]*node[K]) *node[K] {
	if n == nil {
		return nil
	}
	if res, ok := memo[n]; ok {
		return res
	}

	var res *node[K]
	switch {
	case n.terminal || n.key > key:
		// key does not occur below n: insert it above, forcing it present.
		res = e.makeNode(key, n, nil)
	case n.key == key:
		// key already branches here: merge both children into then, since
		// key must now be present regardless of which branch was taken.
		then := e.pin(e.unionRaw(n.then, n.els))
		res = e.makeNode(n.key, then, nil)
		e.unpin(then)
	default: // n.key < key
		then := e.pin(e.set(key, n.then, memo))
		els := e.pin(e.set(key, n.els, memo))
		res = e.makeNode(n.key, then, els)
		e.unpin(then)
		e.unpin(els)
	}

	memo[n] = res
	return res
}

// unset forces key to be absent from every subset of family(n), dropping
// the then-branch wherever the key occurs and merging its then/else
// children upward.
func (e *Engine[K]) unset(key K, n *node[K], memo map[*node[K]]*node[K]) *node[K] {
	if n == nil {
		return nil
	}
	if res, ok := memo[n]; ok {
		return res
	}

	var res *node[K]
	switch {
	case n.terminal || n.key > key:
		res = n
	case n.key == key:
		res = e.unionRaw(n.then, n.els)
	default: // n.key < key
		then := e.pin(e.unset(key, n.then, memo))
		els := e.pin(e.unset(key, n.els, memo))
		res = e.makeNode(n.key, then, els)
		e.unpin(then)
		e.unpin(els)
	}

	memo[n] = res
	return res
}

// Filter returns the family of subsets of family(h) that match at least one
// minterm of pattern. Grounded on
// original_source/ydd/homomorphisms.py's Filter, dropping the source's
// composition with a follow-up homomorphism since this package exposes
// Filter as a leaf operation rather than one element of a homomorphism
// algebra.
func (e *Engine[K]) Filter(h Handle[K], pattern Pattern[K]) Handle[K] {
	// n is owned by h for the call's duration. acc, once non-nil, is an
	// unowned intermediate result and is pinned across iterations for the
	// same reason as in Update: the next iteration's union call can evict
	// and release cache entries unrelated to acc, and acc must survive it.
	n := h.rawNode()
	var acc *node[K]
	accOwned := false
	for _, mt := range pattern.Minterms {
		memo := make(map[filterMemoKey[K]]*node[K])
		matched := e.pin(e.filterMinterm(n, mt.sorted(), memo))
		next := e.unionRaw(acc, matched)
		e.unpin(matched)
		if accOwned {
			e.unpin(acc)
		}
		acc = e.pin(next)
		accOwned = true
	}
	res := e.wrap(acc)
	if accOwned {
		e.unpin(acc)
	}
	return res
}

// filterMemoKey identifies a (node, remaining minterm suffix) pair: the
// same node can be visited at different positions in the minterm as the
// recursion descends its then/else children at different rates, so the
// memo must be keyed by both, not by node alone.
type filterMemoKey[K Key] struct {
	n    *node[K]
	step int
}

// filterMinterm keeps only the subsets of family(n) that satisfy every
// symbol of minterm, consuming symbols left to right as n's keys increase.
// step identifies minterm's current position for memoization purposes.
func (e *Engine[K]) filterMinterm(n *node[K], minterm Minterm[K], memo map[filterMemoKey[K]]*node[K]) *node[K] {
	if n == nil || len(minterm) == 0 {
		return n
	}

	mk := filterMemoKey[K]{n: n, step: len(minterm)}
	if res, ok := memo[mk]; ok {
		return res
	}

	sym := minterm[0]
	var res *node[K]
	switch {
	case n.terminal || n.key > sym.Value:
		if sym.Enabled {
			res = nil
		} else {
			res = e.filterMinterm(n, minterm[1:], memo)
		}
	case n.key == sym.Value:
		if sym.Enabled {
			then := e.pin(e.filterMinterm(n.then, minterm[1:], memo))
			res = e.makeNode(n.key, then, nil)
			e.unpin(then)
		} else {
			res = e.filterMinterm(n.els, minterm[1:], memo)
		}
	default: // n.key < sym.Value
		then := e.pin(e.filterMinterm(n.then, minterm, memo))
		els := e.pin(e.filterMinterm(n.els, minterm, memo))
		res = e.makeNode(n.key, then, els)
		e.unpin(then)
		e.unpin(els)
	}

	memo[mk] = res
	return res
}
