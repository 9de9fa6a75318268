// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package ydd

// opCache is a direct-mapped, fixed-size cache for the result of a single
// binary operation (union, intersection, ...), one per operation per
// Engine, following the same one-cache-per-operation split as the rudd
// library's applycache/itecache/quantcache family (cache.go) rather than a
// single shared cache keyed by an operator tag.
//
// A slot is identified by hashing the two operand nodes' identities; a
// collision simply evicts the previous occupant (last writer wins), which
// is sound because the cache is an optimization, never a source of truth:
// a miss always falls back to recomputing from the unique table.
type opCache[K Key] struct {
	engine *Engine[K]
	slots  []cacheEntry[K]
	stat   CacheStats
}

type cacheEntry[K Key] struct {
	valid  bool
	left   *node[K]
	right  *node[K]
	result *node[K]
}

func (e *Engine[K]) newOpCache(size int) *opCache[K] {
	return &opCache[K]{engine: e, slots: make([]cacheEntry[K], primeGTE(size))}
}

// index combines the two operands' identities with the golden-ratio mixing
// constant used by the Cache::operator() hash in the C++ engine this
// package's caches are grounded on (original_source/src/ydd.hpp), reduced
// modulo the table size.
func (c *opCache[K]) index(left, right *node[K]) int {
	h := famID(left)
	h ^= famID(right) + 0x9e3779b9 + (h << 6) + (h >> 2)
	return int(h % uint64(len(c.slots)))
}

// lookup returns the cached result for (left, right), if the slot it
// hashes to is still occupied by exactly that pair.
func (c *opCache[K]) lookup(left, right *node[K]) (*node[K], bool) {
	e := &c.slots[c.index(left, right)]
	if e.valid && e.left == left && e.right == right {
		c.stat.Hits++
		return e.result, true
	}
	c.stat.Misses++
	return nil, false
}

// store records the result of op(left, right) at its slot, evicting and
// releasing whatever was there before.
//
// The new entry is retained before the old one is released, not after:
// doing it in the other order would transiently drop an operand's or the
// result's reference count to zero (and forget it from the unique table)
// in the case where the new entry happens to reuse the very same node the
// evicted entry held, which is routine when an operation is idempotent on
// a sub-family. This ordering is the Go analogue of the swap-before-release
// discipline the original engine's cache eviction hazard calls for.
func (c *opCache[K]) store(left, right, result *node[K]) {
	idx := c.index(left, right)
	old := c.slots[idx]

	retain(left)
	retain(right)
	retain(result)
	c.slots[idx] = cacheEntry[K]{valid: true, left: left, right: right, result: result}

	if old.valid {
		c.engine.releaseNode(old.left)
		c.engine.releaseNode(old.right)
		c.engine.releaseNode(old.result)
	}
}

// stats returns a snapshot of this cache's hit/miss counters.
func (c *opCache[K]) stats() CacheStats {
	return c.stat
}
