// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

// Option configures an Engine at construction time, in the functional-options
// style used throughout this package's ancestor (see the rudd library's
// config.go: Nodesize, Cachesize, Varnum, ...).
type Option func(*config)

type config struct {
	unionCacheSize        int
	intersectionCacheSize int
	differenceCacheSize   int
	symdiffCacheSize      int
}

const defaultCacheSize = 512

func defaultConfig() config {
	return config{
		unionCacheSize:        defaultCacheSize,
		intersectionCacheSize: defaultCacheSize,
		differenceCacheSize:   defaultCacheSize,
		symdiffCacheSize:      defaultCacheSize,
	}
}

func (c config) validate() error {
	sizes := map[string]int{
		"union":                c.unionCacheSize,
		"intersection":         c.intersectionCacheSize,
		"difference":           c.differenceCacheSize,
		"symmetric-difference": c.symdiffCacheSize,
	}
	for name, size := range sizes {
		if size < 1 {
			return errInvalidCacheSize(name, size)
		}
	}
	return nil
}

// CacheSize sets the size of every operation cache (union, intersection,
// difference, symmetric difference) to the same value; each cache's slot
// count is that value rounded up to the next prime. Call it
// once, before any operation-specific override, to scale all caches together.
// Update and Filter memoize with a fresh map scoped to each call instead of a
// persistent per-engine cache, so they have no size to configure here and are
// unaffected by this option.
func CacheSize(n int) Option {
	return func(c *config) {
		c.unionCacheSize = n
		c.intersectionCacheSize = n
		c.differenceCacheSize = n
		c.symdiffCacheSize = n
	}
}

// UnionCacheSize overrides the union operation's cache size.
func UnionCacheSize(n int) Option { return func(c *config) { c.unionCacheSize = n } }

// IntersectionCacheSize overrides the intersection operation's cache size.
func IntersectionCacheSize(n int) Option { return func(c *config) { c.intersectionCacheSize = n } }

// DifferenceCacheSize overrides the difference operation's cache size.
func DifferenceCacheSize(n int) Option { return func(c *config) { c.differenceCacheSize = n } }

// SymmetricDifferenceCacheSize overrides the symmetric difference
// operation's cache size.
func SymmetricDifferenceCacheSize(n int) Option {
	return func(c *config) { c.symdiffCacheSize = n }
}
