// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import "fmt"

// CacheStats reports the hit/miss counters of a single operation
// cache, in the spirit of the rudd library's cacheStat.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 if the cache has never been
// consulted.
func (c CacheStats) HitRate() float64 {
	total := c.Hits + c.Misses
	if total == 0 {
		return 0
	}
	return float64(c.Hits) / float64(total)
}

func (c CacheStats) String() string {
	return fmt.Sprintf("hits=%d misses=%d hitrate=%.2f", c.Hits, c.Misses, c.HitRate())
}

// Stats is a snapshot of an Engine's bookkeeping counters, analogous to what
// hudd.stats() prints for the rudd library's bdd kernel.
type Stats struct {
	UniqueTableSize int
	NodesCreated    uint64

	Union               CacheStats
	Intersection        CacheStats
	Difference          CacheStats
	SymmetricDifference CacheStats
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"unique=%d created=%d | union[%s] intersection[%s] difference[%s] symdiff[%s]",
		s.UniqueTableSize, s.NodesCreated,
		s.Union, s.Intersection, s.Difference, s.SymmetricDifference,
	)
}
