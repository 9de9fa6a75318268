// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import "sort"

// Symbol is a single literal in a Pattern: a key together with whether it
// must be present (Enabled) or absent in a matching subset. Grounded on
// original_source/ydd/pattern.py's Symbol.
type Symbol[K Key] struct {
	Value   K
	Enabled bool
}

// Minterm is a conjunction of Symbols: a subset matches it when, for every
// Symbol in the minterm, the subset contains Value iff Enabled is true.
type Minterm[K Key] []Symbol[K]

func (m Minterm[K]) sorted() Minterm[K] {
	out := make(Minterm[K], len(m))
	copy(out, m)
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Pattern is a disjunction of Minterms: a subset matches the Pattern when it
// matches at least one of its Minterms. Grounded on
// original_source/ydd/pattern.py's Pattern.
type Pattern[K Key] struct {
	Minterms []Minterm[K]
}

// NewPattern builds a Pattern out of the given minterms.
func NewPattern[K Key](minterms ...Minterm[K]) Pattern[K] {
	return Pattern[K]{Minterms: minterms}
}
