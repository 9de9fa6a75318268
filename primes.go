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

import "math/big"

// primeGTE returns the smallest prime >= src, used to size an operation
// cache's table so its direct-mapped index (hash % size) spreads entries
// evenly. Adapted from the rudd library's bdd_prime_gte; the lte variant
// and the buddy-specific callers are dropped since this engine's caches are
// sized once at construction and never resized by a node-count ratio.

func hasFactor(src, n int) bool {
	return src != n && src%n == 0
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

func primeGTE(src int) int {
	if src < 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs below 2^64.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}
