// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multiset - a plain map based multiset
//
// used as the reference when cross-checking the balanced tree
package multiset

import (
	"sort"
)

// Multiset - key to number of occurrences, absent keys have none
type Multiset[K comparable] struct {
	counts map[K]int
	total  int
	less   func(a K, b K) bool
}

// New - create an empty multiset ordered by less
func New[K comparable](less func(a K, b K) bool) *Multiset[K] {
	return &Multiset[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

// Add - add n occurrences of k, n ≤ 0 does nothing
func (m *Multiset[K]) Add(k K, n int) {
	if n <= 0 {
		return
	}
	m.counts[k] += n
	m.total += n
}

// Remove - remove one or all occurrences of k, returns the number removed
func (m *Multiset[K]) Remove(k K, all bool) int {
	n, ok := m.counts[k]
	if !ok {
		return 0
	}
	if !all && n > 1 {
		m.counts[k] = n - 1
		m.total -= 1
		return 1
	}
	delete(m.counts, k)
	m.total -= n
	return n
}

// Count - occurrences of k
func (m *Multiset[K]) Count(k K) int {
	return m.counts[k]
}

// Total - all occurrences of all keys
func (m *Multiset[K]) Total() int {
	return m.total
}

// Len - number of distinct keys
func (m *Multiset[K]) Len() int {
	return len(m.counts)
}

// Min - lowest key, false if empty
func (m *Multiset[K]) Min() (K, bool) {
	var result K
	found := false
	for k := range m.counts {
		if !found || m.less(k, result) {
			result = k
			found = true
		}
	}
	return result, found
}

// Max - highest key, false if empty
func (m *Multiset[K]) Max() (K, bool) {
	var result K
	found := false
	for k := range m.counts {
		if !found || m.less(result, k) {
			result = k
			found = true
		}
	}
	return result, found
}

// Keys - all distinct keys in ascending order
func (m *Multiset[K]) Keys() []K {
	keys := make([]K, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return m.less(keys[i], keys[j])
	})
	return keys
}
