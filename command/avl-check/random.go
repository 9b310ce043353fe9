// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countedavl/avl"
	"github.com/bitmark-inc/countedavl/fault"
	"github.com/bitmark-inc/countedavl/multiset"
)

// percentage of operations that try a negative insert
const negativePercent = 5

// one round of random operations against tree and reference
type round struct {
	log  *logger.L
	conf *Configuration
	rng  *rand.Rand
	tree *intTree
	ref  *multiset.Multiset[avl.IntKey]
}

func keyLess(a avl.IntKey, b avl.IntKey) bool {
	return a < b
}

// run all configured rounds, each from its own seed
func runRounds(conf *Configuration, log *logger.L) error {
	for i := 0; i < conf.Rounds; i += 1 {
		seed := conf.Seed + int64(i)
		log.Infof("round: %d  seed: %d  operations: %d", i, seed, conf.Operations)

		r := newRound(conf, log, seed)
		if err := r.run(); nil != err {
			log.Errorf("round: %d  seed: %d  failed: %s", i, seed, err)
			r.dump()
			return fault.ErrCheckFailed
		}
		log.Infof("round: %d  passed", i)
	}
	return nil
}

func newRound(conf *Configuration, log *logger.L, seed int64) *round {
	return &round{
		log:  log,
		conf: conf,
		rng:  rand.New(rand.NewSource(seed)),
		tree: avl.New[avl.IntKey](),
		ref:  multiset.New(keyLess),
	}
}

func (r *round) run() error {
	for i := 1; i <= r.conf.Operations; i += 1 {
		key, err := r.step()
		if nil != err {
			return fmt.Errorf("operation: %d: %s", i, err)
		}
		if 0 == i%r.conf.CheckEvery {
			if err := r.verify(key); nil != err {
				return fmt.Errorf("operation: %d: %s", i, err)
			}
		}
	}

	if err := r.verifyAll(); nil != err {
		return err
	}
	return r.drain()
}

// apply one random operation to both sides, returns the key used
func (r *round) step() (avl.IntKey, error) {
	key := avl.IntKey(r.rng.Intn(r.conf.KeyRange))
	op := r.rng.Intn(100)

	switch {
	case op < negativePercent:
		before := r.tree.Count()
		if err := r.tree.Insert(key, -1-r.rng.Intn(3)); fault.ErrNegativeAmount != err {
			return key, fmt.Errorf("negative insert: %d: error: %v", key, err)
		}
		if before != r.tree.Count() {
			return key, fmt.Errorf("negative insert: %d changed count", key)
		}
		r.log.Tracef("negative insert: %d", key)

	case op < 55:
		amount := r.rng.Intn(r.conf.MaxAmount + 1)
		if err := r.tree.Insert(key, amount); nil != err {
			return key, err
		}
		r.ref.Add(key, amount)
		r.log.Tracef("insert: %d ×%d", key, amount)

	default:
		all := r.rng.Intn(100) < r.conf.DeleteAllPercent
		expected := r.ref.Remove(key, all)
		if n := r.tree.Delete(key, all); expected != n {
			return key, fmt.Errorf("delete: %d  all: %v  removed: %d  expected: %d", key, all, n, expected)
		}
		r.log.Tracef("delete: %d  all: %v", key, all)
	}
	return key, nil
}

// structure, totals, touched key and both extremes
func (r *round) verify(key avl.IntKey) error {
	if _, err := avl.CheckAVL(r.tree.Root()); nil != err {
		return err
	}
	if r.ref.Total() != r.tree.Count() {
		return fmt.Errorf("count: %d  expected: %d", r.tree.Count(), r.ref.Total())
	}
	if r.ref.Count(key) != r.tree.KeyCount(key) {
		return fmt.Errorf("key: %d  count: %d  expected: %d", key, r.tree.KeyCount(key), r.ref.Count(key))
	}

	lo, err := r.tree.Min()
	if expected, ok := r.ref.Min(); ok {
		if nil != err || expected != lo {
			return fmt.Errorf("min: %d  error: %v  expected: %d", lo, err, expected)
		}
	} else if fault.ErrEmptyCollection != err {
		return fmt.Errorf("min of empty tree: error: %v", err)
	}

	hi, err := r.tree.Max()
	if expected, ok := r.ref.Max(); ok {
		if nil != err || expected != hi {
			return fmt.Errorf("max: %d  error: %v  expected: %d", hi, err, expected)
		}
	} else if fault.ErrEmptyCollection != err {
		return fmt.Errorf("max of empty tree: error: %v", err)
	}
	return nil
}

// every key in range
func (r *round) verifyAll() error {
	for k := 0; k < r.conf.KeyRange; k += 1 {
		key := avl.IntKey(k)
		if r.ref.Count(key) != r.tree.KeyCount(key) {
			return fmt.Errorf("final: key: %d  count: %d  expected: %d", key, r.tree.KeyCount(key), r.ref.Count(key))
		}
	}
	if r.ref.Len() != r.tree.Nodes() {
		return fmt.Errorf("final: nodes: %d  expected: %d", r.tree.Nodes(), r.ref.Len())
	}
	if !r.tree.CheckCounts() {
		return fmt.Errorf("final: running totals differ from the nodes")
	}
	r.log.Debugf("final: count: %d  nodes: %d  height: %d", r.tree.Count(), r.tree.Nodes(), r.tree.Height())
	return nil
}

// remove everything, checking as the tree shrinks
func (r *round) drain() error {
	for _, key := range r.ref.Keys() {
		expected := r.ref.Remove(key, true)
		if n := r.tree.Delete(key, true); expected != n {
			return fmt.Errorf("drain: %d  removed: %d  expected: %d", key, n, expected)
		}
		if err := r.verify(key); nil != err {
			return fmt.Errorf("drain: %s", err)
		}
	}
	if !r.tree.IsEmpty() || 0 != r.tree.Count() {
		return fmt.Errorf("drain: tree not empty: count: %d", r.tree.Count())
	}
	return nil
}

// write the failing tree to the log
func (r *round) dump() {
	var b strings.Builder
	depth := r.tree.Print(&b)
	r.log.Debugf("tree depth: %d", depth)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		r.log.Debug(line)
	}
}
