// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countedavl/avl"
	"github.com/bitmark-inc/countedavl/fault"
)

type intTree = avl.Tree[avl.IntKey]

// a fixed check with a known outcome
type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{"left rotation", func() error { return threeKeys(1, 2, 3) }},
	{"right rotation", func() error { return threeKeys(3, 2, 1) }},
	{"left-right rotation", func() error { return threeKeys(3, 1, 2) }},
	{"right-left rotation", func() error { return threeKeys(1, 3, 2) }},
	{"insert amount", insertAmount},
	{"delete absent", deleteAbsent},
	{"zero amount", zeroAmount},
	{"empty min max", emptyMinMax},
	{"negative amount", negativeAmount},
}

// run all scenarios, stop at the first failure
func runScenarios(log *logger.L) error {
	for _, s := range scenarios {
		if err := s.run(); nil != err {
			log.Errorf("scenario: %s  failed: %s", s.name, err)
			return fault.ErrCheckFailed
		}
		log.Infof("scenario: %s  passed", s.name)
	}
	return nil
}

func expect(ok bool, format string, arguments ...interface{}) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, arguments...)
}

// any insertion order of three keys must settle as 1 ← 2 → 3
func threeKeys(keys ...avl.IntKey) error {
	tree := avl.New[avl.IntKey]()
	for _, key := range keys {
		tree.Add(key)
	}

	root := tree.Root()
	if nil == root || nil == root.Left() || nil == root.Right() {
		return fmt.Errorf("insert %v: root must have two children", keys)
	}
	if err := expect(2 == root.Key() && 1 == root.Left().Key() && 3 == root.Right().Key(),
		"insert %v: shape: %v ← %v → %v", keys, root.Left().Key(), root.Key(), root.Right().Key()); nil != err {
		return err
	}
	if err := expect(2 == root.Height() && 1 == root.Left().Height() && 1 == root.Right().Height(),
		"insert %v: heights: %d ← %d → %d", keys, root.Left().Height(), root.Height(), root.Right().Height()); nil != err {
		return err
	}
	return checkTree(tree, 3)
}

func insertAmount() error {
	tree := avl.New[avl.IntKey]()
	if err := tree.Insert(10, 3); nil != err {
		return err
	}
	if err := expect(3 == tree.KeyCount(10), "key count: %d  expected: 3", tree.KeyCount(10)); nil != err {
		return err
	}
	if err := expect(1 == tree.Nodes(), "nodes: %d  expected: 1", tree.Nodes()); nil != err {
		return err
	}
	return checkTree(tree, 3)
}

func deleteAbsent() error {
	tree := avl.New[avl.IntKey]()
	if n := tree.Delete(1, false); 0 != n {
		return fmt.Errorf("empty tree: removed: %d", n)
	}
	if err := checkTree(tree, 0); nil != err {
		return err
	}

	tree.Add(10)
	if n := tree.Delete(1, false); 0 != n {
		return fmt.Errorf("absent key: removed: %d", n)
	}
	if err := expect(1 == tree.KeyCount(10), "key count: %d  expected: 1", tree.KeyCount(10)); nil != err {
		return err
	}
	return checkTree(tree, 1)
}

func zeroAmount() error {
	tree := avl.New[avl.IntKey]()
	for _, key := range []avl.IntKey{4, 2, 6, 1} {
		tree.Add(key)
	}
	before := picture(tree)

	if err := tree.Insert(2, 0); nil != err {
		return err
	}
	if err := tree.Insert(5, 0); nil != err {
		return err
	}
	if err := expect(before == picture(tree), "zero insert changed the tree"); nil != err {
		return err
	}
	return checkTree(tree, 4)
}

func emptyMinMax() error {
	tree := avl.New[avl.IntKey]()
	if _, err := tree.Min(); fault.ErrEmptyCollection != err {
		return fmt.Errorf("min of empty tree: error: %v", err)
	}
	if _, err := tree.Max(); fault.ErrEmptyCollection != err {
		return fmt.Errorf("max of empty tree: error: %v", err)
	}
	if err := expect(tree.IsEmpty(), "tree not empty"); nil != err {
		return err
	}
	return checkTree(tree, 0)
}

func negativeAmount() error {
	tree := avl.New[avl.IntKey]()
	for _, key := range []avl.IntKey{4, 2, 6} {
		tree.Add(key)
	}
	before := picture(tree)

	if err := tree.Insert(2, -1); fault.ErrNegativeAmount != err {
		return fmt.Errorf("negative amount: error: %v", err)
	}
	if err := expect(before == picture(tree), "negative insert changed the tree"); nil != err {
		return err
	}
	return checkTree(tree, 3)
}

// structure and running totals
func checkTree(tree *intTree, count int) error {
	if _, err := avl.CheckAVL(tree.Root()); nil != err {
		return err
	}
	if !tree.CheckCounts() {
		return fmt.Errorf("running totals differ from the nodes")
	}
	return expect(count == tree.Count(), "count: %d  expected: %d", tree.Count(), count)
}

func picture(tree *intTree) string {
	var b strings.Builder
	tree.Print(&b)
	return b.String()
}
