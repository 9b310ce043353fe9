// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/countedavl/fault"
)

// Insert - add amount occurrences of key to the tree
//
// a zero amount does nothing, a negative amount is rejected before
// the tree is touched
func (tree *Tree[K]) Insert(key K, amount int) error {
	if amount < 0 {
		return fault.ErrNegativeAmount
	}
	tree.root = tree.insert(key, amount, tree.root)
	tree.count += amount
	return nil
}

// Add - add a single occurrence of key
func (tree *Tree[K]) Add(key K) {
	tree.root = tree.insert(key, 1, tree.root)
	tree.count += 1
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree[K]) insert(key K, amount int, p *Node[K]) *Node[K] {
	if 0 == amount {
		return p
	}
	if nil == p { // insert new node
		return tree.newNode(key, amount)
	}

	switch c := key.Compare(p.key); {
	case c < 0:
		p.left = tree.insert(key, amount, p.left)
	case c > 0:
		p.right = tree.insert(key, amount, p.right)
	default:
		// only the count changes so the shape is unaffected
		p.count += amount
		return p
	}
	p.fixHeight()
	return rebalance(p)
}
