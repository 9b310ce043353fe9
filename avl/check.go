// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/countedavl/fault"
)

// returned as the height of a sub-tree that failed a check
const invalidHeight = -1

// IsAVL - check the whole tree for ordering, heights and balance
func (tree *Tree[K]) IsAVL() bool {
	return IsAVL(tree.root)
}

// IsAVL - check any node graph for ordering, heights and balance
//
// nothing is assumed about the graph: all heights are recomputed
// from the leaves and compared with the cached values
func IsAVL[K Item[K]](root *Node[K]) bool {
	_, err := CheckAVL(root)
	return nil == err
}

// CheckAVL - as IsAVL but returns the true height of the graph or
// an error describing the first violation found
func CheckAVL[K Item[K]](root *Node[K]) (int, error) {
	return check(root, nil, nil)
}

// internal: keys of p must lie strictly between lower and upper,
// nil bounds are unlimited
//
// the strict bounds also reject a graph with a cycle, since a node
// revisited below itself cannot be strictly inside its own range
func check[K Item[K]](p *Node[K], lower *K, upper *K) (int, error) {
	if nil == p {
		return 0, nil
	}

	if nil != lower && p.key.Compare(*lower) <= 0 {
		return invalidHeight, fault.ErrKeyOutOfOrder
	}
	if nil != upper && p.key.Compare(*upper) >= 0 {
		return invalidHeight, fault.ErrKeyOutOfOrder
	}
	if p.count < 1 {
		return invalidHeight, fault.ErrInvalidCount
	}

	key := p.key
	lh, err := check(p.left, lower, &key)
	if nil != err {
		return invalidHeight, err
	}
	rh, err := check(p.right, &key, upper)
	if nil != err {
		return invalidHeight, err
	}

	if nil != p.left && p.left.height != lh {
		return invalidHeight, fault.ErrStaleHeight
	}
	if nil != p.right && p.right.height != rh {
		return invalidHeight, fault.ErrStaleHeight
	}

	if lh-rh > 1 || rh-lh > 1 {
		return invalidHeight, fault.ErrUnbalanced
	}

	h := 1 + max(lh, rh)
	if p.height != h {
		return invalidHeight, fault.ErrHeightMismatch
	}
	return h, nil
}

// CheckCounts - verify the running totals against a full traversal
func (tree *Tree[K]) CheckCounts() bool {
	total, nodes := sumCounts(tree.root)
	return total == tree.count && nodes == tree.nodes
}

// internal: sum of counts and number of nodes in a sub-tree
func sumCounts[K Item[K]](p *Node[K]) (int, int) {
	if nil == p {
		return 0, 0
	}
	lt, ln := sumCounts(p.left)
	rt, rn := sumCounts(p.right)
	return lt + rt + p.count, ln + rn + 1
}
