// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/countedavl/fault"
)

// height of a sub-tree, nil is zero
func height[K Item[K]](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node[K]) fixHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// left height minus right height, nil is zero
func balanceFactor[K Item[K]](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// the right child becomes the root of this sub-tree
func rotateLeft[K Item[K]](p *Node[K]) *Node[K] {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("avl: rotate left at key: %v without right child", p.key)
	}
	p.right = p1.left
	p1.left = p

	// child first, then the new parent
	p.fixHeight()
	p1.fixHeight()

	return p1
}

// the left child becomes the root of this sub-tree
func rotateRight[K Item[K]](p *Node[K]) *Node[K] {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("avl: rotate right at key: %v without left child", p.key)
	}
	p.left = p1.right
	p1.right = p

	p.fixHeight()
	p1.fixHeight()

	return p1
}

// restore balance at a node whose children are balanced and differ
// in height by at most two, returns the new sub-tree root
func rebalance[K Item[K]](p *Node[K]) *Node[K] {
	bf := balanceFactor(p)
	switch {
	case bf > 1: // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case bf < -1: // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	default:
		return p
	}
}
