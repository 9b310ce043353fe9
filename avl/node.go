// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/countedavl/fault"
)

// Item - a key must implement the Compare function
//
// x.Compare(y) is negative when x < y, zero when x == y and
// positive when x > y
type Item[K any] interface {
	Compare(K) int
}

// Node - a distinct key in the tree
type Node[K Item[K]] struct {
	left   *Node[K] // left sub-tree
	right  *Node[K] // right sub-tree, also the free list link
	key    K        // key part for ordering
	count  int      // number of occurrences of key
	height int      // height of this sub-tree, leaf = 1
}

// NewNode - create a detached node with the given fields
//
// nothing is validated so that any graph can be assembled and
// passed to IsAVL
func NewNode[K Item[K]](key K, count int, height int, left *Node[K], right *Node[K]) *Node[K] {
	return &Node[K]{
		left:   left,
		right:  right,
		key:    key,
		count:  count,
		height: height,
	}
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Count - number of occurrences of the key
func (p *Node[K]) Count() int {
	return p.count
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K]) Height() int {
	return height(p)
}

// Left - left sub-tree or nil
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree[K]) newNode(key K, count int) *Node[K] {
	tree.nodes += 1
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			fault.Panicf("avl: pool corrupt: %d free nodes but empty list", tree.freeNodes)
		}
		return &Node[K]{
			key:    key,
			count:  count,
			height: 1,
		}
	}
	tree.pool = p.right
	tree.freeNodes -= 1

	p.key = key
	p.count = count
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K]) freeNode(p *Node[K]) {
	var zero K

	tree.nodes -= 1

	p.left = nil
	p.right = tree.pool // use as free list pointer
	p.key = zero
	p.count = 0
	p.height = 0

	tree.pool = p
	tree.freeNodes += 1
}
