// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[K Item[K]] struct {
	root      *Node[K]
	count     int      // sum of all node counts
	nodes     int      // number of distinct keys
	pool      *Node[K] // linked list of reclaimed nodes
	freeNodes int      // number of nodes in the pool
}

// New - create an initially empty tree
func New[K Item[K]]() *Tree[K] {
	return &Tree[K]{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of elements in the tree including duplicates
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Nodes - number of distinct keys in the tree
func (tree *Tree[K]) Nodes() int {
	return tree.nodes
}

// Height - height of the tree, zero when empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}
