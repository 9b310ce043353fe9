// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/countedavl/fault"
)

// Min - return the lowest key in the tree
func (tree *Tree[K]) Min() (K, error) {
	p := tree.root.first()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyCollection
	}
	return p.key, nil
}

// Max - return the highest key in the tree
func (tree *Tree[K]) Max() (K, error) {
	p := tree.root.last()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyCollection
	}
	return p.key, nil
}

// internal: lowest node in a sub-tree
func (tree *Node[K]) first() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// internal: highest node in a sub-tree
func (tree *Node[K]) last() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}
