// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// KeyCount - number of occurrences of key, zero if not present
func (tree *Tree[K]) KeyCount(key K) int {
	p := search(key, tree.root)
	if nil == p {
		return 0
	}
	return p.count
}

func search[K Item[K]](key K, tree *Node[K]) *Node[K] {
	if nil == tree {
		return nil
	}

	switch c := key.Compare(tree.key); {
	case c < 0:
		return search(key, tree.left)
	case c > 0:
		return search(key, tree.right)
	default:
		return tree
	}
}
