// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove one occurrence of key, or every occurrence if all
// is set, returns the number of elements removed
//
// deleting a key that is not present is not an error and returns 0
func (tree *Tree[K]) Delete(key K, all bool) int {
	removed := 0
	tree.root, removed = tree.delete(key, all, tree.root)
	tree.count -= removed
	return removed
}

// internal delete routine, returns the new sub-tree root and the
// number of elements removed
func (tree *Tree[K]) delete(key K, all bool, p *Node[K]) (*Node[K], int) {
	if nil == p { // key not in tree
		return nil, 0
	}

	removed := 0
	switch c := key.Compare(p.key); {
	case c < 0:
		p.left, removed = tree.delete(key, all, p.left)
	case c > 0:
		p.right, removed = tree.delete(key, all, p.right)
	default: // found
		if p.count > 1 && !all {
			p.count -= 1
			return p, 1
		}
		removed = p.count

		if nil == p.left {
			r := p.right
			tree.freeNode(p)
			return r, removed
		}
		if nil == p.right {
			l := p.left
			tree.freeNode(p)
			return l, removed
		}

		// two children: take over the in-order successor and then
		// remove it from the right sub-tree, it is unique there so
		// the whole node goes
		s := p.right.first()
		p.key = s.key
		p.count = s.count
		p.right, _ = tree.delete(p.key, true, p.right)
	}
	p.fixHeight()
	return rebalance(p), removed
}
