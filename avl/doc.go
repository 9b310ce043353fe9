// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that stores each distinct key
// once together with the number of times it was inserted
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree shape depends only on the set of distinct keys.  Adding
// or removing a single occurrence of a key that is already present
// with other occurrences only changes a counter and never rotates.
//
// Lookup, insertion and deletion are all O(log n) in the number of
// distinct keys.  IsAVL re-derives every height from the raw node
// fields so it can be used as an oracle against the mutation code.
package avl
