// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/countedavl/avl"
	"github.com/bitmark-inc/countedavl/fault"
	"github.com/bitmark-inc/countedavl/multiset"
)

func TestListShort(t *testing.T) {
	addList := []avl.StringKey{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doOrder(t, addList)
}

// lots of duplicates must only change counts, never the node total
func TestListDuplicates(t *testing.T) {
	addList := []avl.StringKey{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doOrder(t, addList)

	tree := avl.New[avl.StringKey]()
	for _, key := range addList {
		tree.Add(key)
	}
	assert.Equal(t, 17, tree.KeyCount("1042"), "wrong duplicate count")
	assert.Equal(t, 2, tree.KeyCount("1720"), "wrong duplicate count")
	assert.Equal(t, 20, tree.Nodes(), "duplicates created nodes")
	assert.Equal(t, len(addList), tree.Count(), "wrong total")
}

func TestListLong(t *testing.T) {
	addList := []avl.StringKey{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"3126", "2948", "8242", "5027", "8892",
		"3126", "1323", "1101", "4526", "5177",
	}
	doList(t, addList)
	doOrder(t, addList)
}

// insert everything, then for each prefix length remove one
// occurrence of each item in the prefix, then the rest
func doList(t *testing.T, addList []avl.StringKey) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.New[avl.StringKey]()
		for _, key := range addList {
			tree.Add(key)
		}

		if !tree.IsAVL() {
			dumpTree(t, tree)
			t.Fatal("add: inconsistent tree")
		}
		if len(addList) != tree.Count() {
			t.Fatalf("add: count: %d  expected: %d", tree.Count(), len(addList))
		}

		for j, key := range addList[:i] {
			if n := tree.Delete(key, false); 1 != n {
				t.Fatalf("delete: %q removed: %d  expected: 1", key, n)
			}
			if !tree.IsAVL() {
				dumpTree(t, tree)
				t.Fatalf("delete: inconsistent tree after: %q", key)
			}
			if len(addList)-j-1 != tree.Count() {
				t.Fatalf("delete: count: %d  expected: %d", tree.Count(), len(addList)-j-1)
			}
		}

		for _, key := range addList[i:] {
			if n := tree.Delete(key, false); 1 != n {
				t.Fatalf("delete remainder: %q removed: %d  expected: 1", key, n)
			}
		}

		if !tree.IsEmpty() {
			dumpTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() || 0 != tree.Nodes() {
			t.Fatalf("remainder: count: %d  nodes: %d", tree.Count(), tree.Nodes())
		}
	}
}

// Min and Max must track the sorted distinct keys as the lowest keys
// are removed
func doOrder(t *testing.T, addList []avl.StringKey) {

	unique := make(map[avl.StringKey]int)
	tree := avl.New[avl.StringKey]()
	for _, key := range addList {
		unique[key] += 1
		tree.Add(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, string(key))
	}
	sort.Strings(expected)

	if len(expected) != tree.Nodes() {
		t.Fatalf("expected: %d nodes, but tree has: %d", len(expected), tree.Nodes())
	}

	for i, key := range expected {
		lo, err := tree.Min()
		require.NoError(t, err, "min")
		hi, err := tree.Max()
		require.NoError(t, err, "max")

		if avl.StringKey(key) != lo {
			t.Fatalf("[%d]: min: %q  expected: %q", i, lo, key)
		}
		if avl.StringKey(expected[len(expected)-1]) != hi {
			t.Fatalf("[%d]: max: %q  expected: %q", i, hi, expected[len(expected)-1])
		}

		n := tree.Delete(avl.StringKey(key), true)
		if unique[avl.StringKey(key)] != n {
			t.Fatalf("[%d]: delete all: %q removed: %d  expected: %d", i, key, n, unique[avl.StringKey(key)])
		}
		if !tree.IsAVL() {
			dumpTree(t, tree)
			t.Fatalf("[%d]: inconsistent tree", i)
		}
	}

	assert.True(t, tree.IsEmpty(), "tree not empty")
	assert.True(t, tree.CheckCounts(), "counts inconsistent")
}

func randomInt(t *testing.T, n int) int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		t.Fatalf("rand failed: %s", err)
	}
	return int(binary.BigEndian.Uint32(b) % uint32(n))
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 64)
	randomTree(t, 3400, 1000)
	randomTree(t, 5467, 10000)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 300)
	}
}

// run random operations against the tree and a reference multiset
func randomTree(t *testing.T, operations int, keyRange int) {

	tree := avl.New[avl.IntKey]()
	ref := multiset.New(func(a avl.IntKey, b avl.IntKey) bool {
		return a < b
	})

	for i := 0; i < operations; i += 1 {
		key := avl.IntKey(randomInt(t, keyRange))

		switch randomInt(t, 5) {
		case 0, 1, 2:
			amount := randomInt(t, 4)
			require.NoError(t, tree.Insert(key, amount), "insert")
			ref.Add(key, amount)
		case 3:
			assert.Equal(t, ref.Remove(key, false), tree.Delete(key, false), "delete one: %d", key)
		default:
			assert.Equal(t, ref.Remove(key, true), tree.Delete(key, true), "delete all: %d", key)
		}

		if !tree.IsAVL() {
			dumpTree(t, tree)
			t.Fatalf("inconsistent tree after operation: %d", i)
		}
		require.Equal(t, ref.Total(), tree.Count(), "total count")
		require.Equal(t, ref.Count(key), tree.KeyCount(key), "key count: %d", key)

		lo, err := tree.Min()
		if rlo, ok := ref.Min(); ok {
			require.NoError(t, err, "min")
			require.Equal(t, rlo, lo, "min")
		} else {
			require.Equal(t, fault.ErrEmptyCollection, err, "min of empty tree")
		}
		hi, err := tree.Max()
		if rhi, ok := ref.Max(); ok {
			require.NoError(t, err, "max")
			require.Equal(t, rhi, hi, "max")
		} else {
			require.Equal(t, fault.ErrEmptyCollection, err, "max of empty tree")
		}
	}

	for k := 0; k < keyRange; k += 1 {
		key := avl.IntKey(k)
		if ref.Count(key) != tree.KeyCount(key) {
			t.Fatalf("key: %d  count: %d  expected: %d", k, tree.KeyCount(key), ref.Count(key))
		}
	}
	require.Equal(t, ref.Len(), tree.Nodes(), "distinct keys")
	require.True(t, tree.CheckCounts(), "counts inconsistent")

	// drain
	for _, key := range ref.Keys() {
		tree.Delete(key, true)
		if !tree.IsAVL() {
			dumpTree(t, tree)
			t.Fatalf("inconsistent tree draining: %d", key)
		}
	}
	assert.True(t, tree.IsEmpty(), "tree not empty after drain")
	assert.Equal(t, 0, tree.Count(), "count not zero after drain")
}

func dumpTree[K avl.Item[K]](t *testing.T, tree *avl.Tree[K]) {
	var b strings.Builder
	depth := tree.Print(&b)
	t.Logf("depth: %d\n%s", depth, b.String())
}
