// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// IntKey - an integer key
type IntKey int

// Compare - numeric ordering
func (i IntKey) Compare(j IntKey) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// StringKey - a string key
type StringKey string

// Compare - byte-wise lexical ordering
func (s StringKey) Compare(t StringKey) int {
	return strings.Compare(string(s), string(t))
}
