// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-check - exercise the counted AVL tree
//
// First a fixed set of boundary scenarios is run (the four rotation
// shapes, bulk insert, absent deletes, empty tree and negative amount
// errors).  Then rounds of random inserts and deletes are applied to
// the tree and to a plain map multiset and the two are compared after
// every step.
//
// The exit status is zero only if every check passes; the first
// failure stops the program with status one.
//
// Example configuration file:
//
//   return {
//       seed = 0,                -- 0 = seed from the clock
//       rounds = 4,
//       operations = 20000,
//       key_range = 256,
//       max_amount = 5,
//       delete_all_percent = 20,
//       check_every = 1,
//       logging = {
//           directory = "log",
//           file = "avl-check.log",
//           size = 1048576,
//           count = 10,
//           levels = {
//               DEFAULT = "info",
//           },
//       },
//   }
package main
