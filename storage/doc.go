// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - leveldb backed key/value pools
//
// Each pool is a single byte prefix on the keys of one database. Ledger
// operations stage all of their writes in a Transaction and apply them
// with a single atomic batch write, so an operation either changes every
// account it touched or none of them.
package storage
