// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - single node host for ledger programs
//
// The host resolves the accounts named by an instruction, holds an
// exclusive lock on every writable account (shared for read-only ones)
// for the whole call, runs the program against an in-memory copy and
// then either writes every changed account in one batch or discards
// all of them.
//
// Runtime rules enforced after every call:
//
//   - read-only accounts are unchanged
//   - only the owning program changes data or owner, except when the
//     system allocation assigns a fresh account
//   - balances only decrease through a signed system transfer, or when
//     the calling program owns the account
//   - the sum of balances is unchanged
package ledger
