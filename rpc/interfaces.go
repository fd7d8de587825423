// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
)

// Host - the ledger as seen by the services
type Host interface {
	Account(key account.Key) (*ledger.AccountInfo, error)
	ProgramAccounts(programID account.Key, filters ...ledger.Filter) ([]*ledger.AccountInfo, error)
	Execute(tx *instruction.Transaction) (*ledger.Receipt, error)
	Balance(key account.Key) uint64
	Airdrop(key account.Key, amount uint64) (uint64, error)
	Chain() string
	Slot() uint64
	Rent() ledger.Rent
}

// Notifier - contact verification and payer notification
type Notifier interface {
	Verify(owner account.Key, salt string, email string) error
	HasContact(owner account.Key) bool
	Notify(uuid account.Key) error
}
