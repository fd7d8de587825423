// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/chain"
	"github.com/bitmark-inc/sharedledger/fixtures"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/sharedledger"
	"github.com/bitmark-inc/sharedledger/storage"
)

const databaseFileName = "test.leveldb"

const (
	requesterFunds = 10000000
	payerFunds     = 5000
)

var (
	requester = fixtures.PrivateKey(1)
	payer     = fixtures.PrivateKey(2)
	stranger  = fixtures.PrivateKey(3)
	uuidU     = fixtures.Key(0x42)
)

func setup(t *testing.T) *ledger.Ledger {
	fixtures.SetupTestLogger()
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	l, err := ledger.New(chain.Testing, ledger.DefaultRent())
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	err = l.Register(sharedledger.ProgramID, sharedledger.New())
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	fund(t, l, requester.Key(), requesterFunds)
	fund(t, l, payer.Key(), payerFunds)
	fund(t, l, stranger.Key(), payerFunds)
	return l
}

func teardown() {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	fixtures.TeardownTestLogger()
}

func fund(t *testing.T, l *ledger.Ledger, k account.Key, amount uint64) {
	if _, err := l.Airdrop(k, amount); nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
}

func execute(t *testing.T, l *ledger.Ledger, in *instruction.Instruction, keys ...*account.PrivateKey) (*ledger.Receipt, error) {
	in.RecentSlot = l.Slot()
	tx := instruction.NewTransaction(in)
	if err := tx.Sign(keys...); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return l.Execute(tx)
}

func createRequest(t *testing.T, l *ledger.Ledger, uuid account.Key, topic string, amount uint64) (*ledger.Receipt, error) {
	in, err := sharedledger.NewCreateTransferRequest(requester.Key(), payer.Key(), uuid, topic, amount)
	if nil != err {
		t.Fatalf("instruction error: %s", err)
	}
	return execute(t, l, in, requester)
}

func executeRequest(t *testing.T, l *ledger.Ledger, to account.Key, signer *account.PrivateKey, uuid account.Key) (*ledger.Receipt, error) {
	in, err := sharedledger.NewExecuteTransferRequest(to, signer.Key(), uuid)
	if nil != err {
		t.Fatalf("instruction error: %s", err)
	}
	return execute(t, l, in, signer)
}
