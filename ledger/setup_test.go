// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/binary"
	"os"
	"sync/atomic"
	"testing"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/fixtures"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/storage"
)

const databaseFileName = "test.leveldb"

var testProgramID = fixtures.Key(0xee)

func setup(t *testing.T, chainName string) *ledger.Ledger {
	fixtures.SetupTestLogger()
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	l, err := ledger.New(chainName, ledger.DefaultRent())
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	err = l.Register(testProgramID, &testProgram{})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	return l
}

func teardown() {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	fixtures.TeardownTestLogger()
}

// operations of the test program, selected by the first data byte
const (
	opCreate   = iota // accounts: payer, target
	opTransfer        // accounts: from, to
	opSteal           // accounts: victim, thief
	opScribble        // accounts: any
	opMint            // accounts: any
	opFailLate        // accounts: payer, target
	opClose           // accounts: target, destination
)

type testProgram struct{}

func (p *testProgram) Process(ctx *ledger.Context, accounts []*ledger.AccountInfo, data []byte) error {
	if len(data) < 9 || len(accounts) < 1 {
		return fault.ErrInvalidInstructionData
	}
	amount := binary.LittleEndian.Uint64(data[1:])

	switch data[0] {
	case opCreate:
		return ctx.CreateAccount(accounts[0], accounts[1], 10, ctx.ProgramID())
	case opTransfer:
		return ctx.Transfer(accounts[0], accounts[1], amount)
	case opSteal:
		accounts[0].Lamports -= amount
		accounts[1].Lamports += amount
		return nil
	case opScribble:
		accounts[0].Data = append(accounts[0].Data, 0x55)
		return nil
	case opMint:
		accounts[0].Lamports += amount
		return nil
	case opFailLate:
		err := ctx.CreateAccount(accounts[0], accounts[1], 10, ctx.ProgramID())
		if nil != err {
			return err
		}
		return fault.ErrInsufficientFunds
	case opClose:
		return ctx.Close(accounts[0], accounts[1])
	default:
		return fault.ErrUnknownInstruction
	}
}

func meta(k account.Key, signer bool, writable bool) instruction.AccountMeta {
	return instruction.AccountMeta{Key: k, IsSigner: signer, IsWritable: writable}
}

// makes every signed transaction distinct, the program ignores it
var sequence uint64

func signed(t *testing.T, op byte, amount uint64, metas []instruction.AccountMeta, keys ...*account.PrivateKey) *instruction.Transaction {
	data := make([]byte, 17)
	data[0] = op
	binary.LittleEndian.PutUint64(data[1:], amount)
	binary.LittleEndian.PutUint64(data[9:], atomic.AddUint64(&sequence, 1))

	tx := instruction.NewTransaction(&instruction.Instruction{
		ProgramID: testProgramID,
		Accounts:  metas,
		Data:      data,
	})
	if err := tx.Sign(keys...); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return tx
}

func fund(t *testing.T, l *ledger.Ledger, k account.Key, amount uint64) {
	if _, err := l.Airdrop(k, amount); nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
}
