// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger

import (
	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/derivation"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/record"
)

// TransferAddress - derived address and bump of a transfer request
func TransferAddress(uuid account.Key) (account.Key, uint8, error) {
	return derivation.Derive(ProgramID, TransferNamespace, uuid[:])
}

// NewCreateNotificationCredential - instruction signed by author and by
// the fresh credential key
func NewCreateNotificationCredential(author account.Key, credential account.Key, content record.ContentType, hash string) *instruction.Instruction {
	args := instruction.NewArguments(createNotificationCredentialSelector)
	args.Uint8(uint8(content))
	args.Text(hash)

	return &instruction.Instruction{
		ProgramID: ProgramID,
		Accounts: []instruction.AccountMeta{
			{Key: author, IsSigner: true, IsWritable: true},
			{Key: credential, IsSigner: true, IsWritable: true},
			{Key: ledger.SystemProgramID},
		},
		Data: args.Bytes(),
	}
}

// NewCreateTransferRequest - instruction signed by the requester
func NewCreateTransferRequest(requester account.Key, payer account.Key, uuid account.Key, topic string, amount uint64) (*instruction.Instruction, error) {
	address, _, err := TransferAddress(uuid)
	if nil != err {
		return nil, err
	}

	args := instruction.NewArguments(createTransferRequestSelector)
	args.Key(uuid)
	args.Text(topic)
	args.Uint64(amount)

	return &instruction.Instruction{
		ProgramID: ProgramID,
		Accounts: []instruction.AccountMeta{
			{Key: address, IsWritable: true},
			{Key: requester, IsSigner: true, IsWritable: true},
			{Key: payer},
			{Key: ledger.SystemProgramID},
		},
		Data: args.Bytes(),
	}, nil
}

// NewExecuteTransferRequest - instruction signed by the payer
func NewExecuteTransferRequest(requester account.Key, payer account.Key, uuid account.Key) (*instruction.Instruction, error) {
	address, _, err := TransferAddress(uuid)
	if nil != err {
		return nil, err
	}

	args := instruction.NewArguments(executeTransferRequestSelector)
	args.Key(uuid)

	return &instruction.Instruction{
		ProgramID: ProgramID,
		Accounts: []instruction.AccountMeta{
			{Key: requester, IsWritable: true},
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: address, IsWritable: true},
			{Key: ledger.SystemProgramID},
		},
		Data: args.Bytes(),
	}, nil
}
