// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger

import (
	"github.com/bitmark-inc/sharedledger/derivation"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/record"
	"github.com/bitmark-inc/sharedledger/validation"
	"github.com/bitmark-inc/sharedledger/wire"
)

// accounts: transfer (writable), requester (writable, signer), payer, system program
func (p *Program) createTransferRequest(ctx *ledger.Context, accounts []*ledger.AccountInfo, args *wire.Decoder) error {
	uuid := args.Key()
	topic := args.Text()
	amount := args.Uint64()
	if err := instruction.Finish(args); nil != err {
		return err
	}

	if 4 != len(accounts) {
		return fault.ErrInvalidAccountCount
	}
	transferAccount := accounts[0]
	requester := accounts[1]
	payer := accounts[2]
	if err := checkSystemProgram(accounts[3]); nil != err {
		return err
	}

	if err := validation.CheckTopic(topic); nil != err {
		return err
	}

	address, bump, err := derivation.Derive(ctx.ProgramID(), TransferNamespace, uuid[:])
	if nil != err {
		return err
	}
	if address != transferAccount.Key {
		return fault.ErrDerivedAddressMismatch
	}

	transfer := record.TransferRequest{
		From:   payer.Key,
		To:     requester.Key,
		Uuid:   uuid,
		Amount: amount,
		Topic:  topic,
		Bump:   bump,
	}
	transfer.Events[0] = record.TransactionEvent{
		Timestamp: uint32(ctx.Slot()),
		EventType: record.EventCreation,
	}
	packed, err := transfer.Pack()
	if nil != err {
		return err
	}

	err = ctx.CreateAccount(requester, transferAccount, layout.TransferRequestSize, ctx.ProgramID(),
		[]byte(TransferNamespace), uuid[:], []byte{bump})
	if nil != err {
		return err
	}
	copy(transferAccount.Data, packed)

	p.log.Infof("transfer request: %s  uuid: %s  from: %s  to: %s  amount: %d", transferAccount.Key, uuid, payer.Key, requester.Key, amount)
	return nil
}

// accounts: requester (writable), payer (writable, signer), transfer (writable), system program
func (p *Program) executeTransferRequest(ctx *ledger.Context, accounts []*ledger.AccountInfo, args *wire.Decoder) error {
	uuid := args.Key()
	if err := instruction.Finish(args); nil != err {
		return err
	}

	if 4 != len(accounts) {
		return fault.ErrInvalidAccountCount
	}
	requester := accounts[0]
	payer := accounts[1]
	transferAccount := accounts[2]
	if err := checkSystemProgram(accounts[3]); nil != err {
		return err
	}

	if transferAccount.IsEmpty() {
		return fault.ErrTransferNotFound
	}
	if transferAccount.Owner != ctx.ProgramID() {
		return fault.ErrIllegalOwner
	}
	transfer, err := record.UnpackTransferRequest(transferAccount.Data)
	if nil != err {
		return err
	}

	if transfer.Uuid != uuid {
		return fault.ErrDerivedAddressMismatch
	}
	err = derivation.Verify(transferAccount.Key, ctx.ProgramID(), transfer.Bump, TransferNamespace, transfer.Uuid[:])
	if nil != err {
		return err
	}
	if transfer.From != payer.Key {
		return fault.ErrPayerMismatch
	}
	if transfer.To != requester.Key {
		return fault.ErrRequesterMismatch
	}

	err = ctx.Transfer(payer, requester, transfer.Amount)
	if nil != err {
		return err
	}
	err = ctx.Close(transferAccount, requester)
	if nil != err {
		return err
	}

	p.log.Infof("executed transfer request uuid: %s  amount: %d", uuid, transfer.Amount)
	return nil
}
