// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sharedledger - the shared ledger program
//
// Records content credentials and escrow-style transfer requests. A
// transfer request lives at an address derived from its uuid; executing
// it moves the amount from payer to requester and closes the record,
// refunding its rent deposit to the requester.
package sharedledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
)

// ProgramIDText - text form of the program id
const ProgramIDText = "27b22Rj4yVNXM1vEdh65LJ2HsfbmWwBeoncMEFd14bhL"

// ProgramID - id under which the program is registered
var ProgramID = mustKey(ProgramIDText)

// TransferNamespace - first seed of every transfer request address
const TransferNamespace = "transfer"

// operation names
const (
	CreateNotificationCredential = "create_notification_credential"
	CreateTransferRequest        = "create_transfer_request"
	ExecuteTransferRequest       = "execute_transfer_request"
)

var (
	createNotificationCredentialSelector = instruction.NewDiscriminator(CreateNotificationCredential)
	createTransferRequestSelector        = instruction.NewDiscriminator(CreateTransferRequest)
	executeTransferRequestSelector       = instruction.NewDiscriminator(ExecuteTransferRequest)
)

// Program - ledger.Program implementation
type Program struct {
	log *logger.L
}

// New - program instance ready to register with a ledger
func New() *Program {
	return &Program{
		log: logger.New("sharedledger"),
	}
}

// Process - dispatch one instruction
func (p *Program) Process(ctx *ledger.Context, accounts []*ledger.AccountInfo, data []byte) error {
	selector, args, err := instruction.Selector(data)
	if nil != err {
		return err
	}

	switch selector {
	case createNotificationCredentialSelector:
		err = p.createNotificationCredential(ctx, accounts, args)
	case createTransferRequestSelector:
		err = p.createTransferRequest(ctx, accounts, args)
	case executeTransferRequestSelector:
		err = p.executeTransferRequest(ctx, accounts, args)
	default:
		err = fault.ErrUnknownInstruction
	}

	if nil != err {
		if code, ok := ErrorCode(err); ok {
			p.log.Debugf("slot: %d  custom program error: %#x (%s)", ctx.Slot(), code, err)
		} else {
			p.log.Debugf("slot: %d  error: %s", ctx.Slot(), err)
		}
	}
	return err
}

func mustKey(s string) account.Key {
	k, err := account.KeyFromBase58(s)
	fault.PanicIfError("program id", err)
	return k
}

func checkSystemProgram(a *ledger.AccountInfo) error {
	if ledger.SystemProgramID != a.Key {
		return fault.ErrInvalidSystemProgram
	}
	return nil
}
