// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/record"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

func TestCreateTransferRequest(t *testing.T) {
	l := setup(t)
	defer teardown()

	receipt, err := createRequest(t, l, uuidU, "rent", 1000)
	assert.Nil(t, err, "create error")

	entry, err := sharedledger.TransferByUuid(l, uuidU)
	assert.Nil(t, err, "lookup error")

	address, bump, _ := sharedledger.TransferAddress(uuidU)
	assert.Equal(t, address, entry.Address, "wrong address")

	r := entry.Request
	assert.Equal(t, payer.Key(), r.From, "wrong from")
	assert.Equal(t, requester.Key(), r.To, "wrong to")
	assert.Equal(t, uuidU, r.Uuid, "wrong uuid")
	assert.Equal(t, uint64(1000), r.Amount, "wrong amount")
	assert.Equal(t, "rent", r.Topic, "wrong topic")
	assert.Equal(t, bump, r.Bump, "wrong bump")
	assert.Equal(t, record.EventCreation, r.Events[0].EventType, "wrong first event")
	assert.Equal(t, uint32(receipt.Slot), r.Events[0].Timestamp, "wrong creation time")
	assert.Equal(t, record.EventUndefined, r.Events[1].EventType, "second event set")

	deposit := l.Rent().MinimumBalance(layout.TransferRequestSize)
	assert.Equal(t, uint64(requesterFunds)-deposit, l.Balance(requester.Key()), "requester not charged deposit")
	assert.Equal(t, deposit, l.Balance(address), "deposit not held by request")
	assert.Equal(t, uint64(payerFunds), l.Balance(payer.Key()), "payer charged at creation")

	a, err := l.Account(address)
	assert.Nil(t, err, "account error")
	assert.Equal(t, sharedledger.ProgramID, a.Owner, "wrong owner")
	assert.Equal(t, layout.TransferRequestSize, len(a.Data), "wrong data size")
}

func TestCreateTransferRequestTopicBound(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, strings.Repeat("x", 51), 1000)
	assert.Equal(t, fault.ErrTopicTooLong, err, "long topic accepted")
	assert.Equal(t, uint64(requesterFunds), l.Balance(requester.Key()), "failed create charged requester")

	_, err = sharedledger.TransferByUuid(l, uuidU)
	assert.Equal(t, fault.ErrTransferNotFound, err, "failed create left a record")

	_, err = createRequest(t, l, uuidU, "rent\r\nBcc: someone@example.com", 1000)
	assert.Equal(t, fault.ErrInvalidTopic, err, "line break in topic accepted")
	assert.Equal(t, uint64(requesterFunds), l.Balance(requester.Key()), "failed create charged requester")

	_, err = createRequest(t, l, uuidU, strings.Repeat("€", 50), 1000)
	assert.Nil(t, err, "fifty multi-byte scalars rejected")
}

func TestCreateTransferRequestDuplicate(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, "rent", 1000)
	assert.Nil(t, err, "create error")

	_, err = createRequest(t, l, uuidU, "again", 2000)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "duplicate uuid accepted")

	entry, err := sharedledger.TransferByUuid(l, uuidU)
	assert.Nil(t, err, "lookup error")
	assert.Equal(t, uint64(1000), entry.Request.Amount, "original request overwritten")
}

func TestCreateTransferRequestWrongAddress(t *testing.T) {
	l := setup(t)
	defer teardown()

	in, err := sharedledger.NewCreateTransferRequest(requester.Key(), payer.Key(), uuidU, "rent", 1000)
	assert.Nil(t, err, "instruction error")
	in.Accounts[0].Key = stranger.Key()

	_, err = execute(t, l, in, requester)
	assert.Equal(t, fault.ErrDerivedAddressMismatch, err, "arbitrary address accepted")
}

func TestCreateTransferRequestConcurrentDuplicate(t *testing.T) {
	l := setup(t)
	defer teardown()

	const n = 8
	errs := make([]error, n)
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = createRequest(t, l, uuidU, "rent", 1000+uint64(i))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if nil == err {
			succeeded++
		} else {
			assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "unexpected error")
		}
	}
	assert.Equal(t, 1, succeeded, "more than one request created for a uuid")
}

func TestExecuteTransferRequest(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, "rent", 1000)
	assert.Nil(t, err, "create error")

	address, _, _ := sharedledger.TransferAddress(uuidU)
	deposit := l.Balance(address)

	_, err = executeRequest(t, l, requester.Key(), payer, uuidU)
	assert.Nil(t, err, "execute error")

	assert.Equal(t, uint64(payerFunds-1000), l.Balance(payer.Key()), "payer not debited")
	assert.Equal(t, uint64(requesterFunds+1000), l.Balance(requester.Key()), "requester not paid and refunded")
	assert.Equal(t, uint64(0), l.Balance(address), "request not closed")

	_, err = l.Account(address)
	assert.Equal(t, fault.ErrAccountNotFound, err, "closed request still stored")

	_, err = executeRequest(t, l, requester.Key(), payer, uuidU)
	assert.Equal(t, fault.ErrTransferNotFound, err, "request executed twice")
	assert.Equal(t, deposit, l.Rent().MinimumBalance(layout.TransferRequestSize), "wrong deposit")
}

func TestTransferRequestReplay(t *testing.T) {
	l := setup(t)
	defer teardown()

	in, err := sharedledger.NewCreateTransferRequest(requester.Key(), payer.Key(), uuidU, "rent", 1000)
	assert.Nil(t, err, "instruction error")
	in.RecentSlot = l.Slot()
	create := instruction.NewTransaction(in)
	assert.Nil(t, create.Sign(requester), "sign error")

	in, err = sharedledger.NewExecuteTransferRequest(requester.Key(), payer.Key(), uuidU)
	assert.Nil(t, err, "instruction error")
	in.RecentSlot = l.Slot()
	settle := instruction.NewTransaction(in)
	assert.Nil(t, settle.Sign(payer), "sign error")

	_, err = l.Execute(create)
	assert.Nil(t, err, "create error")
	_, err = l.Execute(settle)
	assert.Nil(t, err, "execute error")

	// the request is closed, so a second create would otherwise succeed
	// and let the payment be taken again
	_, err = l.Execute(create)
	assert.Equal(t, fault.ErrDuplicateTransaction, err, "create replayed")
	_, err = l.Execute(settle)
	assert.Equal(t, fault.ErrDuplicateTransaction, err, "execute replayed")

	assert.Equal(t, uint64(payerFunds-1000), l.Balance(payer.Key()), "payer debited more than once")
	assert.Equal(t, uint64(requesterFunds+1000), l.Balance(requester.Key()), "requester balance")

	_, err = sharedledger.TransferByUuid(l, uuidU)
	assert.Equal(t, fault.ErrTransferNotFound, err, "request recreated")
}

func TestExecuteTransferRequestMismatch(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, "rent", 1000)
	assert.Nil(t, err, "create error")

	_, err = executeRequest(t, l, requester.Key(), stranger, uuidU)
	assert.Equal(t, fault.ErrPayerMismatch, err, "stranger settled the request")

	_, err = executeRequest(t, l, stranger.Key(), payer, uuidU)
	assert.Equal(t, fault.ErrRequesterMismatch, err, "payment redirected")

	assert.Equal(t, uint64(payerFunds), l.Balance(payer.Key()), "payer debited by failed execute")
	assert.Equal(t, uint64(payerFunds), l.Balance(stranger.Key()), "stranger debited by failed execute")

	_, err = sharedledger.TransferByUuid(l, uuidU)
	assert.Nil(t, err, "failed execute removed the request")
}

func TestExecuteTransferRequestInsufficientFunds(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, "rent", payerFunds+1)
	assert.Nil(t, err, "create error")

	_, err = executeRequest(t, l, requester.Key(), payer, uuidU)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "overdraft allowed")

	_, err = sharedledger.TransferByUuid(l, uuidU)
	assert.Nil(t, err, "failed execute removed the request")
	assert.Equal(t, uint64(payerFunds), l.Balance(payer.Key()), "payer debited by failed execute")
}

func TestExecuteTransferRequestUnsigned(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := createRequest(t, l, uuidU, "rent", 1000)
	assert.Nil(t, err, "create error")

	in, err := sharedledger.NewExecuteTransferRequest(requester.Key(), payer.Key(), uuidU)
	assert.Nil(t, err, "instruction error")
	in.Accounts[0].IsSigner = true
	in.Accounts[1].IsSigner = false

	_, err = execute(t, l, in, requester)
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned payment accepted")
}

func TestProcessRejectsMalformedData(t *testing.T) {
	l := setup(t)
	defer teardown()

	in, err := sharedledger.NewExecuteTransferRequest(requester.Key(), payer.Key(), uuidU)
	assert.Nil(t, err, "instruction error")

	unknown := *in
	unknown.Data = instruction.NewArguments(instruction.NewDiscriminator("unknown")).Bytes()
	_, err = execute(t, l, &unknown, payer)
	assert.Equal(t, fault.ErrUnknownInstruction, err, "unknown instruction accepted")

	short := *in
	short.Data = in.Data[:len(in.Data)-1]
	_, err = execute(t, l, &short, payer)
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "truncated arguments accepted")

	wrongSystem := *in
	wrongSystem.Accounts = append([]instruction.AccountMeta{}, in.Accounts...)
	wrongSystem.Accounts[3].Key = stranger.Key()
	_, err = execute(t, l, &wrongSystem, payer)
	assert.Equal(t, fault.ErrInvalidSystemProgram, err, "wrong system program accepted")

	missing := *in
	missing.Accounts = in.Accounts[:3]
	_, err = execute(t, l, &missing, payer)
	assert.Equal(t, fault.ErrInvalidAccountCount, err, "missing account accepted")
}

func TestErrorCode(t *testing.T) {
	code, ok := sharedledger.ErrorCode(fault.ErrTopicTooLong)
	assert.True(t, ok, "topic error has no code")
	assert.Equal(t, uint32(6000), code, "wrong topic code")

	code, ok = sharedledger.ErrorCode(fault.ErrHashTooLong)
	assert.True(t, ok, "hash error has no code")
	assert.Equal(t, uint32(6001), code, "wrong hash code")

	_, ok = sharedledger.ErrorCode(fault.ErrInsufficientFunds)
	assert.False(t, ok, "host error has a code")
}

func TestProgramID(t *testing.T) {
	assert.Equal(t, sharedledger.ProgramIDText, sharedledger.ProgramID.String(), "program id does not round trip")
	assert.NotEqual(t, ledger.SystemProgramID, sharedledger.ProgramID, "program id is the system id")
}
