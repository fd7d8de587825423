// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/record"
)

// TransferEntry - a transfer request and where it lives
type TransferEntry struct {
	Address account.Key             `json:"address"`
	Request *record.TransferRequest `json:"request"`
}

// CredentialEntry - a content credential and where it lives
type CredentialEntry struct {
	Address    account.Key               `json:"address"`
	Credential *record.ContentCredential `json:"credential"`
}

var (
	fromOffset  = mustOffset(layout.TransferRequest, "from")
	toOffset    = mustOffset(layout.TransferRequest, "to")
	ownerOffset = mustOffset(layout.ContentCredential, "owner")
	hashOffset  = mustOffset(layout.ContentCredential, "hash")
)

func mustOffset(l layout.Layout, name string) int {
	n, err := l.Offset(name)
	fault.PanicIfError("layout offset: "+name, err)
	return n
}

// TransferByUuid - the open transfer request for uuid
func TransferByUuid(r ledger.Reader, uuid account.Key) (*TransferEntry, error) {
	address, _, err := TransferAddress(uuid)
	if nil != err {
		return nil, err
	}

	a, err := r.Account(address)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrTransferNotFound
	}
	if nil != err {
		return nil, err
	}
	if ProgramID != a.Owner {
		return nil, fault.ErrTransferNotFound
	}

	request, err := record.UnpackTransferRequest(a.Data)
	if nil != err {
		return nil, err
	}
	return &TransferEntry{Address: address, Request: request}, nil
}

// TransfersByPayer - open requests that payer has been asked to settle
func TransfersByPayer(r ledger.Reader, payer account.Key) ([]TransferEntry, error) {
	return transfers(r, fromOffset, payer)
}

// TransfersByRequester - open requests raised by requester
func TransfersByRequester(r ledger.Reader, requester account.Key) ([]TransferEntry, error) {
	return transfers(r, toOffset, requester)
}

func transfers(r ledger.Reader, offset int, k account.Key) ([]TransferEntry, error) {
	accounts, err := r.ProgramAccounts(ProgramID,
		ledger.Filter{Offset: 0, Bytes: record.TransferRequestDiscriminator[:]},
		ledger.Filter{Offset: offset, Bytes: k.Bytes()},
	)
	if nil != err {
		return nil, err
	}

	entries := make([]TransferEntry, 0, len(accounts))
	for _, a := range accounts {
		request, err := record.UnpackTransferRequest(a.Data)
		if nil != err {
			return nil, err
		}
		entries = append(entries, TransferEntry{Address: a.Key, Request: request})
	}
	return entries, nil
}

// CredentialsByOwner - credentials of owner, optionally restricted to
// one exact hash
func CredentialsByOwner(r ledger.Reader, owner account.Key, hash string) ([]CredentialEntry, error) {
	filters := []ledger.Filter{
		{Offset: 0, Bytes: record.ContentCredentialDiscriminator[:]},
		{Offset: ownerOffset, Bytes: owner.Bytes()},
	}
	if "" != hash {
		text := make([]byte, layout.LengthPrefixSize+len(hash))
		binary.LittleEndian.PutUint32(text, uint32(len(hash)))
		copy(text[layout.LengthPrefixSize:], hash)
		filters = append(filters, ledger.Filter{Offset: hashOffset, Bytes: text})
	}

	accounts, err := r.ProgramAccounts(ProgramID, filters...)
	if nil != err {
		return nil, err
	}

	entries := make([]CredentialEntry, 0, len(accounts))
	for _, a := range accounts {
		credential, err := record.UnpackContentCredential(a.Data)
		if nil != err {
			return nil, err
		}
		entries = append(entries, CredentialEntry{Address: a.Key, Credential: credential})
	}
	return entries, nil
}
