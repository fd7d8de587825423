// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/validation"
	"github.com/bitmark-inc/sharedledger/wire"
)

// Pack - encode a credential into its full layout budget
func (credential *ContentCredential) Pack() (Packed, error) {
	if credential.Content >= contentLimit {
		return nil, fault.ErrInvalidContentType
	}
	if err := validation.CheckHash(credential.Hash); nil != err {
		return nil, err
	}

	e := wire.NewEncoder(layout.ContentCredentialSize)
	e.Raw(ContentCredentialDiscriminator[:])
	e.Key(credential.Owner)
	e.Uint8(uint8(credential.Content))
	e.Text(credential.Hash)

	return e.Padded(layout.ContentCredentialSize)
}

// Pack - encode a transfer request into its full layout budget
func (transfer *TransferRequest) Pack() (Packed, error) {
	if err := validation.CheckTopic(transfer.Topic); nil != err {
		return nil, err
	}
	for _, event := range transfer.Events {
		if event.EventType >= eventLimit {
			return nil, fault.ErrInvalidEventType
		}
	}

	e := wire.NewEncoder(layout.TransferRequestSize)
	e.Raw(TransferRequestDiscriminator[:])
	e.Key(transfer.From)
	e.Key(transfer.To)
	e.Key(transfer.Uuid)
	e.Uint64(transfer.Amount)
	for _, event := range transfer.Events {
		e.Uint32(event.Timestamp)
		e.Uint8(uint8(event.EventType))
	}
	e.Text(transfer.Topic)
	e.Uint8(transfer.Bump)

	return e.Padded(layout.TransferRequestSize)
}
