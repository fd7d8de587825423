// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/validation"
	"github.com/bitmark-inc/sharedledger/wire"
)

// Unpack - decode any record, selected by its discriminator
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *record.TransferRequest:
func (p Packed) Unpack() (interface{}, error) {
	if len(p) < layout.DiscriminatorSize {
		return nil, fault.ErrRecordTruncated
	}
	switch {
	case bytes.Equal(p[:layout.DiscriminatorSize], TransferRequestDiscriminator[:]):
		return UnpackTransferRequest(p)
	case bytes.Equal(p[:layout.DiscriminatorSize], ContentCredentialDiscriminator[:]):
		return UnpackContentCredential(p)
	default:
		return nil, fault.ErrAccountDiscriminatorMismatch
	}
}

// UnpackTransferRequest - decode account data as a transfer request
func UnpackTransferRequest(buffer []byte) (*TransferRequest, error) {
	d := wire.NewDecoder(buffer)
	if err := discriminator(d, TransferRequestDiscriminator); nil != err {
		return nil, err
	}

	transfer := &TransferRequest{
		From:   d.Key(),
		To:     d.Key(),
		Uuid:   d.Key(),
		Amount: d.Uint64(),
	}
	for i := range transfer.Events {
		transfer.Events[i].Timestamp = d.Uint32()
		transfer.Events[i].EventType = EventType(d.Uint8())
		if transfer.Events[i].EventType >= eventLimit {
			return nil, fault.ErrInvalidEventType
		}
	}
	transfer.Topic = d.Text()
	transfer.Bump = d.Uint8()

	if err := d.Err(); nil != err {
		return nil, err
	}
	if err := validation.CheckTopic(transfer.Topic); nil != err {
		return nil, err
	}
	return transfer, nil
}

// UnpackContentCredential - decode account data as a content credential
func UnpackContentCredential(buffer []byte) (*ContentCredential, error) {
	d := wire.NewDecoder(buffer)
	if err := discriminator(d, ContentCredentialDiscriminator); nil != err {
		return nil, err
	}

	credential := &ContentCredential{
		Owner:   d.Key(),
		Content: ContentType(d.Uint8()),
	}
	if credential.Content >= contentLimit {
		return nil, fault.ErrInvalidContentType
	}
	credential.Hash = d.Text()

	if err := d.Err(); nil != err {
		return nil, err
	}
	if err := validation.CheckHash(credential.Hash); nil != err {
		return nil, err
	}
	return credential, nil
}

func discriminator(d *wire.Decoder, expected Discriminator) error {
	b := d.Raw(layout.DiscriminatorSize)
	if err := d.Err(); nil != err {
		return err
	}
	if !bytes.Equal(b, expected[:]) {
		return fault.ErrAccountDiscriminatorMismatch
	}
	return nil
}
