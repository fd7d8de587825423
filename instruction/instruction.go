// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - program invocations and their signed envelope
package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/wire"
)

// AccountMeta - one account referenced by an instruction
type AccountMeta struct {
	Key        account.Key `json:"key"`
	IsSigner   bool        `json:"isSigner"`
	IsWritable bool        `json:"isWritable"`
}

// Data - instruction argument bytes
type Data []byte

// MarshalText - hex form
func (d Data) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(d)))
	hex.Encode(b, d)
	return b, nil
}

// UnmarshalText - parse the hex form
func (d *Data) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*d = buffer[:n]
	return nil
}

// Instruction - a call of one program with an ordered account list
//
// RecentSlot ties the signed message to a window of the ledger's history
// so that a captured transaction cannot be submitted again later
type Instruction struct {
	ProgramID  account.Key   `json:"programId"`
	Accounts   []AccountMeta `json:"accounts"`
	Data       Data          `json:"data"`
	RecentSlot uint64        `json:"recentSlot,string"`
}

// Discriminator - eight byte selector of the named operation
type Discriminator [layout.DiscriminatorSize]byte

// NewDiscriminator - selector of an operation name
func NewDiscriminator(name string) Discriminator {
	digest := sha3.Sum256([]byte("global:" + name))
	d := Discriminator{}
	copy(d[:], digest[:])
	return d
}

// account flag bits in the message
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// Message - canonical bytes covered by the signatures
func (in *Instruction) Message() []byte {
	e := wire.NewEncoder(account.KeySize + 4 + len(in.Accounts)*(account.KeySize+1) + 4 + len(in.Data) + 8)
	e.Key(in.ProgramID)
	e.Uint32(uint32(len(in.Accounts)))
	for _, meta := range in.Accounts {
		e.Key(meta.Key)
		flags := uint8(0)
		if meta.IsSigner {
			flags |= signerFlag
		}
		if meta.IsWritable {
			flags |= writableFlag
		}
		e.Uint8(flags)
	}
	e.Uint32(uint32(len(in.Data)))
	e.Raw(in.Data)
	e.Uint64(in.RecentSlot)
	return e.Bytes()
}

// Signers - distinct signer keys in order of first appearance
func (in *Instruction) Signers() []account.Key {
	seen := make(map[account.Key]struct{})
	signers := make([]account.Key, 0, len(in.Accounts))
	for _, meta := range in.Accounts {
		if !meta.IsSigner {
			continue
		}
		if _, ok := seen[meta.Key]; ok {
			continue
		}
		seen[meta.Key] = struct{}{}
		signers = append(signers, meta.Key)
	}
	return signers
}
