// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
)

// Transaction - an instruction with one signature per distinct signer
type Transaction struct {
	Instruction Instruction         `json:"instruction"`
	Signatures  []account.Signature `json:"signatures"`
}

// NewTransaction - unsigned envelope
func NewTransaction(in *Instruction) *Transaction {
	return &Transaction{
		Instruction: *in,
	}
}

// Sign - sign with the keys of every signer, in signer order
func (tx *Transaction) Sign(keys ...*account.PrivateKey) error {
	byKey := make(map[account.Key]*account.PrivateKey, len(keys))
	for _, k := range keys {
		byKey[k.Key()] = k
	}

	message := tx.Instruction.Message()
	signers := tx.Instruction.Signers()
	signatures := make([]account.Signature, len(signers))
	for i, signer := range signers {
		k, ok := byKey[signer]
		if !ok {
			return fault.ErrMissingSignature
		}
		signatures[i] = k.Sign(message)
	}
	tx.Signatures = signatures
	return nil
}

// Verify - every declared signer has a valid signature
func (tx *Transaction) Verify() error {
	signers := tx.Instruction.Signers()
	if len(signers) != len(tx.Signatures) {
		return fault.ErrSignatureCount
	}
	message := tx.Instruction.Message()
	for i, signer := range signers {
		err := signer.CheckSignature(message, tx.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}
