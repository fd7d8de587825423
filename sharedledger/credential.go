// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger

import (
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/record"
	"github.com/bitmark-inc/sharedledger/wire"
)

// accounts: author (writable, signer), credential (writable, signer), system program
func (p *Program) createNotificationCredential(ctx *ledger.Context, accounts []*ledger.AccountInfo, args *wire.Decoder) error {
	content := record.ContentType(args.Uint8())
	hash := args.Text()
	if err := instruction.Finish(args); nil != err {
		return err
	}

	if 3 != len(accounts) {
		return fault.ErrInvalidAccountCount
	}
	author := accounts[0]
	credentialAccount := accounts[1]
	if err := checkSystemProgram(accounts[2]); nil != err {
		return err
	}

	credential := record.ContentCredential{
		Owner:   author.Key,
		Content: content,
		Hash:    hash,
	}
	packed, err := credential.Pack()
	if nil != err {
		return err
	}

	err = ctx.CreateAccount(author, credentialAccount, layout.ContentCredentialSize, ctx.ProgramID())
	if nil != err {
		return err
	}
	copy(credentialAccount.Data, packed)

	p.log.Infof("credential: %s  owner: %s  content: %s", credentialAccount.Key, author.Key, content)
	return nil
}
