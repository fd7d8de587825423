// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/rpc/ratelimit"
)

// Account
// -------

const (
	rateLimitAccount = 200
	rateBurstAccount = 100

	rateLimitAirdrop = 1
	rateBurstAirdrop = 5

	// MaximumAirdrop - most lamports one airdrop can create
	MaximumAirdrop = 1000000000
)

// Account - type for the RPC
type Account struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	Host           Host
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Key account.Key `json:"key"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Key      account.Key `json:"key"`
	Lamports uint64      `json:"lamports,string"`
	Owner    account.Key `json:"owner"`
	Size     int         `json:"size"`
	Exists   bool        `json:"exists"`
}

// AirdropArguments - arguments for RPC
type AirdropArguments struct {
	Key    account.Key `json:"key"`
	Amount uint64      `json:"amount,string"`
}

// AirdropReply - result of airdrop RPC
type AirdropReply struct {
	Lamports uint64 `json:"lamports,string"`
}

// NewAccount - create the account service
func NewAccount(log *logger.L, host Host) *Account {
	return &Account{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		Host:           host,
	}
}

// Balance - lamports and owner of an account
func (a *Account) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	reply.Key = arguments.Key
	reply.Owner = ledger.SystemProgramID

	info, err := a.Host.Account(arguments.Key)
	if fault.ErrAccountNotFound == err {
		return nil
	}
	if nil != err {
		return err
	}

	reply.Lamports = info.Lamports
	reply.Owner = info.Owner
	reply.Size = len(info.Data)
	reply.Exists = true
	return nil
}

// Airdrop - create lamports on a test chain
func (a *Account) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(a.AirdropLimiter); nil != err {
		return err
	}
	if 0 == arguments.Amount || arguments.Amount > MaximumAirdrop {
		return fault.ErrInvalidCount
	}

	a.Log.Infof("Account.Airdrop: %s  amount: %d", arguments.Key, arguments.Amount)

	balance, err := a.Host.Airdrop(arguments.Key, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Lamports = balance
	return nil
}
