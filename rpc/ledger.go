// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/counter"
	"github.com/bitmark-inc/sharedledger/instruction"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/rpc/ratelimit"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

// Ledger
// ------

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - type for the RPC
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    Host
	Start   time.Time
	Version string
	counter *counter.Counter
}

// SubmitReply - result of a committed transaction
type SubmitReply struct {
	Slot      uint64            `json:"slot,string"`
	Signature account.Signature `json:"signature"`
	Accounts  []account.Key     `json:"accounts"`
}

// InfoArguments - arguments for RPC
type InfoArguments struct{}

// InfoReply - result of info RPC
type InfoReply struct {
	Chain       string      `json:"chain"`
	Slot        uint64      `json:"slot,string"`
	ProgramID   account.Key `json:"programId"`
	Rent        ledger.Rent `json:"rent"`
	Version     string      `json:"version"`
	Uptime      string      `json:"uptime"`
	Connections uint64      `json:"connections"`
}

// NewLedger - create the ledger service
func NewLedger(log *logger.L, host Host, start time.Time, version string, count *counter.Counter) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Host:    host,
		Start:   start,
		Version: version,
		counter: count,
	}
}

// Submit - execute a signed transaction
func (l *Ledger) Submit(arguments *instruction.Transaction, reply *SubmitReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	log := l.Log
	log.Infof("Ledger.Submit: program: %s  accounts: %d", arguments.Instruction.ProgramID, len(arguments.Instruction.Accounts))

	receipt, err := l.Host.Execute(arguments)
	if nil != err {
		if code, ok := sharedledger.ErrorCode(err); ok {
			log.Warnf("Ledger.Submit: program error: %d  %s", code, err)
		} else {
			log.Warnf("Ledger.Submit: error: %s", err)
		}
		return err
	}

	reply.Slot = receipt.Slot
	reply.Signature = receipt.Signature
	reply.Accounts = receipt.Accounts
	return nil
}

// Info - chain, slot and rent schedule
func (l *Ledger) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	reply.Chain = l.Host.Chain()
	reply.Slot = l.Host.Slot()
	reply.ProgramID = sharedledger.ProgramID
	reply.Rent = l.Host.Rent()
	reply.Version = l.Version
	reply.Uptime = time.Since(l.Start).String()
	if nil != l.counter {
		reply.Connections = l.counter.Uint64()
	}
	return nil
}
