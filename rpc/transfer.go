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
	"github.com/bitmark-inc/sharedledger/rpc/ratelimit"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

// Transfer
// --------

const (
	rateLimitTransfer = 200
	rateBurstTransfer = 100
)

// Transfer - type for the RPC
type Transfer struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    Host
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Uuid account.Key `json:"uuid"`
}

// GetReply - result of get RPC
type GetReply struct {
	Transfer *sharedledger.TransferEntry `json:"transfer"`
}

// ListArguments - exactly one of payer or requester
type ListArguments struct {
	Payer     *account.Key `json:"payer"`
	Requester *account.Key `json:"requester"`
}

// ListReply - result of list RPC
type ListReply struct {
	Transfers []sharedledger.TransferEntry `json:"transfers"`
}

// NewTransfer - create the transfer service
func NewTransfer(log *logger.L, host Host) *Transfer {
	return &Transfer{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransfer, rateBurstTransfer),
		Host:    host,
	}
}

// Get - the open transfer request with a given uuid
func (t *Transfer) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	entry, err := sharedledger.TransferByUuid(t.Host, arguments.Uuid)
	if nil != err {
		return err
	}
	reply.Transfer = entry
	return nil
}

// List - open transfer requests of a payer or of a requester
func (t *Transfer) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	var entries []sharedledger.TransferEntry
	var err error
	switch {
	case nil != arguments.Payer && nil == arguments.Requester:
		entries, err = sharedledger.TransfersByPayer(t.Host, *arguments.Payer)
	case nil == arguments.Payer && nil != arguments.Requester:
		entries, err = sharedledger.TransfersByRequester(t.Host, *arguments.Requester)
	default:
		return fault.ErrMissingParameters
	}
	if nil != err {
		return err
	}

	t.Log.Debugf("Transfer.List: %d entries", len(entries))
	reply.Transfers = entries
	return nil
}
