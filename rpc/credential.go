// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/rpc/ratelimit"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

const (
	rateLimitCredential = 200
	rateBurstCredential = 100
)

// Credential - type for the RPC
type Credential struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Host    Host
}

// CredentialListArguments - arguments for RPC
type CredentialListArguments struct {
	Owner account.Key `json:"owner"`
	Hash  string      `json:"hash"` // optional exact match
}

// CredentialListReply - result of list RPC
type CredentialListReply struct {
	Credentials []sharedledger.CredentialEntry `json:"credentials"`
}

// NewCredential - create the credential service
func NewCredential(log *logger.L, host Host) *Credential {
	return &Credential{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCredential, rateBurstCredential),
		Host:    host,
	}
}

// List - credentials held by an owner
func (c *Credential) List(arguments *CredentialListArguments, reply *CredentialListReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	entries, err := sharedledger.CredentialsByOwner(c.Host, arguments.Owner, arguments.Hash)
	if nil != err {
		return err
	}
	reply.Credentials = entries
	return nil
}
