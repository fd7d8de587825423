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
)

// Notification
// ------------

const (
	rateLimitNotification = 10
	rateBurstNotification = 20
)

// Notification - type for the RPC
type Notification struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Notifier Notifier
}

// VerifyArguments - arguments for RPC
type VerifyArguments struct {
	Owner account.Key `json:"owner"`
	Salt  string      `json:"salt"`
	Email string      `json:"email"`
}

// VerifyReply - result of verify RPC
type VerifyReply struct {
	Verified bool `json:"verified"`
}

// ExistsArguments - arguments for RPC
type ExistsArguments struct {
	Owner account.Key `json:"owner"`
}

// ExistsReply - result of exists RPC
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// SendArguments - arguments for RPC
type SendArguments struct {
	Uuid account.Key `json:"uuid"`
}

// SendReply - result of send RPC
type SendReply struct {
	Sent bool `json:"sent"`
}

// NewNotification - create the notification service
func NewNotification(log *logger.L, notifier Notifier) *Notification {
	return &Notification{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNotification, rateBurstNotification),
		Notifier: notifier,
	}
}

func (n *Notification) enabled() error {
	if nil == n.Notifier {
		return fault.ErrNotInitialised
	}
	return nil
}

// Verify - link an email address to its owner
func (n *Notification) Verify(arguments *VerifyArguments, reply *VerifyReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if err := n.enabled(); nil != err {
		return err
	}

	n.Log.Infof("Notification.Verify: owner: %s", arguments.Owner)

	err := n.Notifier.Verify(arguments.Owner, arguments.Salt, arguments.Email)
	if nil != err {
		return err
	}
	reply.Verified = true
	return nil
}

// Exists - true if the owner can be notified
func (n *Notification) Exists(arguments *ExistsArguments, reply *ExistsReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if err := n.enabled(); nil != err {
		return err
	}

	reply.Exists = n.Notifier.HasContact(arguments.Owner)
	return nil
}

// Send - mail the payer of a pending transfer request
func (n *Notification) Send(arguments *SendArguments, reply *SendReply) error {

	if err := ratelimit.Limit(n.Limiter); nil != err {
		return err
	}
	if err := n.enabled(); nil != err {
		return err
	}

	n.Log.Infof("Notification.Send: uuid: %s", arguments.Uuid)

	err := n.Notifier.Notify(arguments.Uuid)
	if nil != err {
		return err
	}
	reply.Sent = true
	return nil
}
