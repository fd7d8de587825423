// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/counter"
)

// CreateServer - rpc server with every service registered
//
// notifier may be nil, in which case the Notification calls fail
func CreateServer(log *logger.L, version string, rpcCount *counter.Counter, host Host, notifier Notifier) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(NewLedger(log, host, start, version, rpcCount))
	_ = server.Register(NewAccount(log, host))
	_ = server.Register(NewTransfer(log, host))
	_ = server.Register(NewCredential(log, host))
	_ = server.Register(NewNotification(log, notifier))

	return server
}
