// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners serving JSON-RPC connections
package listeners

// Listener - a started server
type Listener interface {
	Serve() error
	Stop()
}
