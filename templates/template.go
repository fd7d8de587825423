// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text/template sources for outgoing mail
package templates

const (
	/**** Transfer request subject ****/
	TransferRequestSubject = `Transfer request: {{.Topic}}`

	/**** Transfer request body ****/
	TransferRequestBody = `Hello,

{{.Requester}} asks you to pay {{.Amount}} lamports for "{{.Topic}}".

Review and settle the request at:

  {{.URL}}

This message was sent once for request {{.Uuid}}.
`
)
