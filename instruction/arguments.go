// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
	"github.com/bitmark-inc/sharedledger/wire"
)

// NewArguments - argument writer starting with the operation selector
func NewArguments(d Discriminator) *wire.Encoder {
	e := wire.NewEncoder(64)
	e.Raw(d[:])
	return e
}

// Selector - split data into the operation selector and an argument reader
func Selector(data []byte) (Discriminator, *wire.Decoder, error) {
	d := Discriminator{}
	if len(data) < layout.DiscriminatorSize {
		return d, nil, fault.ErrInvalidInstructionData
	}
	copy(d[:], data)
	return d, wire.NewDecoder(data[layout.DiscriminatorSize:]), nil
}

// Finish - check an argument reader consumed exactly its input
func Finish(d *wire.Decoder) error {
	if nil != d.Err() || 0 != d.Remaining() {
		return fault.ErrInvalidInstructionData
	}
	return nil
}
