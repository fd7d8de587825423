// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - fixed storage budgets of the persisted records
//
// Every record is allocated once at its worst-case size, so all sizes
// here are compile-time constants. Text is budgeted by scalar count
// times the largest UTF-8 encoding of one scalar value.
package layout

import (
	"unicode/utf8"
)

// primitive widths
const (
	DiscriminatorSize = 8
	KeySize           = 32
	LengthPrefixSize  = 4
	Uint8Size         = 1
	Uint32Size        = 4
	Uint64Size        = 8
	BumpSize          = Uint8Size
	EnumSize          = Uint8Size

	// MaxBytesPerScalar - worst case UTF-8 width of one scalar value
	MaxBytesPerScalar = utf8.UTFMax
)

// text bounds in scalar values
const (
	MaxTopicScalars = 50
	MaxHashScalars  = 64
)

// NumTransactionEvents - fixed number of lifecycle slots in a transfer request
const NumTransactionEvents = 2

// record sizes
const (
	TransactionEventSize = Uint32Size + EnumSize

	TopicSize = LengthPrefixSize + MaxTopicScalars*MaxBytesPerScalar
	HashSize  = LengthPrefixSize + MaxHashScalars*MaxBytesPerScalar

	TransferRequestSize = DiscriminatorSize +
		KeySize + // from
		KeySize + // to
		KeySize + // uuid
		Uint64Size + // amount
		NumTransactionEvents*TransactionEventSize +
		TopicSize +
		BumpSize

	ContentCredentialSize = DiscriminatorSize +
		KeySize + // owner
		EnumSize + // content
		HashSize
)

// TextSize - storage budget of a text field holding at most maxScalars
func TextSize(maxScalars int) int {
	return LengthPrefixSize + maxScalars*MaxBytesPerScalar
}
