// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sharedledger

import (
	"github.com/bitmark-inc/sharedledger/fault"
)

// CustomErrorBase - first number of the program's own error codes
const CustomErrorBase = 6000

// program error codes, in declaration order
var customErrors = []error{
	fault.ErrTopicTooLong,
	fault.ErrHashTooLong,
}

// ErrorCode - numeric code of a program-defined error
//
// host errors have no code
func ErrorCode(err error) (uint32, bool) {
	for i, e := range customErrors {
		if e == err {
			return uint32(CustomErrorBase + i), true
		}
	}
	return 0, false
}
