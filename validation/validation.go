// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validation - checks applied to instruction arguments before
// any ledger state is touched
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
)

// ScalarCount - number of Unicode scalar values in s
func ScalarCount(s string) int {
	return utf8.RuneCountInString(s)
}

// WithinBound - true when s holds at most bound scalar values
func WithinBound(s string, bound int) bool {
	return ScalarCount(s) <= bound
}

// CheckTopic - validate a transfer request topic
//
// the topic becomes a mail subject so line breaks and other control
// characters are refused
func CheckTopic(topic string) error {
	if err := check(topic, layout.MaxTopicScalars, fault.ErrTopicTooLong); nil != err {
		return err
	}
	if strings.IndexFunc(topic, unicode.IsControl) >= 0 {
		return fault.ErrInvalidTopic
	}
	return nil
}

// CheckHash - validate a content credential hash
func CheckHash(hash string) error {
	return check(hash, layout.MaxHashScalars, fault.ErrHashTooLong)
}

func check(s string, bound int, tooLong error) error {
	if !utf8.ValidString(s) {
		return fault.ErrInvalidText
	}
	if !WithinBound(s, bound) {
		return tooLong
	}
	return nil
}
