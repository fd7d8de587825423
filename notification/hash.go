// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notification

import (
	"crypto/sha256"
	"encoding/base64"
	"net/mail"

	"github.com/google/uuid"

	"github.com/bitmark-inc/sharedledger/fault"
)

// NewSalt - fresh salt for hashing an email address
func NewSalt() string {
	return uuid.New().String()
}

// HashEmail - base64 of SHA-256 over salt followed by the address
//
// this value is what a content credential stores on the ledger
func HashEmail(salt string, email string) (string, error) {
	if _, err := uuid.Parse(salt); nil != err {
		return "", fault.ErrInvalidSalt
	}
	if _, err := mail.ParseAddress(email); nil != err {
		return "", fault.ErrInvalidEmail
	}

	digest := sha256.Sum256([]byte(salt + email))
	return base64.StdEncoding.EncodeToString(digest[:]), nil
}
