// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/sharedledger/fault"
)

// KeySize - number of bytes in an identity key
const KeySize = 32

// Key - 32 byte identity of an account, either an ed25519 public key
// or a derived address that has no private key
type Key [KeySize]byte

// KeyFromBytes - copy a byte slice into a key
func KeyFromBytes(buffer []byte) (Key, error) {
	k := Key{}
	if KeySize != len(buffer) {
		return k, fault.ErrInvalidKeyLength
	}
	copy(k[:], buffer)
	return k, nil
}

// KeyFromBase58 - decode the text form of a key
func KeyFromBase58(s string) (Key, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Key{}, fault.ErrCannotDecodeKey
	}
	return KeyFromBytes(buffer)
}

// KeyFromPublicKey - identity of an ed25519 public key
func KeyFromPublicKey(publicKey ed25519.PublicKey) (Key, error) {
	return KeyFromBytes(publicKey)
}

// Bytes - key as a byte slice
func (k Key) Bytes() []byte {
	return k[:]
}

// IsZero - true for the all-zero key
func (k Key) IsZero() bool {
	return k == Key{}
}

// Compare - byte-wise ordering, used to order lock acquisition
func (k Key) Compare(other Key) int {
	return bytes.Compare(k[:], other[:])
}

// String - base58 text for the fmt package (%s)
func (k Key) String() string {
	return base58.Encode(k[:])
}

// GoString - for %#v
func (k Key) GoString() string {
	return "<key:" + hex.EncodeToString(k[:]) + ">"
}

// MarshalText - convert key to base58
func (k Key) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(k[:])), nil
}

// UnmarshalText - convert base58 text to a key
func (k *Key) UnmarshalText(s []byte) error {
	key, err := KeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = key
	return nil
}
