// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/sharedledger/fault"
)

// PrivateKey - an ed25519 signing key and its identity
type PrivateKey struct {
	privateKey ed25519.PrivateKey
	key        Key
}

// NewPrivateKey - generate a fresh key from the random source
func NewPrivateKey(random io.Reader) (*PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	key, err := KeyFromPublicKey(publicKey)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{privateKey: privateKey, key: key}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	key, err := KeyFromPublicKey(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &PrivateKey{privateKey: privateKey, key: key}, nil
}

// Key - the identity this private key signs for
func (p *PrivateKey) Key() Key {
	return p.key
}

// Sign - sign a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(p.privateKey, message)
}
