// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic record addresses
//
// An address is a SHA3-256 digest of the seeds, the owning program and a
// fixed marker. Digests that decode as an ed25519 point are rejected so
// that no private key can ever sign for a derived address; the bump seed
// walks down from 255 until the digest falls off the curve.
package derivation

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
)

// limits on seeds
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const marker = "ProgramDerivedAddress"

// CreateAddress - digest of seeds under programID
//
// fails with fault.ErrInvalidSeeds if the digest is a curve point
func CreateAddress(seeds [][]byte, programID account.Key) (account.Key, error) {
	if len(seeds) > MaxSeeds {
		return account.Key{}, fault.ErrTooManySeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return account.Key{}, fault.ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(marker))

	address := account.Key{}
	copy(address[:], h.Sum(nil))

	if onCurve(address) {
		return account.Key{}, fault.ErrInvalidSeeds
	}
	return address, nil
}

// FindAddress - first off-curve address trying bumps from 255 down to 0
func FindAddress(seeds [][]byte, programID account.Key) (account.Key, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return account.Key{}, 0, fault.ErrTooManySeeds
	}

	s := make([][]byte, len(seeds)+1)
	copy(s, seeds)

	for bump := 255; bump >= 0; bump-- {
		s[len(seeds)] = []byte{uint8(bump)}
		address, err := CreateAddress(s, programID)
		if nil == err {
			return address, uint8(bump), nil
		}
		if fault.ErrInvalidSeeds != err {
			return account.Key{}, 0, err
		}
	}
	return account.Key{}, 0, fault.ErrNoViableBump
}

// Derive - address of the record identified by namespace and parts
func Derive(programID account.Key, namespace string, parts ...[]byte) (account.Key, uint8, error) {
	return FindAddress(seedList(namespace, parts), programID)
}

// Verify - re-derive an address with a stored bump and compare
func Verify(address account.Key, programID account.Key, bump uint8, namespace string, parts ...[]byte) error {
	seeds := append(seedList(namespace, parts), []byte{bump})
	expected, err := CreateAddress(seeds, programID)
	if nil != err {
		return err
	}
	if expected != address {
		return fault.ErrDerivedAddressMismatch
	}
	return nil
}

func seedList(namespace string, parts [][]byte) [][]byte {
	seeds := make([][]byte, 0, len(parts)+2)
	seeds = append(seeds, []byte(namespace))
	seeds = append(seeds, parts...)
	return seeds
}

func onCurve(address account.Key) bool {
	_, err := new(edwards25519.Point).SetBytes(address[:])
	return nil == err
}
