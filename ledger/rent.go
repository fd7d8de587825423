// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sharedledger/fault"
)

// AccountStorageOverhead - bytes charged for every account on top of its data
const AccountStorageOverhead = 128

// Rent - deposit schedule for allocated accounts
type Rent struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamportsPerByteYear"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemptionThreshold"` // years of rent held as deposit
}

// DefaultRent - 3480 lamports per byte-year, two years deposit
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: 3480,
		ExemptionThreshold:  2.0,
	}
}

// MinimumBalance - deposit that keeps an account of dataSize bytes alive
func (r Rent) MinimumBalance(dataSize int) uint64 {
	bytes := uint64(AccountStorageOverhead + dataSize)
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// Validate - reject a schedule that charges nothing for an account
func (r Rent) Validate() error {
	if 0 == r.MinimumBalance(0) {
		return fault.ErrInvalidRent
	}
	return nil
}
