// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
)

// SystemProgramID - owner of every account not assigned to a program
var SystemProgramID = account.Key{}

// AccountInfo - state of one account as seen by a program
type AccountInfo struct {
	Key        account.Key `json:"key"`
	Lamports   uint64      `json:"lamports"`
	Owner      account.Key `json:"owner"`
	Data       []byte      `json:"data"`
	IsSigner   bool        `json:"-"`
	IsWritable bool        `json:"-"`
}

// IsEmpty - true for an account that holds nothing
func (a *AccountInfo) IsEmpty() bool {
	return 0 == a.Lamports && 0 == len(a.Data) && SystemProgramID == a.Owner
}

// stored form: lamports (8 bytes big endian) ‖ owner (32 bytes) ‖ data
const accountHeaderSize = 8 + account.KeySize

func packAccount(a *AccountInfo) []byte {
	buffer := make([]byte, accountHeaderSize+len(a.Data))
	binary.BigEndian.PutUint64(buffer, a.Lamports)
	copy(buffer[8:], a.Owner[:])
	copy(buffer[accountHeaderSize:], a.Data)
	return buffer
}

func unpackAccount(key account.Key, buffer []byte) (*AccountInfo, error) {
	if len(buffer) < accountHeaderSize {
		return nil, fault.ErrRecordTruncated
	}
	a := &AccountInfo{
		Key:      key,
		Lamports: binary.BigEndian.Uint64(buffer),
	}
	copy(a.Owner[:], buffer[8:accountHeaderSize])
	if len(buffer) > accountHeaderSize {
		a.Data = make([]byte, len(buffer)-accountHeaderSize)
		copy(a.Data, buffer[accountHeaderSize:])
	}
	return a, nil
}

// snapshot of an account before the program runs
type snapshot struct {
	lamports uint64
	owner    account.Key
	data     []byte
}

func snapshotOf(a *AccountInfo) snapshot {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return snapshot{
		lamports: a.Lamports,
		owner:    a.Owner,
		data:     data,
	}
}

func (s snapshot) isEmpty() bool {
	return 0 == s.lamports && 0 == len(s.data) && SystemProgramID == s.owner
}

func (s snapshot) changed(a *AccountInfo) bool {
	return s.lamports != a.Lamports || s.owner != a.Owner || !bytes.Equal(s.data, a.Data)
}

func (s snapshot) contentChanged(a *AccountInfo) bool {
	return s.owner != a.Owner || !bytes.Equal(s.data, a.Data)
}
