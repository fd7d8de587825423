// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/wire"
)

func TestEncode(t *testing.T) {
	e := wire.NewEncoder(0)
	e.Uint8(0x7f)
	e.Uint32(0x01020304)
	e.Uint64(1000)
	e.Text("héllo")

	expected := []byte{
		0x7f,
		0x04, 0x03, 0x02, 0x01,
		0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x06, 0x00, 0x00, 0x00, 'h', 0xc3, 0xa9, 'l', 'l', 'o',
	}
	assert.Equal(t, expected, e.Bytes(), "encoded bytes")

	padded, err := e.Padded(30)
	assert.Nil(t, err, "pad error")
	assert.Equal(t, 30, len(padded), "padded length")
	assert.Equal(t, expected, padded[:len(expected)], "padded prefix")

	_, err = e.Padded(10)
	assert.Equal(t, fault.ErrRecordTooLarge, err, "overflow not detected")
}

func TestDecode(t *testing.T) {
	k := account.Key{1, 2, 3}
	e := wire.NewEncoder(0)
	e.Key(k)
	e.Uint64(42)
	e.Text("rent")

	d := wire.NewDecoder(e.Bytes())
	assert.Equal(t, k, d.Key(), "key")
	assert.Equal(t, uint64(42), d.Uint64(), "u64")
	assert.Equal(t, "rent", d.Text(), "text")
	assert.Nil(t, d.Err(), "decode error")
	assert.Equal(t, 0, d.Remaining(), "trailing bytes")
}

func TestDecodeTruncated(t *testing.T) {
	d := wire.NewDecoder([]byte{0x09, 0x00, 0x00, 0x00, 'a', 'b'})
	assert.Equal(t, "", d.Text(), "short text")
	assert.Equal(t, fault.ErrRecordTruncated, d.Err(), "truncation not detected")

	// later reads stay empty
	assert.Equal(t, uint8(0), d.Uint8(), "read after error")
	assert.Equal(t, fault.ErrRecordTruncated, d.Err(), "error replaced")
}
