// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - little-endian field encoding shared by persisted
// records and instruction arguments
//
// keys are 32 raw bytes, integers little-endian, text a u32 byte length
// followed by UTF-8
package wire

import (
	"encoding/binary"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
)

// Encoder - append-only field writer
type Encoder struct {
	buffer []byte
}

// NewEncoder - writer with room for size bytes
func NewEncoder(size int) *Encoder {
	return &Encoder{buffer: make([]byte, 0, size)}
}

// Raw - bytes without a length
func (e *Encoder) Raw(b []byte) {
	e.buffer = append(e.buffer, b...)
}

// Key - 32 byte key
func (e *Encoder) Key(k account.Key) {
	e.buffer = append(e.buffer, k[:]...)
}

// Uint8 - single byte
func (e *Encoder) Uint8(v uint8) {
	e.buffer = append(e.buffer, v)
}

// Uint32 - little-endian u32
func (e *Encoder) Uint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buffer = append(e.buffer, b[:]...)
}

// Uint64 - little-endian u64
func (e *Encoder) Uint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buffer = append(e.buffer, b[:]...)
}

// Text - u32 byte length then the bytes
func (e *Encoder) Text(s string) {
	e.Uint32(uint32(len(s)))
	e.buffer = append(e.buffer, s...)
}

// Bytes - everything written so far
func (e *Encoder) Bytes() []byte {
	return e.buffer
}

// Padded - the encoding zero filled to exactly size bytes
func (e *Encoder) Padded(size int) ([]byte, error) {
	if len(e.buffer) > size {
		return nil, fault.ErrRecordTooLarge
	}
	padded := make([]byte, size)
	copy(padded, e.buffer)
	return padded, nil
}

// Decoder - sequential field reader
//
// the first short read records fault.ErrRecordTruncated and every later
// read returns a zero value, so callers check Err once at the end
type Decoder struct {
	buffer []byte
	n      int
	err    error
}

// NewDecoder - reader over buffer
func NewDecoder(buffer []byte) *Decoder {
	return &Decoder{buffer: buffer}
}

// Err - first error seen
func (d *Decoder) Err() error {
	return d.err
}

// Remaining - bytes not yet read
func (d *Decoder) Remaining() int {
	return len(d.buffer) - d.n
}

// Raw - next size bytes
func (d *Decoder) Raw(size int) []byte {
	if nil != d.err {
		return nil
	}
	if size < 0 || size > d.Remaining() {
		d.err = fault.ErrRecordTruncated
		return nil
	}
	b := d.buffer[d.n : d.n+size]
	d.n += size
	return b
}

// Key - 32 byte key
func (d *Decoder) Key() account.Key {
	k := account.Key{}
	copy(k[:], d.Raw(account.KeySize))
	return k
}

// Uint8 - single byte
func (d *Decoder) Uint8() uint8 {
	b := d.Raw(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Uint32 - little-endian u32
func (d *Decoder) Uint32() uint32 {
	b := d.Raw(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 - little-endian u64
func (d *Decoder) Uint64() uint64 {
	b := d.Raw(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Text - u32 byte length then the bytes
func (d *Decoder) Text() string {
	length := d.Uint32()
	if nil != d.err {
		return ""
	}
	if uint64(length) > uint64(d.Remaining()) {
		d.err = fault.ErrRecordTruncated
		return ""
	}
	return string(d.Raw(int(length)))
}
