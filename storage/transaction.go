// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/sharedledger/fault"
)

// Transaction - staged writes applied atomically by Commit
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	done  bool
}

func newTransaction(db *leveldb.DB) Transaction {
	return &transaction{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.batch.Put(k, v)
	t.cache.Set(dbPut, string(k), v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	t.batch.Delete(k)
	t.cache.Set(dbDelete, string(k), nil)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	value, found, staged := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if staged {
		if !found {
			return nil
		}
		return value
	}
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

// Commit - write all staged items in one batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionClosed
	}
	t.done = true
	defer t.cache.Clear()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db || poolData.db != t.db {
		return fault.ErrNotInitialised
	}
	return t.db.Write(t.batch, nil)
}

// Abort - discard all staged items
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.done = true
	t.batch.Reset()
	t.cache.Clear()
}
