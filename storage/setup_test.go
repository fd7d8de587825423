// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/fixtures"
	"github.com/bitmark-inc/sharedledger/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReopen(t *testing.T) {
	setup(t)
	storage.Pool.TestData.Put([]byte("key"), []byte("kept"))
	storage.Finalise()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only reopen")
	defer teardown()

	assert.Equal(t, []byte("kept"), storage.Pool.TestData.Get([]byte("key")), "value lost across reopen")
}

func TestNotInitialised(t *testing.T) {
	storage.Finalise()
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err, "transaction without database")
}

func TestPoolAccess(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	assert.False(t, p.Has([]byte("one")), "empty pool has key")
	assert.Nil(t, p.Get([]byte("one")), "empty pool returned value")

	p.Put([]byte("one"), []byte("1"))
	p.PutN([]byte("two"), 2)

	assert.True(t, p.Has([]byte("one")), "missing key")
	assert.Equal(t, []byte("1"), p.Get([]byte("one")), "wrong value")
	n, found := p.GetN([]byte("two"))
	assert.True(t, found, "missing N")
	assert.Equal(t, uint64(2), n, "wrong N")

	// other pools are separate prefixes
	assert.False(t, storage.Pool.Accounts.Has([]byte("one")), "prefixes overlap")

	p.Delete([]byte("one"))
	assert.False(t, p.Has([]byte("one")), "key not deleted")
}
