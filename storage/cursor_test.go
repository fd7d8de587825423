// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/storage"
)

func fill(p *storage.PoolHandle) {
	for _, k := range []string{"key-03", "key-01", "key-05", "key-02", "key-04"} {
		p.Put([]byte(k), []byte("value"+k[3:]))
	}
	storage.Pool.Accounts.Put([]byte("key-00"), []byte("other pool"))
}

func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown()
	fill(storage.Pool.TestData)

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, []storage.Element{
		{Key: []byte("key-01"), Value: []byte("value-01")},
		{Key: []byte("key-02"), Value: []byte("value-02")},
	}, first, "first page")

	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 3, len(second), "second page length")
	assert.Equal(t, []byte("key-03"), second[0].Key, "second page start")

	third, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(third), "past the end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestCursorSeek(t *testing.T) {
	setup(t)
	defer teardown()
	fill(storage.Pool.TestData)

	elements, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-04")).Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(elements), "elements after seek")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown()
	fill(storage.Pool.TestData)

	keys := []string{}
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, []string{"key-01", "key-02", "key-03", "key-04", "key-05"}, keys, "map order")

	stop := fmt.Errorf("stop")
	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return stop
	})
	assert.Equal(t, stop, err, "error not returned")
	assert.Equal(t, 1, count, "map did not stop")
}
