// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter
	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increment")

	assert.Equal(t, uint64(4), c.Decrement(), "after decrement")

	c.Set(100)
	assert.Equal(t, uint64(101), c.Increment(), "increment after set")

	c.Set(0)
	c.Decrement()
	assert.Equal(t, ^uint64(0), c.Uint64(), "wraps below zero")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup
	seen := make([]uint64, 1000)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = c.Increment()
		}(i)
	}
	wg.Wait()

	unique := make(map[uint64]bool)
	for _, n := range seen {
		unique[n] = true
	}
	assert.Equal(t, 1000, len(unique), "increments not unique")
	assert.Equal(t, uint64(1000), c.Uint64(), "final value")
}
