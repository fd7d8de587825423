// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/account"
)

func TestLockTableReleases(t *testing.T) {
	table := newLockTable()
	a := account.Key{1}
	b := account.Key{2}

	release := table.acquire(map[account.Key]bool{a: true, b: false})
	assert.Equal(t, 2, table.size(), "entries while held")
	release()
	assert.Equal(t, 0, table.size(), "entries after release")
}

func TestLockTableReadersShare(t *testing.T) {
	table := newLockTable()
	k := account.Key{3}

	r1 := table.acquire(map[account.Key]bool{k: false})
	done := make(chan struct{})
	go func() {
		r2 := table.acquire(map[account.Key]bool{k: false})
		r2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second reader blocked")
	}
	r1()
}

func TestLockTableWriterExcludes(t *testing.T) {
	table := newLockTable()
	k := account.Key{4}

	w := table.acquire(map[account.Key]bool{k: true})

	var mu sync.Mutex
	entered := false
	done := make(chan struct{})
	go func() {
		r := table.acquire(map[account.Key]bool{k: false})
		mu.Lock()
		entered = true
		mu.Unlock()
		r()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.False(t, entered, "reader entered while writer held the lock")
	mu.Unlock()

	w()
	<-done
	assert.Equal(t, 0, table.size(), "entries after release")
}
