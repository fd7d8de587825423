// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/sharedledger/account"
)

// per account reader/writer locks, created on demand and dropped when
// the last holder releases
type lockTable struct {
	sync.Mutex
	entries map[account.Key]*lockEntry
}

type lockEntry struct {
	sync.RWMutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{
		entries: make(map[account.Key]*lockEntry),
	}
}

// acquire every key in byte order so two calls can never wait on each
// other in a cycle; writable keys are exclusive
func (t *lockTable) acquire(writable map[account.Key]bool) func() {
	keys := make([]account.Key, 0, len(writable))
	for k := range writable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})

	held := make([]*lockEntry, len(keys))
	for i, k := range keys {
		t.Lock()
		e, ok := t.entries[k]
		if !ok {
			e = &lockEntry{}
			t.entries[k] = e
		}
		e.refs += 1
		t.Unlock()

		if writable[k] {
			e.Lock()
		} else {
			e.RLock()
		}
		held[i] = e
	}

	return func() {
		for i := len(keys) - 1; i >= 0; i -= 1 {
			k := keys[i]
			e := held[i]
			if writable[k] {
				e.Unlock()
			} else {
				e.RUnlock()
			}

			t.Lock()
			e.refs -= 1
			if 0 == e.refs {
				delete(t.entries, k)
			}
			t.Unlock()
		}
	}
}

// number of keys currently tracked
func (t *lockTable) size() int {
	t.Lock()
	defer t.Unlock()
	return len(t.entries)
}
