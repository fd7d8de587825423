// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/chain"
)

func TestChains(t *testing.T) {
	items := []struct {
		name    string
		valid   bool
		airdrop bool
	}{
		{chain.Live, true, false},
		{chain.Testing, true, true},
		{chain.Local, true, true},
		{"bitmark", false, false},
		{"", false, false},
	}
	for _, item := range items {
		assert.Equal(t, item.valid, chain.Valid(item.name), "valid: %q", item.name)
		assert.Equal(t, item.airdrop, chain.AirdropAllowed(item.name), "airdrop: %q", item.name)
	}
}
