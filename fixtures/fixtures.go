// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - send all log output to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// PrivateKey - deterministic signing key, distinct for each n
func PrivateKey(n byte) *account.PrivateKey {
	p, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{n}, 32))
	if nil != err {
		panic(err)
	}
	return p
}

// Key - deterministic non-signing key, distinct for each n
func Key(n byte) account.Key {
	k := account.Key{}
	for i := range k {
		k[i] = n
	}
	return k
}
