// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/fixtures"
	"github.com/bitmark-inc/sharedledger/rpc/certificate"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cert, key, err := certgen.NewTLSCertPair("test", time.Now().Add(time.Hour), false, nil)
	assert.Nil(t, err, "certgen error")

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cert), string(key))
	assert.Nil(t, err, "wrong certificate")
	assert.Equal(t, 1, len(tlsConfig.Certificates), "wrong certificate count")
	assert.Equal(t, certificate.Fingerprint(tlsConfig.Certificates[0].Certificate[0]), fingerprint, "wrong fingerprint")
}

func TestGetWhenInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid certificate accepted")
}
