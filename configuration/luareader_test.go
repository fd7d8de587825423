// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sharedledger/configuration"
	"github.com/bitmark-inc/sharedledger/fault"
)

type rpcSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
	Certificate        string   `gluamapper:"certificate"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	ClientRPC     rpcSection        `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testScript = `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.chain = var.chain or "live"
M.client_rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    certificate = read_file(M.data_directory .. "rpc.crt"),
}
M.levels = { DEFAULT = "info", ledger = "debug" }
return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", testScript)
	writeFile(t, dir, "rpc.crt", "CERTIFICATE")

	c := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &c, map[string]string{"chain": "testing"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, dir+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", c.Chain, "variable not applied")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "CERTIFICATE", c.ClientRPC.Certificate, "file not read")
	assert.Equal(t, "debug", c.Levels["ledger"], "wrong level")
}

func TestParseConfigurationFileDefaults(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", `return { data_directory = "." }`)

	c := testConfiguration{Chain: "local"}
	err = configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, ".", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "local", c.Chain, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	c := testConfiguration{}

	fileName := writeFile(t, dir, "number.conf", `return 42`)
	err = configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non-table accepted")

	fileName = writeFile(t, dir, "syntax.conf", `return {`)
	err = configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &c, nil)
	assert.NotNil(t, err, "missing file accepted")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/rpc.crt", configuration.EnsureAbsolute("/data", "rpc.crt"), "relative not joined")
	assert.Equal(t, "/etc/rpc.crt", configuration.EnsureAbsolute("/data", "/etc/rpc.crt"), "absolute changed")
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data/x/..", "log/"), "not cleaned")

	assert.False(t, configuration.EnsureFileExists("/nonexistent/file/name"), "missing file found")
}
