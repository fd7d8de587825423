// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/rpc/certificate"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "program-id", "id":
		fmt.Printf("%s\n", sharedledger.ProgramID)

	case "start", "run":
		return false // continue processing

	case "balance", "bal", "transfer", "t":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "fp":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  program-id                 (id)     - display the shared ledger program id\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  balance ADDRESS            (bal)    - display an account from the local database\n")
		fmt.Printf("\n")

		fmt.Printf("  transfer UUID              (t)      - display an open transfer request as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		// never echo secrets
		masked := *options
		masked.ClientRPC.PrivateKey = mask(masked.ClientRPC.PrivateKey)
		masked.Notification.SMTP.Password = mask(masked.Notification.SMTP.Password)

		b, err := json.Marshal(masked)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		log := logger.New("certificate")
		_, fingerprint, err := certificate.Get(log, "rpc", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate  error: %s", err)
		}
		fmt.Printf("rpc fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is open so these commands can read committed state
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "balance", "bal":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing address argument")
		}
		key, err := account.KeyFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in address: %s", err)
		}
		a, err := l.Account(key)
		if fault.ErrAccountNotFound == err {
			fmt.Printf("%s: no account\n", key)
			return true
		}
		if nil != err {
			exitwithstatus.Message("account error: %s", err)
		}
		log.Debugf("balance: %s", key)
		printJSON(a)

	case "transfer", "t":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing uuid argument")
		}
		uuid, err := account.KeyFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in uuid: %s", err)
		}
		entry, err := sharedledger.TransferByUuid(l, uuid)
		if nil != err {
			exitwithstatus.Message("transfer error: %s", err)
		}
		printJSON(entry)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJSON(item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}

func mask(s string) string {
	if "" == s {
		return s
	}
	return "********"
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
