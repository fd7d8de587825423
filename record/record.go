// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the records persisted by the shared ledger program
//
// Each record starts with an eight byte discriminator naming its type,
// followed by its fields in a fixed order: keys as 32 raw bytes,
// integers little-endian, text as a u32 length and UTF-8 bytes. The
// packed form is zero padded to the layout budget of the type.
package record

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/layout"
)

// Discriminator - leading type tag of a packed record
type Discriminator [layout.DiscriminatorSize]byte

// record type tags
var (
	TransferRequestDiscriminator   = NewDiscriminator("TransferRequest")
	ContentCredentialDiscriminator = NewDiscriminator("ContentCredential")
)

// NewDiscriminator - tag of the named record type
func NewDiscriminator(name string) Discriminator {
	digest := sha3.Sum256([]byte("account:" + name))
	d := Discriminator{}
	copy(d[:], digest[:])
	return d
}

// String - hex form for logging
func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// ContentType - kind of content a credential attests to
type ContentType uint8

// supported content types
const (
	ContentEmail ContentType = iota
	contentLimit
)

var contentNames = [...]string{
	ContentEmail: "EMAIL",
}

// String - the external name
func (c ContentType) String() string {
	if c >= contentLimit {
		return "UNKNOWN"
	}
	return contentNames[c]
}

// MarshalText - external name for JSON
func (c ContentType) MarshalText() ([]byte, error) {
	if c >= contentLimit {
		return nil, fault.ErrInvalidContentType
	}
	return []byte(contentNames[c]), nil
}

// UnmarshalText - parse the external name
func (c *ContentType) UnmarshalText(s []byte) error {
	for i, name := range contentNames {
		if name == string(s) {
			*c = ContentType(i)
			return nil
		}
	}
	return fault.ErrInvalidContentType
}

// EventType - kind of lifecycle event stored in a transfer request
type EventType uint8

// lifecycle events
const (
	EventUndefined EventType = iota
	EventCreation
	EventCancel
	EventTransfer
	eventLimit
)

var eventNames = [...]string{
	EventUndefined: "UNDEFINED",
	EventCreation:  "CREATION",
	EventCancel:    "CANCEL",
	EventTransfer:  "TRANSFER",
}

// String - the external name
func (e EventType) String() string {
	if e >= eventLimit {
		return "UNKNOWN"
	}
	return eventNames[e]
}

// MarshalText - external name for JSON
func (e EventType) MarshalText() ([]byte, error) {
	if e >= eventLimit {
		return nil, fault.ErrInvalidEventType
	}
	return []byte(eventNames[e]), nil
}

// UnmarshalText - parse the external name
func (e *EventType) UnmarshalText(s []byte) error {
	for i, name := range eventNames {
		if name == string(s) {
			*e = EventType(i)
			return nil
		}
	}
	return fault.ErrInvalidEventType
}

// TransactionEvent - one lifecycle slot of a transfer request
type TransactionEvent struct {
	Timestamp uint32    `json:"timestamp"`
	EventType EventType `json:"eventType"`
}

// ContentCredential - attestation that Owner controls content whose
// salted digest is Hash
type ContentCredential struct {
	Owner   account.Key `json:"owner"`
	Content ContentType `json:"content"`
	Hash    string      `json:"hash"`
}

// TransferRequest - a request by To for From to pay Amount
type TransferRequest struct {
	From   account.Key                                   `json:"from"`
	To     account.Key                                   `json:"to"`
	Uuid   account.Key                                   `json:"uuid"`
	Amount uint64                                        `json:"amount"`
	Events [layout.NumTransactionEvents]TransactionEvent `json:"events"`
	Topic  string                                        `json:"topic"`
	Bump   uint8                                         `json:"bump"`
}

// Packed - encoded form of a record
type Packed []byte

// MarshalText - hex text of the packed bytes
func (p Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(b, p)
	return b, nil
}
