// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notification - off-ledger contact book and payer notification
//
// An owner proves control of an email address by first recording a
// content credential holding the salted hash of the address; Verify then
// stores the address as the owner's contact. Notify mails the payer of a
// pending transfer request at most once.
package notification

import (
	"encoding/json"
	"sync"
	"text/template"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/ledger"
	"github.com/bitmark-inc/sharedledger/storage"
	"github.com/bitmark-inc/sharedledger/templates"
)

// Configuration - notification section of the configuration file
type Configuration struct {
	Website string            `gluamapper:"website" json:"website"`
	SMTP    SMTPConfiguration `gluamapper:"smtp" json:"smtp"`
}

// Contact - how an owner is reached
type Contact struct {
	Email string `json:"email"`
}

// Notifier - verifies contacts and mails payers
type Notifier struct {
	sync.Mutex // serialises status transitions

	log           *logger.L
	reader        ledger.Reader
	mailer        Mailer
	contacts      storage.Handle
	notifications storage.Handle
	website       string
	subject       *template.Template
	body          *template.Template
}

// New - notifier over the contact and notification pools
func New(reader ledger.Reader, mailer Mailer, contacts storage.Handle, notifications storage.Handle, website string) (*Notifier, error) {
	if nil == contacts || nil == notifications {
		return nil, fault.ErrNotInitialised
	}

	subject, err := template.New("subject").Parse(templates.TransferRequestSubject)
	if nil != err {
		return nil, err
	}
	body, err := template.New("body").Parse(templates.TransferRequestBody)
	if nil != err {
		return nil, err
	}

	return &Notifier{
		log:           logger.New("notification"),
		reader:        reader,
		mailer:        mailer,
		contacts:      contacts,
		notifications: notifications,
		website:       website,
		subject:       subject,
		body:          body,
	}, nil
}

// HasContact - true if owner has a verified contact
func (n *Notifier) HasContact(owner account.Key) bool {
	return n.contacts.Has(owner.Bytes())
}

func (n *Notifier) contact(owner account.Key) (*Contact, error) {
	buffer := n.contacts.Get(owner.Bytes())
	if nil == buffer {
		return nil, fault.ErrContactNotFound
	}
	c := &Contact{}
	err := json.Unmarshal(buffer, c)
	if nil != err {
		return nil, err
	}
	return c, nil
}
