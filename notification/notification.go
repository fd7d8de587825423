// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notification

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/bitmark-inc/sharedledger/account"
	"github.com/bitmark-inc/sharedledger/fault"
	"github.com/bitmark-inc/sharedledger/record"
	"github.com/bitmark-inc/sharedledger/sharedledger"
)

// Status - progress of a payer notification
type Status string

// notification states
const (
	StatusNone       Status = ""
	StatusProcessing Status = "PROCESSING"
	StatusNotified   Status = "NOTIFIED"
	StatusError      Status = "ERROR"
)

// Verify - record email as owner's contact
//
// requires an on-ledger EMAIL credential of owner holding the salted hash
func (n *Notifier) Verify(owner account.Key, salt string, email string) error {
	hash, err := HashEmail(salt, email)
	if nil != err {
		return err
	}

	entries, err := sharedledger.CredentialsByOwner(n.reader, owner, hash)
	if nil != err {
		return err
	}
	if 0 == len(entries) {
		return fault.ErrCredentialNotFound
	}
	if record.ContentEmail != entries[0].Credential.Content {
		return fault.ErrInvalidContentType
	}

	buffer, err := json.Marshal(Contact{Email: email})
	if nil != err {
		return err
	}
	n.contacts.Put(owner.Bytes(), buffer)

	n.log.Infof("verified contact for: %s  credential: %s", owner, entries[0].Address)
	return nil
}

// Status - current state of the notification for a transfer request
func (n *Notifier) Status(uuid account.Key) Status {
	return Status(n.notifications.Get(uuid.Bytes()))
}

func (n *Notifier) setStatus(uuid account.Key, status Status) {
	n.notifications.Put(uuid.Bytes(), []byte(status))
}

type mailData struct {
	Topic     string
	Amount    uint64
	Requester account.Key
	Uuid      account.Key
	URL       string
}

// Notify - mail the payer of a pending transfer request
//
// a request is mailed at most once; a failed delivery may be retried
func (n *Notifier) Notify(uuid account.Key) error {
	entry, err := sharedledger.TransferByUuid(n.reader, uuid)
	if nil != err {
		return err
	}
	request := entry.Request

	n.Lock()
	switch n.Status(uuid) {
	case StatusNotified:
		n.Unlock()
		return fault.ErrAlreadyNotified
	case StatusProcessing:
		n.Unlock()
		return fault.ErrNotificationInProgress
	}
	if record.EventUndefined != request.Events[1].EventType {
		n.Unlock()
		return fault.ErrNotPending
	}
	c, err := n.contact(request.From)
	if nil != err {
		n.Unlock()
		return err
	}
	n.setStatus(uuid, StatusProcessing)
	n.Unlock()

	subject, body, err := n.render(request)
	if nil == err {
		err = n.mailer.Send(c.Email, subject, body)
	}
	if nil != err {
		n.log.Errorf("notify uuid: %s  error: %s", uuid, err)
		n.setStatus(uuid, StatusError)
		return err
	}

	n.setStatus(uuid, StatusNotified)
	n.log.Infof("notified payer: %s  uuid: %s", request.From, uuid)
	return nil
}

func (n *Notifier) render(request *record.TransferRequest) (string, string, error) {
	link := n.website + "/transfer?uuid=" + url.QueryEscape(request.Uuid.String())
	data := mailData{
		Topic:     request.Topic,
		Amount:    request.Amount,
		Requester: request.To,
		Uuid:      request.Uuid,
		URL:       link,
	}

	subject := bytes.Buffer{}
	if err := n.subject.Execute(&subject, data); nil != err {
		return "", "", err
	}
	body := bytes.Buffer{}
	if err := n.body.Execute(&body, data); nil != err {
		return "", "", err
	}
	return subject.String(), body.String(), nil
}
